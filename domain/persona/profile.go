package persona

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"dialogen/domain/core"
)

// DefaultTag is the prompt-section marker used when rendering a profile block.
const DefaultTag = "人物画像"

// DefaultLanguage is the display language declared by profiles unless overridden.
const DefaultLanguage = "简体中文"

// Profile is a composed persona: an ordered sequence of axes plus a value
// cache and a context mirror feeding conditional axes. Values are resolved
// lazily and never invalidated; construct a fresh Profile to re-roll.
type Profile struct {
	ID         core.ProfileID
	Language   string
	PresetName string

	axes  []*Axis
	cache map[string]string
	ctx   Context
	order []string
	rng   *rand.Rand
}

// Option configures a Profile at construction.
type Option func(*Profile)

// WithID supplies an explicit profile id instead of a generated one.
func WithID(id core.ProfileID) Option {
	return func(p *Profile) { p.ID = id }
}

// WithLanguage sets the display language tag.
func WithLanguage(lang string) Option {
	return func(p *Profile) { p.Language = lang }
}

// WithPresetName records which named preset produced the profile.
func WithPresetName(name string) Option {
	return func(p *Profile) { p.PresetName = name }
}

// WithRand supplies the rng stream all axis resolution draws from.
// Required for deterministic generation.
func WithRand(rng *rand.Rand) Option {
	return func(p *Profile) { p.rng = rng }
}

// New creates a profile over the given axes.
func New(axes []*Axis, opts ...Option) *Profile {
	p := &Profile{
		ID:       core.NewProfileID(),
		Language: DefaultLanguage,
		axes:     axes,
		cache:    make(map[string]string),
		ctx:      make(Context),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p
}

// AddAxis appends an axis.
func (p *Profile) AddAxis(a *Axis) {
	p.axes = append(p.axes, a)
}

// RemoveAxis drops every axis with the given name.
func (p *Profile) RemoveAxis(name string) {
	kept := p.axes[:0]
	for _, a := range p.axes {
		if a.Name != name {
			kept = append(kept, a)
		}
	}
	p.axes = kept
}

// Axes returns the axis list in declaration order.
func (p *Profile) Axes() []*Axis {
	return p.axes
}

// Value resolves the named axis, reading the cache first. Lookup by name
// returns the first matching axis. Conditional axes receive a snapshot of the
// context built so far.
func (p *Profile) Value(name string) (string, bool) {
	if v, ok := p.cache[name]; ok {
		return v, true
	}
	for _, a := range p.axes {
		if a.Name != name {
			continue
		}
		v := a.Resolve(p.rng, p.snapshot())
		p.cache[name] = v
		p.ctx[name] = v
		p.order = append(p.order, name)
		return v, true
	}
	return "", false
}

// Generate resolves the full trait set. All non-conditional axes resolve
// first, in list order, so that every conditional axis sees a complete
// context; conditional axes then resolve in list order. The returned map
// mirrors the cache.
func (p *Profile) Generate() map[string]string {
	for _, a := range p.axes {
		if a.Kind != KindConditional {
			p.Value(a.Name)
		}
	}
	for _, a := range p.axes {
		if a.Kind == KindConditional {
			p.Value(a.Name)
		}
	}

	out := make(map[string]string, len(p.cache))
	for k, v := range p.cache {
		out[k] = v
	}
	return out
}

// RenderText returns "name: value" lines in resolution order, with a trailing
// language declaration when a language is set.
func (p *Profile) RenderText() []string {
	p.Generate()
	lines := make([]string, 0, len(p.order)+1)
	for _, name := range p.order {
		lines = append(lines, fmt.Sprintf("%s: %s", name, p.cache[name]))
	}
	if p.Language != "" {
		lines = append(lines, fmt.Sprintf("使用语言: %s", p.Language))
	}
	return lines
}

// AsPrompt wraps the rendered trait lines in a named marker block so the
// section can be extracted unambiguously from a larger prompt.
func (p *Profile) AsPrompt(tag string) string {
	return fmt.Sprintf("<%s>\n%s\n</%s>", tag, strings.Join(p.RenderText(), "\n"), tag)
}

// AxisConfig is one entry of the axis manifest kept for auditing.
type AxisConfig struct {
	AxisName string `json:"axis_name"`
	AxisType Kind   `json:"axis_type"`
}

// Record is the serializable form of a generated profile. The manifest records
// axis name/kind pairs for downstream auditing; axes themselves are not
// serialized and a Record cannot reconstruct a Profile.
type Record struct {
	ProfileID  string            `json:"profile_id"`
	Language   string            `json:"language"`
	PresetName string            `json:"preset_name,omitempty"`
	Profile    map[string]string `json:"profile"`
	AxesConfig []AxisConfig      `json:"axes_config"`
}

// Record serializes the profile, resolving any still-unresolved axes.
func (p *Profile) Record() Record {
	manifest := make([]AxisConfig, 0, len(p.axes))
	for _, a := range p.axes {
		manifest = append(manifest, AxisConfig{AxisName: a.Name, AxisType: a.Kind})
	}
	return Record{
		ProfileID:  p.ID.String(),
		Language:   p.Language,
		PresetName: p.PresetName,
		Profile:    p.Generate(),
		AxesConfig: manifest,
	}
}

func (p *Profile) snapshot() Context {
	snap := make(Context, len(p.ctx))
	for k, v := range p.ctx {
		snap[k] = v
	}
	return snap
}
