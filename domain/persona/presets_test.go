package persona

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"dialogen/domain/core"
)

func TestPresets_AllBuildAndGenerate(t *testing.T) {
	for _, name := range PresetNames() {
		p, err := NewPreset(name, true, WithRand(rand.New(rand.NewSource(1))))
		if err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
		if p.PresetName != name {
			t.Errorf("preset %q: PresetName = %q", name, p.PresetName)
		}
		values := p.Generate()
		if len(values) != len(p.Axes()) {
			t.Errorf("preset %q: %d values for %d axes", name, len(values), len(p.Axes()))
		}
		for axis, v := range values {
			if v == "" {
				t.Errorf("preset %q: axis %q resolved empty", name, axis)
			}
		}
	}
}

func TestNewPreset_StrictAndLenient(t *testing.T) {
	_, err := NewPreset("nonexistent", true)
	if !errors.Is(err, core.ErrUnknownPreset) {
		t.Fatalf("strict mode: expected ErrUnknownPreset, got %v", err)
	}

	p, err := NewPreset("nonexistent", false, WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("lenient mode: %v", err)
	}
	if p.PresetName != DefaultPreset {
		t.Errorf("lenient fallback preset = %q", p.PresetName)
	}
}

func TestInternationalUser_EnglishByDefault(t *testing.T) {
	p := InternationalUser(WithRand(rand.New(rand.NewSource(1))))
	if p.Language != "English" {
		t.Errorf("language = %q", p.Language)
	}

	// An explicit language wins over the preset's own default.
	p = InternationalUser(WithRand(rand.New(rand.NewSource(1))), WithLanguage("Deutsch"))
	if p.Language != "Deutsch" {
		t.Errorf("override lost: %q", p.Language)
	}
}

func TestDiverseConditionalCustomer_StyleFollowsOccupation(t *testing.T) {
	styleSet := map[string][]string{
		"程序员": {"技术术语", "逻辑清晰", "简洁直接"},
		"医生":  {"专业严谨", "耐心细致", "温和解释"},
		"销售":  {"热情主动", "善于倾听", "引导成交"},
		"教师":  {"循循善诱", "条理清晰", "亲切随和"},
	}

	// Sample profiles until every occupation of interest has appeared.
	remaining := len(styleSet)
	seen := make(map[string]bool)
	for seed := int64(0); seed < 500 && remaining > 0; seed++ {
		p := DiverseConditionalCustomer(WithRand(rand.New(rand.NewSource(seed))))
		values := p.Generate()
		occupation := values["职业"]
		allowed, tracked := styleSet[occupation]
		if !tracked {
			continue
		}
		style := values["沟通风格"]
		if !contains(allowed, style) {
			t.Errorf("occupation %q got style %q, want one of %v", occupation, style, allowed)
		}
		if !seen[occupation] {
			seen[occupation] = true
			remaining--
		}
	}
	if remaining > 0 {
		t.Fatalf("not all occupations sampled: %v", seen)
	}
}

func TestDiverseConditionalCustomer_EmotionFollowsAgeBands(t *testing.T) {
	young := []string{"活力充沛", "情绪外露", "容易激动", "乐观"}
	middle := []string{"稳重", "理性", "偶尔焦虑", "平和"}
	elder := []string{"淡定", "宽容", "容易怀旧", "温和"}
	fallback := []string{"普通", "平静", "偶尔焦虑"}

	for seed := int64(0); seed < 300; seed++ {
		p := DiverseConditionalCustomer(WithRand(rand.New(rand.NewSource(seed))))
		values := p.Generate()
		age, err := strconv.Atoi(values["年龄"])
		if err != nil {
			t.Fatalf("age %q: %v", values["年龄"], err)
		}
		emotion := values["情绪状态"]

		var allowed []string
		switch {
		case age <= 29:
			allowed = young
		case age <= 45:
			allowed = middle
		case age == 50 || age == 55 || age == 60 || age == 65 || age == 70:
			allowed = elder
		default:
			// Ages in the gaps of the sparse elder table route to the
			// conditional's default axis.
			allowed = fallback
		}
		if !contains(allowed, emotion) {
			t.Errorf("age %d got emotion %q, want one of %v", age, emotion, allowed)
		}
	}
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
