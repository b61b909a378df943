package scenario

import (
	"fmt"
	"math/rand"
)

// DefaultTag is the prompt-section marker used when rendering a scenario block.
const DefaultTag = "场景设定"

// Params are the three situational knobs sampled for every scenario, each
// drawn independently from its three-value enum.
type Params struct {
	TimePressure       string `json:"时间压力"`
	Complexity         string `json:"复杂程度"`
	EmotionalIntensity string `json:"情绪强度"`
}

// Scenario is one sampled situational context. Immutable once constructed.
type Scenario struct {
	Name      string
	Category  string
	Context   string
	Objective string
	Params    Params
}

var (
	timePressureLevels       = []string{"低", "中", "高"}
	complexityLevels         = []string{"简单", "中等", "复杂"}
	emotionalIntensityLevels = []string{"平和", "中等", "激烈"}
)

// SampleParams draws the three scenario parameters from the caller's stream.
func SampleParams(rng *rand.Rand) Params {
	return Params{
		TimePressure:       timePressureLevels[rng.Intn(len(timePressureLevels))],
		Complexity:         complexityLevels[rng.Intn(len(complexityLevels))],
		EmotionalIntensity: emotionalIntensityLevels[rng.Intn(len(emotionalIntensityLevels))],
	}
}

// AsPrompt renders the scenario as a delimited prompt block.
func (s *Scenario) AsPrompt(tag string) string {
	content := fmt.Sprintf("场景名称: %s\n", s.Name)
	content += fmt.Sprintf("场景类型: %s\n", s.Category)
	content += fmt.Sprintf("背景: %s\n", s.Context)
	content += fmt.Sprintf("目标: %s\n", s.Objective)
	content += "参数设定:\n"
	content += fmt.Sprintf("  时间压力: %s\n", s.Params.TimePressure)
	content += fmt.Sprintf("  复杂程度: %s\n", s.Params.Complexity)
	content += fmt.Sprintf("  情绪强度: %s\n", s.Params.EmotionalIntensity)
	return fmt.Sprintf("<%s>\n%s</%s>", tag, content, tag)
}

// Record is the serializable form of a scenario; field names are part of the
// persisted dataset contract.
type Record struct {
	ScenarioName string `json:"scenario_name"`
	ScenarioType string `json:"scenario_type"`
	Context      string `json:"context"`
	Objective    string `json:"objective"`
	Parameters   Params `json:"parameters"`
}

// Record serializes the scenario.
func (s *Scenario) Record() Record {
	return Record{
		ScenarioName: s.Name,
		ScenarioType: s.Category,
		Context:      s.Context,
		Objective:    s.Objective,
		Parameters:   s.Params,
	}
}
