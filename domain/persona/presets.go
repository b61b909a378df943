package persona

import (
	"strconv"

	"dialogen/domain/core"
)

// ── Axis preset library ──
// Reusable trait axes for building customer personas. Chinese axes carry the
// ten-step option scales the conversation prompts rely on.

func PatienceZH() *Axis {
	return NewDiscrete("耐心程度",
		"极度耐心", "非常耐心", "比较耐心", "有耐心", "普通",
		"有点急躁", "比较急躁", "很急躁", "非常急躁", "极度急躁")
}

func ClarityZH() *Axis {
	return NewDiscrete("表达清晰度",
		"表达清晰", "逻辑清楚", "条理分明", "比较清楚", "普通",
		"有点模糊", "表达不清", "逻辑混乱", "很难理解", "完全不清楚")
}

func VerbosityZH() *Axis {
	return NewDiscrete("话语量",
		"话很多", "比较健谈", "爱聊天", "话适中", "普通",
		"话较少", "比较安静", "很少说话", "惜字如金", "几乎不说话")
}

func PolitenessZH() *Axis {
	return NewDiscrete("礼貌程度",
		"极其礼貌", "非常客气", "很有礼貌", "比较礼貌", "普通",
		"有点直接", "比较直率", "不太客气", "有些粗鲁", "很不礼貌")
}

func ExpertiseZH() *Axis {
	return NewDiscrete("专业程度",
		"专家级别", "非常专业", "很有经验", "比较专业", "普通用户",
		"新手", "初学者", "不太了解", "完全不懂", "一无所知")
}

func EmotionZH() *Axis {
	return NewDiscrete("情绪状态",
		"非常开心", "开心", "平静", "普通", "有点焦虑",
		"焦虑", "不安", "生气", "很生气", "愤怒")
}

func NameZH() *Axis {
	return mustRealistic("姓名", "name", LocaleZhCN, nil)
}

func Age() *Axis {
	return mustRange("年龄", 18, 70)
}

func OccupationZH() *Axis {
	return NewDiscrete("职业",
		"程序员", "教师", "医生", "律师", "销售", "会计",
		"工程师", "设计师", "学生", "服务员", "司机", "个体户")
}

func EducationZH() *Axis {
	return NewDiscrete("学历", "小学", "初中", "高中", "大专", "本科", "硕士", "博士")
}

func IncomeLevelZH() *Axis {
	return NewDiscrete("收入水平", "低收入", "中等收入", "高收入")
}

func PatienceEN() *Axis {
	return NewDiscrete("patience",
		"Extremely Patient", "Very Patient", "Patient", "Neutral",
		"Slightly Impatient", "Impatient", "Very Impatient", "Extremely Impatient")
}

func MBTI() *Axis {
	return NewDiscrete("personality_type",
		"INTJ (Architect)", "INTP (Thinker)", "ENTJ (Commander)", "ENTP (Debater)",
		"INFJ (Advocate)", "INFP (Mediator)", "ENFJ (Protagonist)", "ENFP (Campaigner)",
		"ISTJ (Logistician)", "ISFJ (Defender)", "ESTJ (Executive)", "ESFJ (Consul)",
		"ISTP (Virtuoso)", "ISFP (Adventurer)", "ESTP (Entrepreneur)", "ESFP (Entertainer)")
}

// mustRealistic panics on registry misses. Presets only reference registered
// generators, so a panic here is a programming error, not runtime input.
func mustRealistic(name, method, locale string, format func(string) string) *Axis {
	a, err := NewRealistic(name, method, locale, format)
	if err != nil {
		panic(err)
	}
	return a
}

// mustRange panics on inverted bounds, same reasoning as mustRealistic.
func mustRange(name string, min, max int) *Axis {
	a, err := NewRange(name, min, max)
	if err != nil {
		panic(err)
	}
	return a
}

// ── Profile presets ──

// Builder constructs a preset profile. Extra options apply after the preset's
// own, so callers can override the rng, id or language.
type Builder func(opts ...Option) *Profile

// DefaultPreset is the fallback profile used in lenient mode.
const DefaultPreset = "basic_chinese_customer"

var presetOrder = []string{
	"basic_chinese_customer",
	"business_customer",
	"tech_support_user",
	"international_user",
	"diverse_conditional_customer",
}

var presets = map[string]Builder{
	"basic_chinese_customer":       BasicChineseCustomer,
	"business_customer":            BusinessCustomer,
	"tech_support_user":            TechSupportUser,
	"international_user":           InternationalUser,
	"diverse_conditional_customer": DiverseConditionalCustomer,
}

// PresetNames lists the registered presets in registry order.
func PresetNames() []string {
	out := make([]string, len(presetOrder))
	copy(out, presetOrder)
	return out
}

// NewPreset builds a profile from the named preset. Unknown names fall back to
// DefaultPreset in lenient mode and fail with ErrUnknownPreset in strict mode.
func NewPreset(name string, strict bool, opts ...Option) (*Profile, error) {
	builder, ok := presets[name]
	if !ok {
		if strict {
			return nil, core.NewUnknownPresetError(name)
		}
		builder = presets[DefaultPreset]
	}
	return builder(opts...), nil
}

// BasicChineseCustomer is the everyday Chinese customer persona.
func BasicChineseCustomer(opts ...Option) *Profile {
	return newPreset("basic_chinese_customer", []*Axis{
		NameZH(),
		Age(),
		OccupationZH(),
		EducationZH(),
		PatienceZH(),
		PolitenessZH(),
		EmotionZH(),
	}, opts)
}

// BusinessCustomer adds income, clarity and expertise dimensions.
func BusinessCustomer(opts ...Option) *Profile {
	return newPreset("business_customer", []*Axis{
		NameZH(),
		Age(),
		OccupationZH(),
		EducationZH(),
		IncomeLevelZH(),
		PatienceZH(),
		ClarityZH(),
		PolitenessZH(),
		ExpertiseZH(),
		EmotionZH(),
	}, opts)
}

// TechSupportUser carries skill level and urgency axes specific to support
// conversations.
func TechSupportUser(opts ...Option) *Profile {
	techSkill := NewDiscrete("技术水平", "完全小白", "初学者", "有一定基础", "比较熟练", "技术专家")
	urgency := NewDiscrete("问题紧急程度", "不急", "一般", "比较急", "很急", "非常紧急")

	return newPreset("tech_support_user", []*Axis{
		NameZH(),
		Age(),
		OccupationZH(),
		techSkill,
		urgency,
		PatienceZH(),
		ClarityZH(),
		EmotionZH(),
	}, opts)
}

// InternationalUser is the English-language persona.
func InternationalUser(opts ...Option) *Profile {
	p := newPreset("international_user", []*Axis{
		mustRealistic("name", "name", LocaleEnUS, nil),
		Age(),
		mustRealistic("occupation", "job", LocaleEnUS, nil),
		PatienceEN(),
		MBTI(),
	}, opts)
	if p.Language == DefaultLanguage {
		p.Language = "English"
	}
	return p
}

// DiverseConditionalCustomer routes communication style by occupation and
// emotional register by age band. The age pattern table is intentionally
// sparse above 45 (only 50/55/60/65/70 are enumerated), so ages 46-49 and the
// other gaps resolve through the conditional's own default axis.
func DiverseConditionalCustomer(opts ...Option) *Profile {
	techStyle := NewDiscrete("沟通风格", "技术术语", "逻辑清晰", "简洁直接")
	doctorStyle := NewDiscrete("沟通风格", "专业严谨", "耐心细致", "温和解释")
	salesStyle := NewDiscrete("沟通风格", "热情主动", "善于倾听", "引导成交")
	educatorStyle := NewDiscrete("沟通风格", "循循善诱", "条理清晰", "亲切随和")
	defaultStyle := NewDiscrete("沟通风格", "普通", "一般", "随意")

	communicationAxis := NewConditional("沟通风格",
		[]Condition{{
			On: "职业",
			Cases: []Case{
				{Pattern: "程序员", Axis: techStyle},
				{Pattern: "工程师", Axis: techStyle},
				{Pattern: "医生", Axis: doctorStyle},
				{Pattern: "护士", Axis: doctorStyle},
				{Pattern: "销售", Axis: salesStyle},
				{Pattern: "教师", Axis: educatorStyle},
			},
		}},
		defaultStyle)

	youngEmotion := NewDiscrete("情绪状态", "活力充沛", "情绪外露", "容易激动", "乐观")
	middleEmotion := NewDiscrete("情绪状态", "稳重", "理性", "偶尔焦虑", "平和")
	elderEmotion := NewDiscrete("情绪状态", "淡定", "宽容", "容易怀旧", "温和")

	var ageCases []Case
	for age := 18; age <= 29; age++ {
		ageCases = append(ageCases, Case{Pattern: strconv.Itoa(age), Axis: youngEmotion})
	}
	for age := 30; age <= 45; age++ {
		ageCases = append(ageCases, Case{Pattern: strconv.Itoa(age), Axis: middleEmotion})
	}
	for _, age := range []int{50, 55, 60, 65, 70} {
		ageCases = append(ageCases, Case{Pattern: strconv.Itoa(age), Axis: elderEmotion})
	}

	emotionAxis := NewConditional("情绪状态",
		[]Condition{{On: "年龄", Cases: ageCases}},
		NewDiscrete("情绪状态", "普通", "平静", "偶尔焦虑"))

	return newPreset("diverse_conditional_customer", []*Axis{
		NameZH(),
		Age(),
		OccupationZH(),
		EducationZH(),
		IncomeLevelZH(),
		PatienceZH(),
		PolitenessZH(),
		communicationAxis,
		emotionAxis,
	}, opts)
}

func newPreset(name string, axes []*Axis, opts []Option) *Profile {
	all := append([]Option{WithPresetName(name)}, opts...)
	return New(axes, all...)
}
