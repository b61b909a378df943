package scenario

import (
	"math/rand"

	"dialogen/domain/core"
)

// Template maps a scenario category to its candidate contexts and the fixed
// objective for that category.
type Template struct {
	Category  string
	Contexts  []string
	Objective string
}

// DefaultCategory is the fallback template used in lenient mode.
const DefaultCategory = "客服咨询"

// Catalog is the static scenario template library, in sampling order.
var Catalog = []Template{
	{
		Category: "客服咨询",
		Contexts: []string{
			"客户询问产品使用方法",
			"客户反馈产品问题",
			"客户申请退换货",
			"客户查询订单状态",
		},
		Objective: "解决客户问题，提供满意的服务",
	},
	{
		Category: "销售沟通",
		Contexts: []string{
			"客户了解产品功能",
			"客户咨询价格和优惠",
			"客户比较不同产品",
			"客户考虑购买决策",
		},
		Objective: "了解客户需求，促成销售",
	},
	{
		Category: "技术支持",
		Contexts: []string{
			"用户遇到技术故障",
			"用户需要功能指导",
			"用户询问系统配置",
			"用户报告软件bug",
		},
		Objective: "解决技术问题，指导正确使用",
	},
	{
		Category: "贷款咨询",
		Contexts: []string{
			"客户询问贷款利率",
			"客户了解贷款流程",
			"客户咨询还款方式",
			"客户比较不同贷款产品",
		},
		Objective: "帮助客户了解贷款信息，促成贷款申请",
	},
	{
		Category: "贷款信息核实",
		Contexts: []string{
			"核实客户贷款申请信息",
		},
		Objective: "确保客户信息准确，防止欺诈",
	},
}

// Categories lists the catalog categories in order.
func Categories() []string {
	out := make([]string, len(Catalog))
	for i, t := range Catalog {
		out[i] = t.Category
	}
	return out
}

func lookup(category string) (Template, bool) {
	for _, t := range Catalog {
		if t.Category == category {
			return t, true
		}
	}
	return Template{}, false
}

// Sample builds a scenario instance. An empty category picks one uniformly
// from the catalog. An unknown category falls back to DefaultCategory in
// lenient mode and fails with
// ErrUnknownScenario in strict mode.
func Sample(rng *rand.Rand, category string, strict bool) (*Scenario, error) {
	if category == "" {
		category = Catalog[rng.Intn(len(Catalog))].Category
	}

	tpl, ok := lookup(category)
	if !ok {
		if strict {
			return nil, core.NewUnknownScenarioError(category)
		}
		// Lenient mode keeps the requested category tag but samples content
		// from the default template.
		tpl, _ = lookup(DefaultCategory)
	}

	return &Scenario{
		Name:      category + "场景",
		Category:  category,
		Context:   tpl.Contexts[rng.Intn(len(tpl.Contexts))],
		Objective: tpl.Objective,
		Params:    SampleParams(rng),
	}, nil
}
