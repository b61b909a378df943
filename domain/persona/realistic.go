package persona

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"dialogen/domain/core"

	"github.com/brianvoe/gofakeit/v6"
)

// generatorFunc produces one realistic value from the caller's rng stream.
type generatorFunc func(rng *rand.Rand) string

// LocaleZhCN and LocaleEnUS are the locales the realistic registry knows.
const (
	LocaleZhCN = "zh_CN"
	LocaleEnUS = "en_US"
)

// Curated zh_CN tables. gofakeit carries no Chinese locale data, so names and
// job titles for zh_CN are synthesized from these lists.
var (
	zhSurnames = []string{
		"王", "李", "张", "刘", "陈", "杨", "黄", "赵", "吴", "周",
		"徐", "孙", "马", "朱", "胡", "郭", "何", "林", "高", "罗",
	}
	zhGivenNames = []string{
		"伟", "芳", "娜", "敏", "静", "磊", "军", "洋", "勇", "艳",
		"杰", "涛", "明", "超", "霞", "平", "刚", "辉", "丽", "强",
		"秀英", "桂英", "建华", "玉兰", "文静", "志强", "晓燕", "雪梅",
	}
	zhJobTitles = []string{
		"软件工程师", "中学教师", "主治医师", "执业律师", "销售经理",
		"注册会计师", "结构工程师", "平面设计师", "在校学生", "餐厅服务员",
		"出租车司机", "个体经营者", "产品经理", "护士", "行政专员",
	}
)

// realisticGenerators maps method name → locale → generator. Both lookups
// happen at axis construction; a miss is a fatal configuration error.
var realisticGenerators = map[string]map[string]generatorFunc{
	"name": {
		LocaleZhCN: zhName,
		LocaleEnUS: func(rng *rand.Rand) string { return gofakeit.New(rng.Int63()).Name() },
	},
	"job": {
		LocaleZhCN: func(rng *rand.Rand) string { return zhJobTitles[rng.Intn(len(zhJobTitles))] },
		LocaleEnUS: func(rng *rand.Rand) string { return gofakeit.New(rng.Int63()).JobTitle() },
	},
}

func zhName(rng *rand.Rand) string {
	name := zhSurnames[rng.Intn(len(zhSurnames))]
	name += zhGivenNames[rng.Intn(len(zhGivenNames))]
	return name
}

// NewRealistic creates an externally-sourced realistic-value axis. The
// requested generator capability must exist for the method/locale pair;
// otherwise construction fails immediately with a configuration error.
// An optional format func post-processes the raw value.
func NewRealistic(name, method, locale string, format func(string) string) (*Axis, error) {
	locales, ok := realisticGenerators[method]
	if !ok {
		return nil, fmt.Errorf("%w (registered: %s)",
			core.NewUnknownGeneratorError(method, locale), strings.Join(RealisticMethods(), ", "))
	}
	gen, ok := locales[locale]
	if !ok {
		return nil, core.NewUnknownGeneratorError(method, locale)
	}
	return &Axis{
		Name:   name,
		Kind:   KindRealistic,
		Method: method,
		Locale: locale,
		Format: format,
		gen:    gen,
	}, nil
}

// RealisticMethods lists the registered generator method names in sorted
// order.
func RealisticMethods() []string {
	names := make([]string, 0, len(realisticGenerators))
	for name := range realisticGenerators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
