package app

import (
	"fmt"

	"dialogen/domain/persona"
	"dialogen/domain/scenario"
)

const promptTemplate = `请基于以下设定生成自然的对话：

%s

%s

要求：
1. 对话要体现人物的性格特征和沟通风格
2. 内容要符合场景设定和目标
3. 语言自然流畅，符合%s的表达习惯
4. 包含适当的情感表达
5. 明确区分user和assistant角色

输出格式：
{
    "conversation": [
        {"role": "user", "content": "用户说话内容"},
        {"role": "assistant", "content": "客服回复内容"},
        ...
    ]
}`

// ComposePrompt builds the generation prompt from a persona and a scenario.
// Both blocks are rendered through their default tags so the model sees the
// same section structure every time.
func ComposePrompt(p *persona.Profile, s *scenario.Scenario) string {
	return fmt.Sprintf(promptTemplate,
		p.AsPrompt(persona.DefaultTag),
		s.AsPrompt(scenario.DefaultTag),
		p.Language,
	)
}
