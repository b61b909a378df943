package llm

import "context"

// MockLLMClient is a mock LLM client for testing
type MockLLMClient struct {
	Response string // Set this for testing
	Error    error  // Set this to simulate errors
	Prompts  []string
}

func (m *MockLLMClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Error != nil {
		return "", m.Error
	}
	if m.Response != "" {
		return m.Response, nil
	}
	// Default mock response
	return `{
    "conversation": [
        {"role": "user", "content": "你好，我想咨询一下账户的问题。"},
        {"role": "assistant", "content": "您好，很高兴为您服务，请问您遇到了什么问题？"},
        {"role": "user", "content": "我的账户登录不上去了，提示密码错误。"},
        {"role": "assistant", "content": "好的，我帮您核实一下，请提供一下您的注册手机号。"}
    ]
}`, nil
}
