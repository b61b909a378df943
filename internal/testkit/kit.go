package testkit

import (
	"fmt"

	"dialogen/domain/conversation"
	"dialogen/domain/dataset"
	"dialogen/domain/persona"
	"dialogen/domain/scenario"
)

// LongUserContent and LongAssistantContent are fixture utterances long enough
// for every miner length gate, with boundary characters spread through them.
const (
	LongUserContent      = "你好，我想咨询一下我们公司的贷款申请进度，之前提交的材料已经一周了，到现在还没有收到任何审批结果的通知，能帮我查一下吗？"
	LongAssistantContent = "好的，我理解您的着急，请您稍等，我马上为您查询一下申请记录。根据系统显示，您的材料已经进入复审阶段，预计三个工作日内会有结果，届时会有短信通知您。"
)

// Conversation builds a fixture dialog of n user/assistant exchange pairs
// using the long fixture utterances.
func Conversation(pairs int) conversation.Conversation {
	conv := make(conversation.Conversation, 0, pairs*2)
	for i := 0; i < pairs; i++ {
		conv = append(conv,
			conversation.Turn{Role: conversation.RoleUser, Content: fmt.Sprintf("（第%d轮）%s", i+1, LongUserContent)},
			conversation.Turn{Role: conversation.RoleAssistant, Content: fmt.Sprintf("（第%d轮）%s", i+1, LongAssistantContent)},
		)
	}
	return conv
}

// ShortConversation builds a dialog whose turns are too short for any
// truncation-based generator.
func ShortConversation() conversation.Conversation {
	return conversation.Conversation{
		{Role: conversation.RoleUser, Content: "你好"},
		{Role: conversation.RoleAssistant, Content: "您好"},
	}
}

// Grouped buckets count fixture conversations under each given category.
func Grouped(countPerCategory int, categories ...string) *conversation.Grouped {
	grouped := conversation.NewGrouped()
	for _, cat := range categories {
		for i := 0; i < countPerCategory; i++ {
			grouped.Add(cat, Conversation(3))
		}
	}
	return grouped
}

// Records builds fixture conversation records spread over the scenario
// catalog, suitable for report and persistence tests.
func Records(count int) []dataset.ConversationRecord {
	categories := scenario.Categories()
	records := make([]dataset.ConversationRecord, 0, count)
	for i := 0; i < count; i++ {
		cat := categories[i%len(categories)]
		profile := persona.BasicChineseCustomer()
		records = append(records, dataset.ConversationRecord{
			Conversation: Conversation(2 + i%3),
			Persona:      profile.Record(),
			Scenario: scenario.Record{
				ScenarioName: cat + "场景",
				ScenarioType: cat,
				Context:      "测试背景",
				Objective:    "测试目标",
			},
		})
	}
	return records
}
