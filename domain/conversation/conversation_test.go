package conversation

import "testing"

func fixture() Conversation {
	return Conversation{
		{Role: RoleUser, Content: "你好"},
		{Role: RoleAssistant, Content: "您好，请问有什么可以帮您？"},
		{Role: RoleUser, Content: "我想查一下我上个月提交的贷款申请现在到哪一步了，已经等了很久了"},
		{Role: RoleAssistant, Content: "好的，请稍等"},
	}
}

func TestTurnIndexes(t *testing.T) {
	conv := fixture()
	user := conv.TurnIndexes(RoleUser)
	if len(user) != 2 || user[0] != 0 || user[1] != 2 {
		t.Errorf("user indexes %v", user)
	}
	assistant := conv.TurnIndexes(RoleAssistant)
	if len(assistant) != 2 || assistant[0] != 1 || assistant[1] != 3 {
		t.Errorf("assistant indexes %v", assistant)
	}
}

func TestLongTurnIndexes_CountsRunes(t *testing.T) {
	conv := fixture()
	long := conv.LongTurnIndexes(RoleUser, 10)
	if len(long) != 1 || long[0] != 2 {
		t.Errorf("long user indexes %v", long)
	}
	// The 13-rune assistant greeting is over 30 bytes but under 30 runes.
	if got := conv.LongTurnIndexes(RoleAssistant, 30); len(got) != 0 {
		t.Errorf("byte-length leak: %v", got)
	}
}

func TestContextWindow(t *testing.T) {
	conv := fixture()

	got := conv.ContextWindow(1, 2)
	want := "user: 你好\nassistant: 您好，请问有什么可以帮您？"
	if got != want {
		t.Errorf("window:\n%q\nwant\n%q", got, want)
	}

	// A window larger than the prefix clamps to the start.
	if got := conv.ContextWindow(0, 5); got != "user: 你好" {
		t.Errorf("clamped window %q", got)
	}
}

func TestGrouped_OrderAndTotals(t *testing.T) {
	g := NewGrouped()
	g.Add("客服咨询", fixture())
	g.Add("技术支持", fixture())
	g.Add("客服咨询", fixture())

	cats := g.Categories()
	if len(cats) != 2 || cats[0] != "客服咨询" || cats[1] != "技术支持" {
		t.Errorf("categories %v", cats)
	}
	if len(g.Get("客服咨询")) != 2 || len(g.Get("技术支持")) != 1 {
		t.Errorf("bucket sizes %d/%d", len(g.Get("客服咨询")), len(g.Get("技术支持")))
	}
	if g.Total() != 3 {
		t.Errorf("total %d", g.Total())
	}
	if g.Get("不存在") != nil {
		t.Error("unknown category must return nil")
	}
}
