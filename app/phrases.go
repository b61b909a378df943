package app

// interruptPhrases are user utterances that seize the floor mid-speech. The
// bank spans registers from blunt objection to polite interjection plus the
// vertical vocabularies the scenario catalog covers, so mined interrupt
// samples do not collapse onto a handful of stock openers.
var interruptPhrases = []string{
	// 基础打断表达
	"等等，我想问一下", "不对，我的情况不是这样", "慢着，我还有个问题",
	"你先等一下", "不行，这个方案不合适", "打断一下，我想说",
	"等一下，你刚才说的", "我觉得不对", "这个我不同意", "你误解了我的意思",
	"不是这样的", "等等，我需要澄清", "停一下，我有异议",

	// 疑问和困惑
	"等等，我没听懂", "慢着，什么意思？", "不对不对，我搞混了",
	"等一下，你说的是哪个？", "我有点糊涂了", "这里我不明白",
	"等等，能重复一遍吗？", "不好意思，我没跟上", "这个地方我疑惑",

	// 纠正和澄清
	"不是的，实际情况是", "错了，应该是这样", "不对，我要说明一下",
	"等等，我纠正一下", "这里有误解", "我补充一点信息",
	"不是这么回事", "实际上不是这样", "让我澄清一下",

	// 急迫和焦虑
	"等等等等！", "不行不行！", "慢点慢点！", "等一下！",
	"我着急了", "这个很重要！", "先等等！", "别说了！",
	"我必须打断你", "这个问题很紧急", "不能这样！",

	// 反对和异议
	"我反对这个说法", "这个不对", "我不认同", "这里有问题",
	"我有不同看法", "这个我不接受", "我觉得有误", "这样不行",
	"我要提出异议", "这个方案不可行", "我有保留意见",

	// 请求解释
	"等等，能详细说说吗？", "这个怎么理解？", "为什么这样？",
	"能解释一下吗？", "这是什么意思？", "我需要更多信息",
	"这个逻辑我不懂", "能举个例子吗？", "具体是怎样的？",

	// 情感表达
	"我很担心这个", "我有点紧张", "这让我很困扰",
	"我不太舒服", "这样我不安心", "我有些顾虑",
	"这让我很意外", "我感到困惑", "这出乎我意料",

	// 时间紧迫
	"等等，时间不够了", "我赶时间", "能快点吗？",
	"我还有事", "时间来不及", "我得马上知道",
	"这个很紧急", "不能耽误了", "时间有限",

	// 专业场景：金融贷款
	"等等，利率是多少？", "慢着，还款方式呢？", "不对，我的征信没问题",
	"等一下，手续费多少？", "我的收入证明呢？", "这个条件不符合",
	"等等，审批要多久？", "我的额度是多少？", "担保人的事情",

	// 专业场景：客服咨询
	"等等，我的订单号是", "不对，我的问题是", "慢着，我要投诉",
	"等一下，我要退货", "我的账户有问题", "这个费用不对",
	"等等，我没收到", "不是这个产品", "我要换个客服",

	// 专业场景：技术支持
	"等等，我的系统是", "不对，这个步骤有问题", "慢着，操作失败了",
	"等一下，我看不到", "这个按钮在哪？", "我的版本不一样",
	"等等，报错了", "不行，还是不行", "我重启了还是不行",

	// 专业场景：销售沟通
	"等等，价格能便宜点吗？", "慢着，有优惠活动吗？", "不对，这个配置不够",
	"等一下，竞品比较呢？", "我考虑考虑", "这个太贵了",
	"等等，售后服务呢？", "我需要看看样品", "能试用吗？",

	// 口语化表达
	"哎等等", "诶慢着", "哎哎哎", "等会儿等会儿",
	"别急别急", "慢点说", "你等等", "让我说句话",
	"打住打住", "停停停", "先别说", "等我一下",

	// 礼貌打断
	"不好意思，我打断一下", "抱歉，我插一句", "对不起，我想说",
	"请允许我插话", "麻烦等等", "能让我说一下吗？",
	"不好意思打断", "借我说一句", "请稍等片刻",

	// 网络用语风格
	"等等，我懵了", "慢着，我晕了", "不对，我蒙圈了",
	"等一下，我卡住了", "这个我get不到", "我有点方了",
	"等等，这啥意思？", "我有点懵逼", "这个我不太懂",

	// 地方方言色彩
	"等等咧", "慢点哈", "不对滴", "等一哈",
	"慢慢来嘛", "莫急嘛", "等等先", "慢着点",
	"不是这样滴", "我说一哈", "等等撒",

	// 情境化表达
	"等等，我老婆说不是这样", "慢着，我得问问家里", "不对，我妈说不是这样",
	"等一下，我朋友建议不这样", "我同事说不是这样", "我之前听说",
	"等等，网上说", "我看攻略说", "别人告诉我",

	// 强调重要性
	"等等！这很重要", "慢着！关键问题", "不对！重点是",
	"等一下！核心是", "这个很关键", "重要的来了",
	"这是关键点", "核心问题是", "最重要的是",

	// 表达怀疑
	"等等，真的吗？", "慢着，确定吗？", "不对，可能吗？",
	"等一下，靠谱吗？", "这个可信吗？", "真的假的？",
	"确实这样？", "不会吧？", "有这事？",
}

// backchannelPhrases are user utterances that yield the floor back. These are
// acknowledgements, not bids to speak, so they pair with the continue-speak
// label.
var backchannelPhrases = []string{
	// 基础附和
	"嗯", "好的", "是的", "对", "明白了", "好", "嗯嗯",
	"知道了", "行", "可以", "嗯，对", "好的好的", "是",
	"嗯好", "明白", "了解", "好吧", "嗯是的",

	// 情感附和
	"哦", "啊", "哦哦", "啊是的", "嗯哼", "嗯呢", "嗯嗯呢",
	"嗯对对", "对对对", "是是是", "好好好", "行行行",

	// 确认理解
	"我懂了", "我明白", "我知道", "我了解", "我理解",
	"明白的", "懂了", "理解了", "清楚了", "知道的",

	// 鼓励继续
	"你继续说", "接着说", "然后呢", "嗯然后", "继续",
	"还有呢", "往下说", "你说", "嗯你说", "我在听",

	// 赞同表达
	"没错", "对的", "就是这样", "说得对", "正是",
	"确实", "有道理", "对啊", "是这样", "没毛病",

	// 疑问附和
	"是吗", "真的吗", "这样啊", "哦是吗", "原来如此",
	"这样的", "哦这样", "嗯是这样", "原来是这样",

	// 情绪附和
	"嗯呐", "嗯嗯嗯", "好嘞", "得嘞", "成", "中",
	"ok", "OK", "okok", "好咧", "得", "嘞",

	// 思考附和
	"嗯...是的", "对...没错", "嗯...好的", "是...我懂",
	"哦...明白", "啊...对对", "嗯...继续", "对...然后呢",

	// 地方方言风格
	"嗯咧", "好滴", "晓得了", "知道滴", "明白滴",
	"好嘞嘞", "成咧", "中滴", "行嘞", "得咧",

	// 网络用语风格
	"ok的", "get到了", "收到", "明白哒", "懂哒",
	"好滴呀", "嗯呐呐", "对鸭", "是滴", "没问题哒",

	// 职场风格
	"好的，您继续", "明白，请继续", "了解，您说",
	"收到，继续", "知道了，然后呢", "理解，往下说",

	// 混合表达
	"嗯好的", "对明白", "是知道", "好懂了", "嗯理解",
	"对清楚", "是明白", "好知道", "嗯懂的", "对了解",

	// 语气词组合
	"嗯呢对", "啊是好", "哦对的", "嗯嗯是", "好呢对",
	"对呢嗯", "是呢好", "嗯呀对", "好呀是", "对呀嗯",

	// 重复强调
	"对对", "好好", "是是", "嗯嗯", "行行", "可可",
	"懂懂", "知知", "明明", "了了", "清清", "理理",
}
