package random

// phonePrefixes are mainland China mobile prefixes.
var phonePrefixes = []string{
	"134", "135", "136", "137", "138", "139",
	"150", "151", "152", "157", "158", "159",
	"182", "183", "184", "187", "188", "198",
}

var (
	surnames = []rune("赵钱孙李周吴郑王冯陈褚卫蒋沈韩杨朱秦尤许何吕施张孔曹严华金魏陶姜戚谢邹喻水云苏潘葛奚范彭郎鲁韦昌马苗凤花方俞任袁柳酆鲍史唐费廉岑薛雷贺倪汤")

	givenNames = []rune("伟刚勇毅俊峰强军平保东文辉力明永健世广志义兴良海山仁波宁贵福生龙元全国胜学祥才发武新利清飞彬富顺信子杰涛昌成康星光天达安岩中茂进林有坚和彪博诚先敬震振壮会思群豪心邦承乐绍功松善厚庆磊民友裕河哲江超浩亮政谦亨奇固之轮翰朗伯宏言若鸣朋斌梁栋维启克伦翔旭鹏泽晨辰士以建家致树炎德行时泰盛雄琛钧冠策腾楠榕风航弘")
)

// singleCharNameProbability is the share of given names with one character.
const singleCharNameProbability = 0.7

// PhoneNumber returns an 11-digit mobile number starting with a known prefix.
func (g *Generator) PhoneNumber() string {
	prefix, _ := ItemWith(g, phonePrefixes)

	return prefix + g.StringFrom(8, "0123456789")
}

// ChineseName returns a surname followed by a one or two character given name.
func (g *Generator) ChineseName() string {
	surname, _ := ItemWith(g, surnames)

	n := 2
	if g.Bool(singleCharNameProbability) {
		n = 1
	}

	name := []rune{surname}
	for range n {
		r, _ := ItemWith(g, givenNames)
		name = append(name, r)
	}

	return string(name)
}
