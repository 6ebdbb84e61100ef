package ml

import "strings"

// AlternativeCareerLabel 百分比落在 [45,60) 且有工科/技术类兴趣时的特殊推荐，
// 结果页会为该标签附加替代升学路径（大专/ITI/证书/远程教育）
const AlternativeCareerLabel = "Engineering - Alternative Paths Available"

// stream 规则表内部的方向分类，由兴趣/技能关键词决定
type stream int

const (
	streamGeneral stream = iota
	streamScience
	streamEngineering
	streamTechnology
	streamCommerce
	streamArts
)

var streamKeywords = map[stream][]string{
	streamScience:     {"Science", "Biology", "Medical", "Chemistry", "Physics"},
	streamEngineering: {"Engineering", "Mechanical", "Electrical", "Civil"},
	streamTechnology:  {"Technology", "Computer", "Computers", "Programming", "IT", "Coding"},
	streamCommerce:    {"Business", "Commerce", "Finance", "Accounting", "Leadership"},
	streamArts:        {"Arts", "Creative", "Design", "Music", "Writing"},
}

// 百分比阈值带，边界取 >= 语义：90/80/70/60/45/其余
func band(percentage float64) int {
	switch {
	case percentage >= 90:
		return 0
	case percentage >= 80:
		return 1
	case percentage >= 70:
		return 2
	case percentage >= 60:
		return 3
	case percentage >= 45:
		return 4
	default:
		return 5
	}
}

// 规则表：学历 -> 方向 -> 阈值带。每个分支都落在具体标签上，无穿透。
// 同一方向内分数越高志向档次不降（单调性由测试保证）。
var ruleTable = map[EducationLevel]map[stream][6]string{
	Education10th: {
		streamScience: {
			"Medical (PCB) - Pre-Medical Path",
			"Science (PCM) - Engineering Track",
			"Science Stream - General",
			"Pharmacy - Diploma Course",
			"Paramedical - Certificate Course",
			"Lab Assistant - Vocational Training",
		},
		streamEngineering: {
			"Engineering (PCM) - IIT/JEE Track",
			"Engineering (PCM) - State Engineering Track",
			"Engineering - Polytechnic Diploma",
			"Mechanical/Electrical - Diploma",
			AlternativeCareerLabel,
			"ITI Trade - Vocational Training",
		},
		streamTechnology: {
			"Computer Science (PCM) - Premier Engineering Track",
			"IT Engineering Track",
			"IT/Computer Applications - Diploma",
			"Computer Applications - Certificate Course",
			AlternativeCareerLabel,
			"Computer Operator - Vocational Training",
		},
		streamCommerce: {
			"Commerce with Maths - CA Foundation Track",
			"Commerce Stream - Professional Track",
			"Commerce Stream - General",
			"Accounting - Certificate Course",
			"Retail/Office Administration - Certificate Course",
			"Sales Assistant - Vocational Training",
		},
		streamArts: {
			"Humanities - Civil Services Foundation",
			"Arts with Design Track",
			"Arts Stream - General",
			"Fine Arts - Diploma Course",
			"Craft & Design - Certificate Course",
			"Community Work - Vocational Training",
		},
		streamGeneral: {
			"Science Stream - Explore Options",
			"Any Stream - Aptitude Based Choice",
			"General Stream - Counselling Recommended",
			"Open Schooling - Skill Courses",
			"Skill Development - Certificate Course",
			"General - Career Counselling Recommended",
		},
	},
	Education12th: {
		streamScience: {
			"MBBS/BDS - NEET Path",
			"B.Sc - Research Track",
			"B.Pharm - Pharmacy Degree",
			"B.Sc - General",
			"DMLT - Paramedical Diploma",
			"Healthcare Assistant - Vocational Training",
		},
		streamEngineering: {
			"B.Tech - JEE Advanced Track",
			"B.Tech - State Counselling Track",
			"Engineering Diploma - Lateral Entry",
			"B.Sc - Applied Sciences",
			AlternativeCareerLabel,
			"ITI Trade - Vocational Training",
		},
		streamTechnology: {
			"B.Tech Computer Science - JEE Path",
			"B.Tech IT - State Counselling",
			"BCA - Computer Applications",
			"B.Sc IT",
			AlternativeCareerLabel,
			"Computer Operator - Certificate Course",
		},
		streamCommerce: {
			"CA - Chartered Accountancy Path",
			"B.Com Honours",
			"B.Com - General",
			"BBA - Business Administration",
			"Accounting Assistant - Certificate Course",
			"Office Assistant - Vocational Training",
		},
		streamArts: {
			"Law (CLAT) / Civil Services Path",
			"BA Honours - Competitive Exams Track",
			"BA - General",
			"B.Des / Fine Arts - Diploma",
			"Craft & Design - Certificate Course",
			"Community Services - Vocational Training",
		},
		streamGeneral: {
			"University Degree - Merit Track",
			"University Degree - General",
			"Degree + Skill Certification",
			"Open University Degree",
			"Skill Development - Certificate Course",
			"General - Career Counselling Recommended",
		},
	},
	EducationOther: {
		streamScience: {
			"Postgraduate Science - Research Path",
			"Science Graduate - Specialisation",
			"Lab Technician - Certification",
			"Science Tutor - Certification",
			"Paramedical - Certificate Course",
			"Healthcare Assistant - Vocational Training",
		},
		streamEngineering: {
			"Engineering Graduate - Core Industry",
			"Engineering Graduate - PSU Track",
			"Engineering - Skill Certification",
			"Technical Supervisor - Certification",
			AlternativeCareerLabel,
			"ITI Trade - Vocational Training",
		},
		streamTechnology: {
			"Software Engineer - Product Companies",
			"Software Developer - IT Services",
			"IT Support - Certification",
			"Web Development - Certificate Course",
			AlternativeCareerLabel,
			"Data Entry Operator - Vocational Training",
		},
		streamCommerce: {
			"MBA - Management Path",
			"Banking & Finance - Competitive Exams",
			"Accounting - Professional Certification",
			"Office Administration - Certificate Course",
			"Retail/Office Administration - Certificate Course",
			"Sales Assistant - Vocational Training",
		},
		streamArts: {
			"Civil Services - Preparation Path",
			"Design - Professional Portfolio Track",
			"Content & Media - Certification",
			"Fine Arts - Diploma Course",
			"Craft & Design - Certificate Course",
			"Community Work - Vocational Training",
		},
		streamGeneral: {
			"Postgraduate Studies - Merit Track",
			"Government Exams - Preparation Path",
			"Skill Certification - Job Oriented",
			"Open University Degree",
			"Skill Development - Certificate Course",
			"General - Career Counselling Recommended",
		},
	},
}

// RecommendCareer 规则推荐：确定性的决策表，覆盖全部输入组合。
// 分类器不可用或编码失败时这里是唯一的推荐来源。
func RecommendCareer(p Profile) string {
	level := p.EducationLevel
	if _, ok := ruleTable[level]; !ok {
		level = EducationOther
	}

	b := band(p.Percentage)
	if b == 4 && hasEngineeringInterest(p) {
		return AlternativeCareerLabel
	}

	return ruleTable[level][detectStream(p)][b]
}

// detectStream 按固定优先级匹配关键词，保证同一输入始终落入同一方向
func detectStream(p Profile) stream {
	for _, s := range []stream{streamScience, streamEngineering, streamTechnology, streamCommerce, streamArts} {
		if matchesStream(p, s) {
			return s
		}
	}
	return streamGeneral
}

func matchesStream(p Profile, s stream) bool {
	for _, kw := range streamKeywords[s] {
		if containsFold(p.Interests, kw) || containsFold(p.Skills, kw) {
			return true
		}
	}
	return false
}

func hasEngineeringInterest(p Profile) bool {
	return matchesStream(p, streamEngineering) || matchesStream(p, streamTechnology)
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}
