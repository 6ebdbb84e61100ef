package ml

// EducationLevel 学历阶段，规则推荐按此分支
type EducationLevel string

const (
	Education10th  EducationLevel = "10th"
	Education12th  EducationLevel = "12th"
	EducationOther EducationLevel = "other"
)

// QuizLength 测评问卷固定题数
const QuizLength = 10

// Profile 单次提交的用户画像，预测流程的原始输入
type Profile struct {
	Age            int            `json:"age"`
	Percentage     float64        `json:"percentage"`
	Interests      []string       `json:"interests"`
	Skills         []string       `json:"skills"`
	Hobbies        []string       `json:"hobbies"`
	Personality    string         `json:"personality"`
	WorkStyle      string         `json:"work_style"`
	Quiz           []int          `json:"quiz"`
	EducationLevel EducationLevel `json:"education_level"`
}
