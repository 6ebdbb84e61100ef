package model

// PredictionSource 标记推荐来自分类器还是规则表
type PredictionSource string

const (
	SourceModel PredictionSource = "model"
	SourceRules PredictionSource = "rules"
)

// PredictionResult 每次画像提交保存一行：输入画像 + 预测标签
type PredictionResult struct {
	BaseModel
	UserID         uint             `gorm:"index" json:"UserID"`
	Age            int              `gorm:"not null" json:"Age"`
	Percentage     float64          `gorm:"not null" json:"Percentage"`
	Interests      []string         `gorm:"type:json;serializer:json" json:"Interests"`
	Skills         []string         `gorm:"type:json;serializer:json" json:"Skills"`
	Hobbies        []string         `gorm:"type:json;serializer:json" json:"Hobbies"`
	Personality    string           `gorm:"size:50" json:"Personality"`
	WorkStyle      string           `gorm:"size:50" json:"WorkStyle"`
	Quiz           []int            `gorm:"type:json;serializer:json" json:"Quiz"`
	EducationLevel string           `gorm:"size:10" json:"EducationLevel"`
	CareerPath     string           `gorm:"size:120;not null" json:"CareerPath"`
	Source         PredictionSource `gorm:"size:10;not null" json:"Source"`
}

func (PredictionResult) TableName() string {
	return "prediction_results"
}
