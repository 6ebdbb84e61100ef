package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Vocabulary 训练期拟合的类别词表。
// Values 的顺序即拟合时的首次出现顺序，决定 one-hot 列序和整型编码值，
// 持久化后不可重排，否则历史模型的特征列全部错位。
type Vocabulary struct {
	Values []string `json:"values"`

	index map[string]int
}

func (v *Vocabulary) init() {
	v.index = make(map[string]int, len(v.Values))
	for i, val := range v.Values {
		v.index[val] = i
	}
}

// Add 按出现顺序登记类别值，重复值忽略
func (v *Vocabulary) Add(val string) {
	if v.index == nil {
		v.index = make(map[string]int)
	}
	if _, ok := v.index[val]; ok {
		return
	}
	v.index[val] = len(v.Values)
	v.Values = append(v.Values, val)
}

func (v *Vocabulary) IndexOf(val string) (int, bool) {
	if v.index == nil {
		v.init()
	}
	i, ok := v.index[val]
	return i, ok
}

func (v *Vocabulary) Len() int {
	return len(v.Values)
}

// ModelBundle 一次训练产出的完整工件：分类器 + 全部词表/编码。
// 进程启动时整体加载，运行期只读，可被多个请求并发使用。
type ModelBundle struct {
	Forest      *Forest    `json:"forest"`
	Interests   Vocabulary `json:"interests"`
	Skills      Vocabulary `json:"skills"`
	Hobbies     Vocabulary `json:"hobbies"`
	Personality Vocabulary `json:"personality"`
	WorkStyle   Vocabulary `json:"work_style"`
	Labels      Vocabulary `json:"labels"`
}

// VectorLen 特征向量固定长度：2 个数值列 + 三组 one-hot + 2 个编码列 + 测评题
func (b *ModelBundle) VectorLen() int {
	return 2 + b.Interests.Len() + b.Skills.Len() + b.Hobbies.Len() + 2 + QuizLength
}

func (b *ModelBundle) validate() error {
	if b.Forest == nil || len(b.Forest.Trees) == 0 {
		return fmt.Errorf("bundle has no classifier")
	}
	if b.Labels.Len() == 0 {
		return fmt.Errorf("bundle has no label decoding table")
	}
	if b.Personality.Len() == 0 || b.WorkStyle.Len() == 0 {
		return fmt.Errorf("bundle has incomplete encodings")
	}
	return nil
}

// LoadBundle 从单个 JSON 工件加载模型包。损坏或缺失由调用方降级处理
func LoadBundle(path string) (*ModelBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}

	var b ModelBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("invalid bundle: %w", err)
	}

	b.Interests.init()
	b.Skills.init()
	b.Hobbies.init()
	b.Personality.init()
	b.WorkStyle.init()
	b.Labels.init()
	return &b, nil
}

// Save 原子写出模型包：先写临时文件再 rename，任何失败都不会留下半截工件
func (b *ModelBundle) Save(path string) error {
	if err := b.validate(); err != nil {
		return fmt.Errorf("refusing to save partial bundle: %w", err)
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
