package ml

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// Sample 训练集中的一行：画像 + 目标职业标签
type Sample struct {
	Profile Profile
	Label   string
}

// TrainingReport 训练汇总，供离线任务打日志
type TrainingReport struct {
	Samples      int
	TrainSamples int
	TestSamples  int
	Features     int
	Classes      int
	Accuracy     float64
}

var datasetColumns = []string{
	"age", "percentage", "interests", "skills", "hobbies",
	"personality", "work_style",
	"quiz_q1", "quiz_q2", "quiz_q3", "quiz_q4", "quiz_q5",
	"quiz_q6", "quiz_q7", "quiz_q8", "quiz_q9", "quiz_q10",
	"career_path",
}

// LoadDataset 读取 CSV 训练集。多值列在单元格内以逗号分隔
func LoadDataset(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDataset(f)
}

// ReadDataset 解析训练集。表头缺列或数值非法直接报错，离线任务就此终止
func ReadDataset(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range datasetColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("dataset missing column %q", name)
		}
	}

	var samples []Sample
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}
		line++

		age, err := strconv.Atoi(strings.TrimSpace(record[col["age"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad age: %w", line, err)
		}
		percentage, err := strconv.ParseFloat(strings.TrimSpace(record[col["percentage"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad percentage: %w", line, err)
		}

		quiz := make([]int, 0, QuizLength)
		for i := 1; i <= QuizLength; i++ {
			q, err := strconv.Atoi(strings.TrimSpace(record[col[fmt.Sprintf("quiz_q%d", i)]]))
			if err != nil {
				return nil, fmt.Errorf("line %d: bad quiz_q%d: %w", line, i, err)
			}
			quiz = append(quiz, q)
		}

		label := strings.TrimSpace(record[col["career_path"]])
		if label == "" {
			return nil, fmt.Errorf("line %d: empty career_path", line)
		}

		samples = append(samples, Sample{
			Profile: Profile{
				Age:         age,
				Percentage:  percentage,
				Interests:   splitMultiValue(record[col["interests"]]),
				Skills:      splitMultiValue(record[col["skills"]]),
				Hobbies:     splitMultiValue(record[col["hobbies"]]),
				Personality: strings.TrimSpace(record[col["personality"]]),
				WorkStyle:   strings.TrimSpace(record[col["work_style"]]),
				Quiz:        quiz,
			},
			Label: label,
		})
	}
	return samples, nil
}

func splitMultiValue(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Train 拟合词表与分类器，产出完整模型包。
// 词表顺序 = 训练集中首次出现顺序，持久化后按原样回放。
// 80/20 划分 + 固定种子，同一数据集重复训练结果一致。
func Train(samples []Sample, cfg ForestConfig) (*ModelBundle, *TrainingReport, error) {
	if len(samples) < 5 {
		return nil, nil, fmt.Errorf("dataset too small: %d samples", len(samples))
	}

	bundle := &ModelBundle{}
	for _, s := range samples {
		for _, v := range s.Profile.Interests {
			bundle.Interests.Add(v)
		}
		for _, v := range s.Profile.Skills {
			bundle.Skills.Add(v)
		}
		for _, v := range s.Profile.Hobbies {
			bundle.Hobbies.Add(v)
		}
		if s.Profile.Personality == "" || s.Profile.WorkStyle == "" {
			return nil, nil, fmt.Errorf("sample with empty personality/work_style")
		}
		bundle.Personality.Add(s.Profile.Personality)
		bundle.WorkStyle.Add(s.Profile.WorkStyle)
		bundle.Labels.Add(s.Label)
	}

	X := make([][]float64, 0, len(samples))
	y := make([]int, 0, len(samples))
	for _, s := range samples {
		vec, err := Encode(s.Profile, bundle)
		if err != nil {
			return nil, nil, fmt.Errorf("encode training sample: %w", err)
		}
		X = append(X, vec)
		code, _ := bundle.Labels.IndexOf(s.Label)
		y = append(y, code)
	}

	// 打乱后取前 80% 训练、后 20% 评估
	rng := rand.New(rand.NewSource(cfg.Seed))
	perm := rng.Perm(len(samples))
	testSize := len(samples) / 5
	trainSize := len(samples) - testSize

	trainX := make([][]float64, 0, trainSize)
	trainY := make([]int, 0, trainSize)
	for _, i := range perm[:trainSize] {
		trainX = append(trainX, X[i])
		trainY = append(trainY, y[i])
	}

	bundle.Forest = FitForest(trainX, trainY, bundle.Labels.Len(), cfg)

	correct := 0
	for _, i := range perm[trainSize:] {
		if bundle.Forest.Predict(X[i]) == y[i] {
			correct++
		}
	}
	accuracy := 1.0
	if testSize > 0 {
		accuracy = float64(correct) / float64(testSize)
	}

	report := &TrainingReport{
		Samples:      len(samples),
		TrainSamples: trainSize,
		TestSamples:  testSize,
		Features:     bundle.VectorLen(),
		Classes:      bundle.Labels.Len(),
		Accuracy:     accuracy,
	}
	return bundle, report, nil
}
