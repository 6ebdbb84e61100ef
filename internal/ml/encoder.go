package ml

// Encode 把画像映射为定长特征向量，纯函数，无 I/O。
//
// 列序与训练期完全一致：[age, percentage] ++ one-hot(interests) ++
// one-hot(skills) ++ one-hot(hobbies) ++ code(personality) ++
// code(work_style) ++ quiz[1..10]。分类器权重按位置解释，列序不可变。
//
// 多值字段中词表之外的值直接忽略（对应列保持 0，向量长度不变）；
// 单值字段缺失或不在训练词表中无法编码，返回 EncodingError，
// 由调用方决定转入规则分支。
func Encode(p Profile, b *ModelBundle) ([]float64, error) {
	if b == nil {
		return nil, ErrBundleUnavailable
	}
	if p.Personality == "" {
		return nil, &EncodingError{Field: "personality"}
	}
	if p.WorkStyle == "" {
		return nil, &EncodingError{Field: "work_style"}
	}
	if len(p.Quiz) != QuizLength {
		return nil, &EncodingError{Field: "quiz"}
	}

	personality, ok := b.Personality.IndexOf(p.Personality)
	if !ok {
		return nil, &EncodingError{Field: "personality", Value: p.Personality}
	}
	workStyle, ok := b.WorkStyle.IndexOf(p.WorkStyle)
	if !ok {
		return nil, &EncodingError{Field: "work_style", Value: p.WorkStyle}
	}

	vec := make([]float64, 0, b.VectorLen())
	vec = append(vec, float64(p.Age), p.Percentage)
	vec = appendOneHot(vec, p.Interests, &b.Interests)
	vec = appendOneHot(vec, p.Skills, &b.Skills)
	vec = appendOneHot(vec, p.Hobbies, &b.Hobbies)
	vec = append(vec, float64(personality), float64(workStyle))
	for _, q := range p.Quiz {
		vec = append(vec, float64(q))
	}
	return vec, nil
}

func appendOneHot(vec []float64, values []string, vocab *Vocabulary) []float64 {
	offset := len(vec)
	vec = append(vec, make([]float64, vocab.Len())...)
	for _, val := range values {
		if i, ok := vocab.IndexOf(val); ok {
			vec[offset+i] = 1
		}
	}
	return vec
}
