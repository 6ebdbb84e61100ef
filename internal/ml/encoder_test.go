package ml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testBundle() *ModelBundle {
	b := &ModelBundle{}
	for _, v := range []string{"Technology", "Science", "Business"} {
		b.Interests.Add(v)
	}
	for _, v := range []string{"Programming", "Communication"} {
		b.Skills.Add(v)
	}
	for _, v := range []string{"Gaming", "Reading"} {
		b.Hobbies.Add(v)
	}
	b.Personality.Add("Analytical")
	b.Personality.Add("Creative")
	b.WorkStyle.Add("Independent")
	b.WorkStyle.Add("Team")
	b.Labels.Add("Software Engineer")
	b.Labels.Add("Medical Doctor")
	return b
}

func testProfile() Profile {
	return Profile{
		Age:         17,
		Percentage:  82.5,
		Interests:   []string{"Technology"},
		Skills:      []string{"Programming"},
		Hobbies:     []string{"Gaming"},
		Personality: "Analytical",
		WorkStyle:   "Independent",
		Quiz:        []int{4, 5, 3, 4, 5, 4, 3, 4, 5, 4},
	}
}

func TestEncode(t *testing.T) {
	t.Run("向量长度固定且与输入无关", func(t *testing.T) {
		b := testBundle()
		expected := b.VectorLen()
		require.Equal(t, 2+3+2+2+2+QuizLength, expected)

		vec, err := Encode(testProfile(), b)
		require.NoError(t, err)
		require.Len(t, vec, expected)

		// 多值字段为空同样得到定长向量
		empty := testProfile()
		empty.Interests = nil
		empty.Skills = nil
		empty.Hobbies = nil
		vec, err = Encode(empty, b)
		require.NoError(t, err)
		require.Len(t, vec, expected)
	})

	t.Run("列序与 one-hot 位置", func(t *testing.T) {
		b := testBundle()
		vec, err := Encode(testProfile(), b)
		require.NoError(t, err)

		require.Equal(t, 17.0, vec[0])
		require.Equal(t, 82.5, vec[1])
		// interests: Technology 是词表第 0 位
		require.Equal(t, []float64{1, 0, 0}, vec[2:5])
		// skills: Programming 第 0 位
		require.Equal(t, []float64{1, 0}, vec[5:7])
		// hobbies: Gaming 第 0 位
		require.Equal(t, []float64{1, 0}, vec[7:9])
		// personality/work_style 整型编码
		require.Equal(t, 0.0, vec[9])
		require.Equal(t, 0.0, vec[10])
		// quiz 原样拼接
		require.Equal(t, []float64{4, 5, 3, 4, 5, 4, 3, 4, 5, 4}, vec[11:21])
	})

	t.Run("词表外的多值项被忽略", func(t *testing.T) {
		b := testBundle()
		p := testProfile()
		p.Interests = []string{"Astrology", "Technology"}
		p.Hobbies = []string{"Skydiving"}

		vec, err := Encode(p, b)
		require.NoError(t, err)
		require.Len(t, vec, b.VectorLen())
		require.Equal(t, []float64{1, 0, 0}, vec[2:5])
		require.Equal(t, []float64{0, 0}, vec[7:9])
	})

	t.Run("单值字段缺失返回编码错误", func(t *testing.T) {
		b := testBundle()

		p := testProfile()
		p.Personality = ""
		_, err := Encode(p, b)
		require.Error(t, err)
		require.True(t, IsEncodingError(err))

		p = testProfile()
		p.WorkStyle = ""
		_, err = Encode(p, b)
		require.True(t, IsEncodingError(err))

		p = testProfile()
		p.Quiz = []int{1, 2, 3}
		_, err = Encode(p, b)
		require.True(t, IsEncodingError(err))
	})

	t.Run("单值字段词表外返回编码错误", func(t *testing.T) {
		b := testBundle()
		p := testProfile()
		p.Personality = "Adventurous"

		_, err := Encode(p, b)
		require.True(t, IsEncodingError(err))

		var encErr *EncodingError
		require.True(t, errors.As(err, &encErr))
		require.Equal(t, "personality", encErr.Field)
		require.Equal(t, "Adventurous", encErr.Value)
	})

	t.Run("模型包缺失返回专用错误", func(t *testing.T) {
		_, err := Encode(testProfile(), nil)
		require.ErrorIs(t, err, ErrBundleUnavailable)
		require.False(t, IsEncodingError(err))
	})
}
