package ml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecommendCareer(t *testing.T) {
	t.Run("确定性：同一画像重复调用结果一致", func(t *testing.T) {
		p := Profile{
			Percentage:     76,
			Interests:      []string{"Technology"},
			EducationLevel: Education10th,
		}
		first := RecommendCareer(p)
		for i := 0; i < 10; i++ {
			require.Equal(t, first, RecommendCareer(p))
		}
	})

	t.Run("锚点画像", func(t *testing.T) {
		cases := []struct {
			name     string
			profile  Profile
			expected string
		}{
			{
				name: "10年级 76分 技术方向",
				profile: Profile{
					Percentage:     76,
					Interests:      []string{"Technology"},
					EducationLevel: Education10th,
				},
				expected: "IT/Computer Applications - Diploma",
			},
			{
				name: "10年级 50分 工科方向走替代路径",
				profile: Profile{
					Percentage:     50,
					Interests:      []string{"Engineering"},
					EducationLevel: Education10th,
				},
				expected: AlternativeCareerLabel,
			},
			{
				name: "10年级 92分 理科",
				profile: Profile{
					Percentage:     92,
					Interests:      []string{"Science"},
					EducationLevel: Education10th,
				},
				expected: "Medical (PCB) - Pre-Medical Path",
			},
			{
				name: "10年级 65分 理科",
				profile: Profile{
					Percentage:     65,
					Interests:      []string{"Science"},
					EducationLevel: Education10th,
				},
				expected: "Pharmacy - Diploma Course",
			},
			{
				name: "10年级 40分 理科",
				profile: Profile{
					Percentage:     40,
					Interests:      []string{"Science"},
					EducationLevel: Education10th,
				},
				expected: "Lab Assistant - Vocational Training",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				require.Equal(t, tc.expected, RecommendCareer(tc.profile))
			})
		}
	})

	t.Run("阈值边界取大于等于语义", func(t *testing.T) {
		science := func(p float64) Profile {
			return Profile{
				Percentage:     p,
				Interests:      []string{"Science"},
				EducationLevel: Education10th,
			}
		}

		require.Equal(t, "Medical (PCB) - Pre-Medical Path", RecommendCareer(science(90.0)))
		require.Equal(t, "Science (PCM) - Engineering Track", RecommendCareer(science(89.99)))
		require.Equal(t, "Science (PCM) - Engineering Track", RecommendCareer(science(80.0)))
		require.Equal(t, "Science Stream - General", RecommendCareer(science(79.99)))
		require.Equal(t, "Science Stream - General", RecommendCareer(science(70.0)))
		require.Equal(t, "Pharmacy - Diploma Course", RecommendCareer(science(69.99)))
		require.Equal(t, "Pharmacy - Diploma Course", RecommendCareer(science(60.0)))
		require.Equal(t, "Paramedical - Certificate Course", RecommendCareer(science(59.99)))
		require.Equal(t, "Paramedical - Certificate Course", RecommendCareer(science(45.0)))
		require.Equal(t, "Lab Assistant - Vocational Training", RecommendCareer(science(44.99)))
	})

	t.Run("45-60分段工科兴趣触发替代标签", func(t *testing.T) {
		for _, interest := range []string{"Engineering", "Technology", "Computers", "Coding"} {
			p := Profile{
				Percentage:     45,
				Interests:      []string{interest},
				EducationLevel: Education12th,
			}
			require.Equal(t, AlternativeCareerLabel, RecommendCareer(p), "interest=%s", interest)
		}

		// 同分段非工科兴趣不触发
		p := Profile{
			Percentage:     50,
			Interests:      []string{"Business"},
			EducationLevel: Education12th,
		}
		require.NotEqual(t, AlternativeCareerLabel, RecommendCareer(p))
	})

	t.Run("关键词匹配忽略大小写和空白", func(t *testing.T) {
		upper := Profile{
			Percentage:     92,
			Interests:      []string{"SCIENCE"},
			EducationLevel: Education10th,
		}
		spaced := Profile{
			Percentage:     92,
			Interests:      []string{"  science "},
			EducationLevel: Education10th,
		}
		require.Equal(t, "Medical (PCB) - Pre-Medical Path", RecommendCareer(upper))
		require.Equal(t, "Medical (PCB) - Pre-Medical Path", RecommendCareer(spaced))
	})

	t.Run("技能关键词同样参与方向判定", func(t *testing.T) {
		p := Profile{
			Percentage:     85,
			Skills:         []string{"Programming"},
			EducationLevel: Education12th,
		}
		require.Equal(t, "B.Tech IT - State Counselling", RecommendCareer(p))
	})

	t.Run("多方向命中按固定优先级取理科", func(t *testing.T) {
		p := Profile{
			Percentage:     92,
			Interests:      []string{"Business", "Science"},
			EducationLevel: Education10th,
		}
		require.Equal(t, "Medical (PCB) - Pre-Medical Path", RecommendCareer(p))
	})

	t.Run("无关键词落入通用方向", func(t *testing.T) {
		p := Profile{
			Percentage:     95,
			Interests:      []string{"Cooking"},
			EducationLevel: Education10th,
		}
		require.Equal(t, "Science Stream - Explore Options", RecommendCareer(p))
	})

	t.Run("未知学历按其他处理", func(t *testing.T) {
		p := Profile{
			Percentage:     95,
			Interests:      []string{"Technology"},
			EducationLevel: EducationLevel("graduate"),
		}
		require.Equal(t, "Software Engineer - Product Companies", RecommendCareer(p))
	})

	t.Run("全组合均有非空推荐", func(t *testing.T) {
		levels := []EducationLevel{Education10th, Education12th, EducationOther}
		interests := [][]string{
			{"Science"}, {"Engineering"}, {"Technology"},
			{"Business"}, {"Arts"}, {"Cooking"}, nil,
		}
		percentages := []float64{95, 85, 75, 65, 50, 30, 0, 100}

		for _, level := range levels {
			for _, in := range interests {
				for _, pct := range percentages {
					label := RecommendCareer(Profile{
						Percentage:     pct,
						Interests:      in,
						EducationLevel: level,
					})
					require.NotEmpty(t, label, "level=%s interests=%v pct=%.0f", level, in, pct)
				}
			}
		}
	})

	t.Run("同方向分数越高档次不降", func(t *testing.T) {
		// 理科 10 年级各阈值带的期望顺序
		expected := []string{
			"Medical (PCB) - Pre-Medical Path",
			"Science (PCM) - Engineering Track",
			"Science Stream - General",
			"Pharmacy - Diploma Course",
			"Paramedical - Certificate Course",
			"Lab Assistant - Vocational Training",
		}
		for i, pct := range []float64{95, 85, 75, 65, 50, 30} {
			p := Profile{
				Percentage:     pct,
				Interests:      []string{"Science"},
				EducationLevel: Education10th,
			}
			require.Equal(t, expected[i], RecommendCareer(p))
		}
	})
}
