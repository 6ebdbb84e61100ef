package ml

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// 三个职业各一组特征鲜明的画像，保证小数据集也能学出来
func trainingSamples() []Sample {
	var samples []Sample
	add := func(n int, interests, skills []string, personality, workStyle, label string, base float64) {
		for i := 0; i < n; i++ {
			samples = append(samples, Sample{
				Profile: Profile{
					Age:         16 + i%3,
					Percentage:  base + float64(i),
					Interests:   interests,
					Skills:      skills,
					Personality: personality,
					WorkStyle:   workStyle,
					Quiz:        []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
				},
				Label: label,
			})
		}
	}
	add(7, []string{"Technology", "Coding"}, []string{"Programming"}, "Analytical", "Independent", "Software Engineer", 80)
	add(7, []string{"Biology", "Medical"}, []string{"Patient Care"}, "Empathetic", "Team", "Medical Doctor", 85)
	add(7, []string{"Business", "Finance"}, []string{"Leadership"}, "Extrovert", "Team", "Business Manager", 75)
	return samples
}

func TestTrain(t *testing.T) {
	cfg := ForestConfig{Trees: 50, MaxDepth: 10, MinLeaf: 1, Seed: 42}

	t.Run("训练产出完整模型包与汇总", func(t *testing.T) {
		samples := trainingSamples()
		bundle, report, err := Train(samples, cfg)
		require.NoError(t, err)
		require.NotNil(t, bundle.Forest)

		require.Equal(t, len(samples), report.Samples)
		require.Equal(t, len(samples)/5, report.TestSamples)
		require.Equal(t, len(samples)-len(samples)/5, report.TrainSamples)
		require.Equal(t, bundle.VectorLen(), report.Features)
		require.Equal(t, 3, report.Classes)
		require.GreaterOrEqual(t, report.Accuracy, 0.0)
		require.LessOrEqual(t, report.Accuracy, 1.0)
	})

	t.Run("词表按数据集首次出现顺序", func(t *testing.T) {
		bundle, _, err := Train(trainingSamples(), cfg)
		require.NoError(t, err)

		require.Equal(t, []string{"Technology", "Coding", "Biology", "Medical", "Business", "Finance"},
			bundle.Interests.Values)
		require.Equal(t, []string{"Software Engineer", "Medical Doctor", "Business Manager"},
			bundle.Labels.Values)
	})

	t.Run("保存重载后预测结果一致", func(t *testing.T) {
		samples := trainingSamples()
		bundle, _, err := Train(samples, cfg)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "bundle.json")
		require.NoError(t, bundle.Save(path))
		loaded, err := LoadBundle(path)
		require.NoError(t, err)

		for _, s := range samples {
			vec, err := Encode(s.Profile, bundle)
			require.NoError(t, err)
			loadedVec, err := Encode(s.Profile, loaded)
			require.NoError(t, err)
			require.Equal(t, vec, loadedVec)
			require.Equal(t, bundle.Forest.Predict(vec), loaded.Forest.Predict(loadedVec))
		}
	})

	t.Run("特征鲜明的画像预测到对应职业", func(t *testing.T) {
		samples := trainingSamples()
		bundle, _, err := Train(samples, cfg)
		require.NoError(t, err)

		p := Profile{
			Age:         17,
			Percentage:  83,
			Interests:   []string{"Technology", "Coding"},
			Skills:      []string{"Programming"},
			Personality: "Analytical",
			WorkStyle:   "Independent",
			Quiz:        []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
		}
		vec, err := Encode(p, bundle)
		require.NoError(t, err)
		require.Equal(t, "Software Engineer", bundle.Labels.Values[bundle.Forest.Predict(vec)])
	})

	t.Run("数据太少直接报错", func(t *testing.T) {
		_, _, err := Train(trainingSamples()[:3], cfg)
		require.Error(t, err)
	})
}

func TestReadDataset(t *testing.T) {
	header := strings.Join(datasetColumns, ",")

	t.Run("解析多值列与数值列", func(t *testing.T) {
		csv := header + "\n" +
			`17,82.5,"Technology, Coding","Programming",Gaming,Analytical,Independent,4,5,3,4,5,4,3,4,5,4,Software Engineer` + "\n"
		samples, err := ReadDataset(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, samples, 1)

		s := samples[0]
		require.Equal(t, 17, s.Profile.Age)
		require.Equal(t, 82.5, s.Profile.Percentage)
		require.Equal(t, []string{"Technology", "Coding"}, s.Profile.Interests)
		require.Equal(t, []string{"Gaming"}, s.Profile.Hobbies)
		require.Equal(t, []int{4, 5, 3, 4, 5, 4, 3, 4, 5, 4}, s.Profile.Quiz)
		require.Equal(t, "Software Engineer", s.Label)
	})

	t.Run("表头缺列报错", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader("age,percentage\n17,80\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "missing column")
	})

	t.Run("数值非法时带行号报错", func(t *testing.T) {
		csv := header + "\n" +
			"seventeen,82.5,Tech,Prog,Gaming,Analytical,Independent,4,5,3,4,5,4,3,4,5,4,Software Engineer\n"
		_, err := ReadDataset(strings.NewReader(csv))
		require.Error(t, err)
		require.Contains(t, err.Error(), "line 2")
	})

	t.Run("目标标签为空报错", func(t *testing.T) {
		row := "17,82.5,Tech,Prog,Gaming,Analytical,Independent,4,5,3,4,5,4,3,4,5,4,"
		_, err := ReadDataset(strings.NewReader(header + "\n" + row + "\n"))
		require.Error(t, err)
	})

	t.Run("样例数据集可直接训练", func(t *testing.T) {
		samples, err := LoadDataset(filepath.Join("..", "..", "datasets", "careers_dataset.csv"))
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(samples), 5)

		_, report, err := Train(samples, ForestConfig{Trees: 20, MaxDepth: 10, MinLeaf: 1, Seed: 42})
		require.NoError(t, err)
		require.Positive(t, report.Classes)
	})
}
