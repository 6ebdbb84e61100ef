package ml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// 线性可分的二类样本：第 0 维小于 5 为类 0，否则为类 1
func separableData() ([][]float64, []int) {
	X := [][]float64{
		{1, 10}, {2, 20}, {3, 15}, {4, 12}, {2.5, 18}, {1.5, 11},
		{7, 10}, {8, 20}, {9, 15}, {6, 12}, {7.5, 18}, {8.5, 11},
	}
	y := []int{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}
	return X, y
}

func TestFitForest(t *testing.T) {
	cfg := ForestConfig{Trees: 25, MaxDepth: 8, MinLeaf: 1, Seed: 42}

	t.Run("可分数据上训练集全对", func(t *testing.T) {
		X, y := separableData()
		forest := FitForest(X, y, 2, cfg)
		require.Len(t, forest.Trees, cfg.Trees)

		for i, x := range X {
			require.Equal(t, y[i], forest.Predict(x), "sample %d", i)
		}
	})

	t.Run("同一种子训练结果可复现", func(t *testing.T) {
		X, y := separableData()
		a := FitForest(X, y, 2, cfg)
		b := FitForest(X, y, 2, cfg)

		probe := [][]float64{{0.5, 14}, {4.9, 9}, {5.1, 9}, {9.9, 22}}
		for _, x := range probe {
			require.Equal(t, a.Predict(x), b.Predict(x))
		}
		require.Equal(t, a.Trees, b.Trees)
	})

	t.Run("平票取编号较小的类别", func(t *testing.T) {
		forest := &Forest{
			Trees: []Tree{
				{Nodes: []treeNode{{Leaf: true, Class: 1}}},
				{Nodes: []treeNode{{Leaf: true, Class: 0}}},
			},
			Classes: 2,
		}
		require.Equal(t, 0, forest.Predict([]float64{0}))
	})

	t.Run("单类别数据直接给出该类", func(t *testing.T) {
		X := [][]float64{{1, 2}, {3, 4}, {5, 6}}
		y := []int{0, 0, 0}
		forest := FitForest(X, y, 1, cfg)
		require.Equal(t, 0, forest.Predict([]float64{100, 100}))
	})
}

func TestDefaultForestConfig(t *testing.T) {
	cfg := DefaultForestConfig()
	require.Equal(t, 200, cfg.Trees)
	require.Equal(t, int64(42), cfg.Seed)
}
