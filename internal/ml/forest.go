package ml

import (
	"math"
	"math/rand"
	"sort"
)

// treeNode 扁平化存储的决策树节点，Left/Right 为节点下标
type treeNode struct {
	Feature   int     `json:"f"`
	Threshold float64 `json:"t"`
	Left      int     `json:"l"`
	Right     int     `json:"r"`
	Leaf      bool    `json:"leaf"`
	Class     int     `json:"c"`
}

// Tree 单棵 CART 分类树
type Tree struct {
	Nodes []treeNode `json:"nodes"`
}

func (t *Tree) predict(x []float64) int {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf {
			return n.Class
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Forest 自助采样 + 随机特征子集的袋装决策树分类器
type Forest struct {
	Trees   []Tree `json:"trees"`
	Classes int    `json:"classes"`
}

// Predict 多数投票，平票取编号较小的类别，保证结果确定
func (f *Forest) Predict(x []float64) int {
	votes := make([]int, f.Classes)
	for i := range f.Trees {
		votes[f.Trees[i].predict(x)]++
	}
	best := 0
	for c := 1; c < f.Classes; c++ {
		if votes[c] > votes[best] {
			best = c
		}
	}
	return best
}

// ForestConfig 训练超参数。Seed 固定以保证可复现
type ForestConfig struct {
	Trees    int
	MaxDepth int
	MinLeaf  int
	Seed     int64
}

// DefaultForestConfig 与离线训练脚本一致的默认超参数
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Trees:    200,
		MaxDepth: 16,
		MinLeaf:  1,
		Seed:     42,
	}
}

// FitForest 在特征矩阵上拟合随机森林。
// 每棵树使用有放回自助采样，分裂时在 sqrt(特征数) 个随机特征里找最优基尼切分。
func FitForest(X [][]float64, y []int, classes int, cfg ForestConfig) *Forest {
	rng := rand.New(rand.NewSource(cfg.Seed))
	features := 0
	if len(X) > 0 {
		features = len(X[0])
	}
	mtry := int(math.Ceil(math.Sqrt(float64(features))))
	if mtry < 1 {
		mtry = 1
	}

	forest := &Forest{
		Trees:   make([]Tree, 0, cfg.Trees),
		Classes: classes,
	}
	for i := 0; i < cfg.Trees; i++ {
		sample := make([]int, len(X))
		for j := range sample {
			sample[j] = rng.Intn(len(X))
		}
		b := &treeBuilder{
			X:       X,
			y:       y,
			classes: classes,
			cfg:     cfg,
			mtry:    mtry,
			rng:     rng,
		}
		b.grow(sample, 0)
		forest.Trees = append(forest.Trees, Tree{Nodes: b.nodes})
	}
	return forest
}

type treeBuilder struct {
	X       [][]float64
	y       []int
	classes int
	cfg     ForestConfig
	mtry    int
	rng     *rand.Rand
	nodes   []treeNode
}

// grow 递归建树，返回新建节点的下标
func (b *treeBuilder) grow(sample []int, depth int) int {
	counts := make([]int, b.classes)
	for _, i := range sample {
		counts[b.y[i]]++
	}
	majority, pure := majorityClass(counts, len(sample))

	if pure || depth >= b.cfg.MaxDepth || len(sample) < 2*b.cfg.MinLeaf {
		return b.leaf(majority)
	}

	feature, threshold, ok := b.bestSplit(sample, counts)
	if !ok {
		return b.leaf(majority)
	}

	var left, right []int
	for _, i := range sample {
		if b.X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return b.leaf(majority)
	}

	idx := len(b.nodes)
	b.nodes = append(b.nodes, treeNode{Feature: feature, Threshold: threshold})
	l := b.grow(left, depth+1)
	r := b.grow(right, depth+1)
	b.nodes[idx].Left = l
	b.nodes[idx].Right = r
	return idx
}

func (b *treeBuilder) leaf(class int) int {
	b.nodes = append(b.nodes, treeNode{Leaf: true, Class: class})
	return len(b.nodes) - 1
}

// bestSplit 在随机特征子集上枚举相邻取值中点，最小化加权基尼
func (b *treeBuilder) bestSplit(sample []int, counts []int) (int, float64, bool) {
	parent := gini(counts, len(sample))
	bestGini := parent
	bestFeature, bestThreshold := -1, 0.0

	features := len(b.X[0])
	perm := b.rng.Perm(features)
	values := make([]float64, 0, len(sample))

	for _, f := range perm[:b.mtry] {
		values = values[:0]
		for _, i := range sample {
			values = append(values, b.X[i][f])
		}
		sort.Float64s(values)

		for v := 1; v < len(values); v++ {
			if values[v] == values[v-1] {
				continue
			}
			threshold := (values[v] + values[v-1]) / 2

			leftCounts := make([]int, b.classes)
			leftN := 0
			for _, i := range sample {
				if b.X[i][f] <= threshold {
					leftCounts[b.y[i]]++
					leftN++
				}
			}
			rightN := len(sample) - leftN
			if leftN == 0 || rightN == 0 {
				continue
			}
			rightCounts := make([]int, b.classes)
			for c := range rightCounts {
				rightCounts[c] = countsMinus(counts, leftCounts, c)
			}

			weighted := (float64(leftN)*gini(leftCounts, leftN) +
				float64(rightN)*gini(rightCounts, rightN)) / float64(len(sample))
			if weighted < bestGini {
				bestGini = weighted
				bestFeature = f
				bestThreshold = threshold
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

func countsMinus(total, left []int, c int) int {
	return total[c] - left[c]
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	g := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		g -= p * p
	}
	return g
}

func majorityClass(counts []int, n int) (int, bool) {
	best := 0
	for c := 1; c < len(counts); c++ {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best, counts[best] == n
}
