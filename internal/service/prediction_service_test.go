package service

import (
	"context"
	"testing"

	"pathfinder_backend/internal/ml"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/util"
	"pathfinder_backend/pkg/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func init() {
	logger.Log = zap.NewNop()
}

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func trainedBundle(t *testing.T) *ml.ModelBundle {
	t.Helper()

	var samples []ml.Sample
	add := func(n int, interests []string, personality, workStyle, label string, base float64) {
		for i := 0; i < n; i++ {
			samples = append(samples, ml.Sample{
				Profile: ml.Profile{
					Age:         16 + i%3,
					Percentage:  base + float64(i),
					Interests:   interests,
					Personality: personality,
					WorkStyle:   workStyle,
					Quiz:        []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
				},
				Label: label,
			})
		}
	}
	add(6, []string{"Technology"}, "Analytical", "Independent", "Software Engineer", 80)
	add(6, []string{"Biology"}, "Empathetic", "Team", "Medical Doctor", 85)

	bundle, _, err := ml.Train(samples, ml.ForestConfig{Trees: 30, MaxDepth: 8, MinLeaf: 1, Seed: 42})
	require.NoError(t, err)
	return bundle
}

func TestPredictionServicePredict(t *testing.T) {
	profile := ml.Profile{
		Age:            17,
		Percentage:     82,
		Interests:      []string{"Technology"},
		Personality:    "Analytical",
		WorkStyle:      "Independent",
		Quiz:           []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
		EducationLevel: ml.Education12th,
	}

	t.Run("无模型包时走规则分支", func(t *testing.T) {
		svc := NewPredictionService(nil, nil, nil)
		require.False(t, svc.ModelLoaded())

		label, source := svc.Predict(profile)
		require.Equal(t, model.SourceRules, source)
		require.Equal(t, ml.RecommendCareer(profile), label)
	})

	t.Run("模型包可用时走分类器", func(t *testing.T) {
		svc := NewPredictionService(nil, nil, trainedBundle(t))
		require.True(t, svc.ModelLoaded())

		label, source := svc.Predict(profile)
		require.Equal(t, model.SourceModel, source)
		require.Contains(t, []string{"Software Engineer", "Medical Doctor"}, label)
	})

	t.Run("画像无法编码时单次请求回落规则", func(t *testing.T) {
		svc := NewPredictionService(nil, nil, trainedBundle(t))

		unseen := profile
		unseen.Personality = "Adventurous" // 不在训练词表中

		label, source := svc.Predict(unseen)
		require.Equal(t, model.SourceRules, source)
		require.Equal(t, ml.RecommendCareer(unseen), label)

		// 正常画像仍走分类器，回落只影响单次请求
		_, source = svc.Predict(profile)
		require.Equal(t, model.SourceModel, source)
	})

	t.Run("每次预测都返回非空标签", func(t *testing.T) {
		svc := NewPredictionService(nil, nil, nil)
		label, _ := svc.Predict(ml.Profile{})
		require.NotEmpty(t, label)
	})
}

func TestPredictionServiceLatestResult(t *testing.T) {
	t.Run("无历史记录返回专用错误", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery("SELECT(.+)FROM `prediction_results`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		svc := NewPredictionService(repository.NewResultRepository(db), nil, nil)
		_, err := svc.LatestResult(context.Background(), 42)
		require.ErrorIs(t, err, util.ErrResultNotFound)
	})
}
