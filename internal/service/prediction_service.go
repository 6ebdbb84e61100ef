package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"pathfinder_backend/internal/ml"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/util"
	"pathfinder_backend/pkg/logger"
	"pathfinder_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const latestResultCacheTTL = time.Hour

// PredictionService 职业预测入口。
// 模型包在启动时加载一次，运行期只读；bundle 为 nil 表示纯规则模式。
// 编码/推理失败不向上抛，单次请求就地转入规则分支，每个请求必有标签。
type PredictionService struct {
	ResultRepo *repository.ResultRepository
	Redis      *redis.Client

	bundle *ml.ModelBundle
}

func NewPredictionService(resultRepo *repository.ResultRepository, rdb *redis.Client, bundle *ml.ModelBundle) *PredictionService {
	return &PredictionService{
		ResultRepo: resultRepo,
		Redis:      rdb,
		bundle:     bundle,
	}
}

// ModelLoaded 模型包是否可用
func (s *PredictionService) ModelLoaded() bool {
	return s.bundle != nil
}

// Predict 返回职业标签及来源。优先走分类器；
// 模型包缺失、编码失败或推理结果越界时回落到规则表
func (s *PredictionService) Predict(p ml.Profile) (string, model.PredictionSource) {
	label, source := s.predict(p)
	monitoring.PredictionCounter.WithLabelValues(string(source)).Inc()
	return label, source
}

func (s *PredictionService) predict(p ml.Profile) (string, model.PredictionSource) {
	if s.bundle == nil {
		return ml.RecommendCareer(p), model.SourceRules
	}

	vec, err := ml.Encode(p, s.bundle)
	if err != nil {
		if ml.IsEncodingError(err) {
			logger.Log.Warn("profile not encodable, using rule-based path", zap.Error(err))
		} else {
			logger.Log.Error("encode failed, using rule-based path", zap.Error(err))
		}
		return ml.RecommendCareer(p), model.SourceRules
	}

	idx := s.bundle.Forest.Predict(vec)
	if idx < 0 || idx >= s.bundle.Labels.Len() {
		logger.Log.Error("classifier returned unknown label index, using rule-based path",
			zap.Int("index", idx))
		return ml.RecommendCareer(p), model.SourceRules
	}
	return s.bundle.Labels.Values[idx], model.SourceModel
}

// SubmitProfile 预测并持久化一条结果记录，最新结果写入缓存
func (s *PredictionService) SubmitProfile(ctx context.Context, userID uint, p ml.Profile) (*model.PredictionResult, error) {
	label, source := s.Predict(p)

	result := &model.PredictionResult{
		UserID:         userID,
		Age:            p.Age,
		Percentage:     p.Percentage,
		Interests:      p.Interests,
		Skills:         p.Skills,
		Hobbies:        p.Hobbies,
		Personality:    p.Personality,
		WorkStyle:      p.WorkStyle,
		Quiz:           p.Quiz,
		EducationLevel: string(p.EducationLevel),
		CareerPath:     label,
		Source:         source,
	}

	if err := s.ResultRepo.Create(result); err != nil {
		return nil, err
	}

	s.cacheLatest(ctx, userID, result)
	return result, nil
}

// LatestResult 查询用户最近一次预测，先查缓存再回源数据库
func (s *PredictionService) LatestResult(ctx context.Context, userID uint) (*model.PredictionResult, error) {
	if s.Redis != nil {
		data, err := s.Redis.Get(ctx, latestResultKey(userID)).Bytes()
		if err == nil {
			var cached model.PredictionResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	result, err := s.ResultRepo.FindLatestByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResultNotFound
		}
		return nil, err
	}

	s.cacheLatest(ctx, userID, result)
	return result, nil
}

// History 用户历史预测记录
func (s *PredictionService) History(userID uint, page, limit int) ([]model.PredictionResult, int64, error) {
	return s.ResultRepo.ListByUser(userID, page, limit)
}

func (s *PredictionService) cacheLatest(ctx context.Context, userID uint, result *model.PredictionResult) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, latestResultKey(userID), data, latestResultCacheTTL).Err(); err != nil {
		logger.Log.Warn("failed to cache latest result", zap.Error(err))
	}
}

func latestResultKey(userID uint) string {
	return fmt.Sprintf("pathfinder:result:latest:%d", userID)
}
