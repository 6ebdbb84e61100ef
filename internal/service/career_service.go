package service

import (
	"pathfinder_backend/internal/careerdata"
	"pathfinder_backend/internal/ml"
	"sync"
)

// CareerService 职业参考数据查询。
// 目录整体只读，热更新时在锁内整表替换，读路径无拷贝
type CareerService struct {
	mu      sync.RWMutex
	catalog *careerdata.Catalog
}

func NewCareerService(catalog *careerdata.Catalog) *CareerService {
	if catalog == nil {
		catalog = careerdata.DefaultCatalog()
	}
	return &CareerService{catalog: catalog}
}

// Detail 标签 -> 详情，未知标签返回兜底记录
func (s *CareerService) Detail(name string) careerdata.Detail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.DetailFor(name)
}

func (s *CareerService) Courses() []careerdata.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Courses
}

func (s *CareerService) Skills() []careerdata.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Skills
}

// AlternativePathsFor 仅替代路径标签挂载升学子项，其余标签返回空
func (s *CareerService) AlternativePathsFor(label string) []careerdata.AlternativePath {
	if label != ml.AlternativeCareerLabel {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.AlternativePaths
}

// Reload 热更新目录，由资源文件监听器触发
func (s *CareerService) Reload(catalog *careerdata.Catalog) {
	if catalog == nil {
		return
	}
	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()
}
