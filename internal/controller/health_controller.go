package controller

import (
	"pathfinder_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB          *gorm.DB
	ModelLoaded func() bool
}

func NewHealthController(db *gorm.DB, modelLoaded func() bool) *HealthController {
	return &HealthController{DB: db, ModelLoaded: modelLoaded}
}

// HealthCheck godoc
// @Summary 健康检查
// @Description 返回服务与依赖状态；模型包掉线时 mode 为 rules-only，服务仍可用
// @Tags 系统
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	dbOK := true
	if sqlDB, err := c.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbOK = false
	}

	mode := "model"
	if !c.ModelLoaded() {
		mode = "rules-only"
	}

	util.Success(ctx, gin.H{
		"status":   "ok",
		"database": dbOK,
		"mode":     mode,
	})
}
