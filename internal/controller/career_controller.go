package controller

import (
	"errors"
	"pathfinder_backend/internal/careerdata"
	"pathfinder_backend/internal/ml"
	"pathfinder_backend/internal/service"
	"pathfinder_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CareerController struct {
	PredictionService *service.PredictionService
	CareerService     *service.CareerService
	CatalogPath       string
}

func NewCareerController(predictionService *service.PredictionService, careerService *service.CareerService, catalogPath string) *CareerController {
	return &CareerController{
		PredictionService: predictionService,
		CareerService:     careerService,
		CatalogPath:       catalogPath,
	}
}

// ProfileRequest 画像提交体。多值字段为数组，测评为 10 道 1-5 分题
// swagger:model ProfileRequest
type ProfileRequest struct {
	Age            int      `json:"age" binding:"required,gte=10,lte=80"`
	Percentage     *float64 `json:"percentage" binding:"required,gte=0,lte=100"`
	Interests      []string `json:"interests"`
	Skills         []string `json:"skills"`
	Hobbies        []string `json:"hobbies"`
	Personality    string   `json:"personality"`
	WorkStyle      string   `json:"work_style"`
	Quiz           []int    `json:"quiz" binding:"omitempty,len=10,dive,gte=1,lte=5"`
	EducationLevel string   `json:"education_level" binding:"required,oneof=10th 12th other"`
}

func (r *ProfileRequest) toProfile() ml.Profile {
	quiz := r.Quiz
	if len(quiz) == 0 {
		// 未作答按中性分 3 处理
		quiz = make([]int, ml.QuizLength)
		for i := range quiz {
			quiz[i] = 3
		}
	}
	return ml.Profile{
		Age:            r.Age,
		Percentage:     *r.Percentage,
		Interests:      r.Interests,
		Skills:         r.Skills,
		Hobbies:        r.Hobbies,
		Personality:    r.Personality,
		WorkStyle:      r.WorkStyle,
		Quiz:           quiz,
		EducationLevel: ml.EducationLevel(r.EducationLevel),
	}
}

// Predict godoc
// @Summary 职业预测
// @Description 根据画像返回预测的职业方向，分类器不可用时走规则推荐
// @Tags 职业
// @Accept  json
// @Produce  json
// @Param   body body ProfileRequest true "用户画像"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/predict [post]
func (c *CareerController) Predict(ctx *gin.Context) {
	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	label, source := c.PredictionService.Predict(req.toProfile())

	util.Success(ctx, gin.H{
		"career_path": label,
		"source":      source,
	})
}

// SubmitAssessment godoc
// @Summary 提交测评画像
// @Description 预测职业方向并保存结果记录，返回标签、职业详情与替代升学路径
// @Tags 职业
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ProfileRequest true "用户画像"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/assessment/submit [post]
func (c *CareerController) SubmitAssessment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.PredictionService.SubmitProfile(ctx.Request.Context(), claims.UserID, req.toProfile())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"result":            result,
		"career":            c.CareerService.Detail(result.CareerPath),
		"alternative_paths": c.CareerService.AlternativePathsFor(result.CareerPath),
	})
}

// GetLatestResult godoc
// @Summary 最近一次测评结果
// @Description 返回当前用户最近一次预测结果及职业详情
// @Tags 职业
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "暂无结果"
// @Router /api/results [get]
func (c *CareerController) GetLatestResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.PredictionService.LatestResult(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"result":            result,
		"career":            c.CareerService.Detail(result.CareerPath),
		"alternative_paths": c.CareerService.AlternativePathsFor(result.CareerPath),
	})
}

// GetResultHistory godoc
// @Summary 历史测评记录
// @Description 分页返回当前用户的历史预测记录
// @Tags 职业
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码"
// @Param   limit query int false "每页条数"
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/results/history [get]
func (c *CareerController) GetResultHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	results, total, err := c.PredictionService.History(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  results,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetCareerDetail godoc
// @Summary 职业详情
// @Description 按职业标签查询详情，未知标签返回通用记录
// @Tags 职业
// @Produce  json
// @Param   name path string true "职业标签"
// @Success 200 {object} util.Response{data=careerdata.Detail} "成功"
// @Router /api/careers/{name} [get]
func (c *CareerController) GetCareerDetail(ctx *gin.Context) {
	name := ctx.Param("name")
	detail := c.CareerService.Detail(name)

	util.Success(ctx, gin.H{
		"name":              name,
		"detail":            detail,
		"alternative_paths": c.CareerService.AlternativePathsFor(name),
	})
}

// GetCourses godoc
// @Summary 课程目录
// @Tags 参考数据
// @Produce  json
// @Success 200 {object} util.Response{data=[]careerdata.Course} "成功"
// @Router /api/courses [get]
func (c *CareerController) GetCourses(ctx *gin.Context) {
	util.Success(ctx, c.CareerService.Courses())
}

// ReloadCatalog godoc
// @Summary 重载职业目录
// @Description 管理员手动从资源文件重载职业参考数据
// @Tags 参考数据
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/admin/careers/reload [post]
func (c *CareerController) ReloadCatalog(ctx *gin.Context) {
	catalog, err := careerdata.Load(c.CatalogPath)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	c.CareerService.Reload(catalog)
	util.Success(ctx, gin.H{"careers": len(catalog.Careers)})
}

// GetSkills godoc
// @Summary 技能目录
// @Tags 参考数据
// @Produce  json
// @Success 200 {object} util.Response{data=[]careerdata.Skill} "成功"
// @Router /api/skills [get]
func (c *CareerController) GetSkills(ctx *gin.Context) {
	util.Success(ctx, c.CareerService.Skills())
}
