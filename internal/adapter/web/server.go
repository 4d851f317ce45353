package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"project-pathfinder/internal/domain"
	"project-pathfinder/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server Web 适配器: 表单收集偏好，卡片展示推荐
// 路线图按卡片懒加载，每个 /api/roadmap 请求独立串行处理，互不影响
type Server struct {
	svc    *service.RecommendService
	engine *gin.Engine
}

// pageData 模板渲染用的数据
type pageData struct {
	SkillLevels []string
	Prefs       domain.Preferences
	Results     []domain.Project
	Searched    bool
	NoData      bool
	Error       string
}

// roadmapRequest /api/roadmap 的请求体
type roadmapRequest struct {
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	TechStack   string `json:"tech_stack"`
	SkillLevel  string `json:"skill_level"`
}

// NewServer 创建 Web 服务
func NewServer(svc *service.RecommendService) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	s := &Server{svc: svc, engine: engine}
	engine.GET("/", s.handleIndex)
	engine.POST("/recommend", s.handleRecommend)
	engine.POST("/api/roadmap", s.handleRoadmap)
	return s
}

// Handler 暴露底层 http.Handler，测试用
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run 启动 HTTP 服务
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{SkillLevels: domain.SkillLevels})
}

func (s *Server) handleRecommend(c *gin.Context) {
	data := pageData{
		SkillLevels: domain.SkillLevels,
		Prefs: domain.Preferences{
			SkillLevel:  c.PostForm("skill_level"),
			TechStack:   c.PostForm("tech_stack"),
			ProjectType: c.PostForm("project_type"),
		},
	}

	if !s.svc.HasData() {
		data.NoData = true
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	prefs, err := domain.ValidatePreferences(data.Prefs.SkillLevel, data.Prefs.TechStack, data.Prefs.ProjectType)
	if err != nil {
		data.Error = err.Error()
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	data.Prefs = prefs
	data.Searched = true
	data.Results = s.svc.Recommend(prefs)
	c.HTML(http.StatusOK, "index.html", data)
}

// handleRoadmap 为单张卡片生成路线图
// service 层保证永不抛错，所以这里始终返回 200 和可展示文案
func (s *Server) handleRoadmap(c *gin.Context) {
	var req roadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误"})
		return
	}

	text := s.svc.RoadmapText(c.Request.Context(), domain.Project{
		Name:        req.ProjectName,
		Description: req.Description,
	}, domain.Preferences{
		TechStack:  req.TechStack,
		SkillLevel: req.SkillLevel,
	})
	c.JSON(http.StatusOK, gin.H{"roadmap": text})
}
