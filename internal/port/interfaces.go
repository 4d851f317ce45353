package port

import (
	"context"
	"fmt"

	"project-pathfinder/internal/domain"
)

// Fetcher (采集员): 负责调 GitHub Search API 构建数据集
// 一次性跑，结果交给 Store 落盘
type Fetcher interface {
	// 比如: FetchByTopic(ctx, "data science", 10)
	FetchByTopic(ctx context.Context, topic string, maxPages int) ([]domain.Project, error)
}

// Store (仓库管理员): 负责数据集的加载和保存
// Load 失败时返回空表而不是错误，调用方把空表当作"没有数据"
type Store interface {
	Load() []domain.Project
	Save(projects []domain.Project) error
}

// RoadmapRequest 生成路线图所需的四个输入
type RoadmapRequest struct {
	ProjectName string
	Description string
	TechStack   string
	SkillLevel  string
}

// Prompt 构造确定性的提示词模板
// 所有后端共用同一份模板，保证换后端不换语义
func (r RoadmapRequest) Prompt() string {
	return fmt.Sprintf(`Create a step-by-step learning roadmap for the project '%s'.
Project Description: %s
Required Tech Stack: %s
Skill Level: %s
Provide the roadmap in bullet points.`,
		r.ProjectName, r.Description, r.TechStack, r.SkillLevel)
}

// RoadmapGenerator (规划师): 负责调用文本生成 API 产出学习路线图
// 后端可替换 (gemini / novita)，错误由 service 层统一转成可展示文案
type RoadmapGenerator interface {
	// 成功但响应为空/格式不对时返回 ("", nil)，由上层转成占位文案
	Generate(ctx context.Context, req RoadmapRequest) (string, error)
}
