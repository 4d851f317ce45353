package service

import (
	"context"
	"log"
	"math/rand"
	"sort"
	"strings"
	"time"

	"project-pathfinder/internal/domain"
	"project-pathfinder/internal/port"
)

// 单次路线图请求的超时上限，超时即失败，不重试
const roadmapTimeout = 10 * time.Second

// SelectProjects 按技术栈筛选并截断到 topN
// 规则：
//   - 输入为空表时立即返回空，不走筛选逻辑
//   - 行入选当且仅当其 Language 小写后包含 techStack 子串；Language 为空的行排除
//   - 筛选结果为空返回空表，调用方把它当"没有匹配"(区别于"没有数据")
//   - stars_desc: Star 降序稳定排序，同分保持原始相对顺序
//   - random: 每次调用重新均匀洗牌
func SelectProjects(projects []domain.Project, techStack string, topN int, ordering domain.Ordering) []domain.Project {
	if len(projects) == 0 {
		return nil
	}

	needle := strings.ToLower(techStack)
	var matched []domain.Project
	for _, p := range projects {
		if p.Language == "" {
			continue
		}
		if strings.Contains(strings.ToLower(p.Language), needle) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	switch ordering {
	case domain.OrderingRandom:
		rand.Shuffle(len(matched), func(i, j int) {
			matched[i], matched[j] = matched[j], matched[i]
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Stars > matched[j].Stars
		})
	}

	if len(matched) > topN {
		matched = matched[:topN]
	}
	return matched
}

// RecommendService 串起一次无状态的推荐流程: 校验 → 筛选截断 → 逐项生成路线图
type RecommendService struct {
	projects  []domain.Project
	generator port.RoadmapGenerator
	topN      int
	ordering  domain.Ordering
}

// NewRecommendService 创建推荐服务
// projects 在进程启动时加载一次，之后只读，并发读取是安全的
func NewRecommendService(projects []domain.Project, generator port.RoadmapGenerator, topN int, ordering domain.Ordering) *RecommendService {
	return &RecommendService{
		projects:  projects,
		generator: generator,
		topN:      topN,
		ordering:  ordering,
	}
}

// HasData 数据集是否加载成功
// false 表示"没有数据"，应展示加载失败提示并停止本次处理
func (s *RecommendService) HasData() bool {
	return len(s.projects) > 0
}

// DataCount 数据集行数
func (s *RecommendService) DataCount() int {
	return len(s.projects)
}

// Recommend 按用户偏好返回至多 topN 个推荐
// 返回空切片表示"没有匹配"
func (s *RecommendService) Recommend(prefs domain.Preferences) []domain.Project {
	recs := SelectProjects(s.projects, prefs.TechStack, s.topN, s.ordering)
	log.Printf("✅ 技术栈 %q 匹配到 %d 个推荐", prefs.TechStack, len(recs))
	return recs
}

// RoadmapText 为单个项目生成路线图并转成可展示文案
// 永不向调用方抛错：任何传输/状态码/超时失败都转成 "Error: ..." 字符串，
// 单个项目失败不影响其余项目继续生成
func (s *RecommendService) RoadmapText(ctx context.Context, p domain.Project, prefs domain.Preferences) string {
	ctx, cancel := context.WithTimeout(ctx, roadmapTimeout)
	defer cancel()

	text, err := s.generator.Generate(ctx, port.RoadmapRequest{
		ProjectName: p.Name,
		Description: p.Description,
		TechStack:   prefs.TechStack,
		SkillLevel:  prefs.SkillLevel,
	})
	if err != nil {
		log.Printf("❌ 生成 %s 的路线图失败: %v", p.Name, err)
		return "Error: Unable to generate roadmap - " + err.Error()
	}
	if strings.TrimSpace(text) == "" {
		return "No roadmap generated."
	}
	return text
}
