package domain

// Project 代表数据集中的一个开源项目
// 数据来自 GitHub Search API，经 fetch 模式落盘为 CSV 后整表加载，加载后只读
type Project struct {
	// 基础信息 (来自 GitHub)
	Name        string `json:"name"` // 例如 "pandas-dev/pandas"
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Language    string `json:"language"` // 主语言，可能为空
	URL         string `json:"url"`

	// 难度标签：由 Star 阈值推导，可选字段
	Difficulty string `json:"difficulty,omitempty"`
}

// Ordering 推荐结果的排序策略，构建期由配置固定，不暴露给用户输入
type Ordering string

const (
	OrderingStarsDesc Ordering = "stars_desc" // Star 降序，同分保持原始相对顺序
	OrderingRandom    Ordering = "random"     // 每次调用重新洗牌，不持久化种子
)

// 难度标签枚举
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// DifficultyPolicy 根据 Star 数划分难度的阈值策略
// 阈值属于抓取侧的可配置策略，不是领域常量
type DifficultyPolicy struct {
	AdvancedStars     int `yaml:"advanced_stars"`
	IntermediateStars int `yaml:"intermediate_stars"`
}

// DefaultDifficultyPolicy 默认阈值：>=10000 进阶，>=5000 中级，其余入门
func DefaultDifficultyPolicy() DifficultyPolicy {
	return DifficultyPolicy{
		AdvancedStars:     10000,
		IntermediateStars: 5000,
	}
}

// Bucket 把 Star 数映射到难度标签
func (p DifficultyPolicy) Bucket(stars int) string {
	switch {
	case stars >= p.AdvancedStars:
		return DifficultyAdvanced
	case stars >= p.IntermediateStars:
		return DifficultyIntermediate
	default:
		return DifficultyBeginner
	}
}
