package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"project-pathfinder/internal/common"
	"project-pathfinder/internal/domain"
)

// 路线图后端枚举
const (
	ProviderGemini = "gemini"
	ProviderNovita = "novita"
)

// APIConfig 路线图生成后端配置
type APIConfig struct {
	Provider string `yaml:"provider"` // gemini 或 novita
	Key      string `yaml:"key"`
	Endpoint string `yaml:"endpoint"` // 仅 novita 需要
	Model    string `yaml:"model"`
}

// FilesConfig 数据文件配置
type FilesConfig struct {
	Dataset string `yaml:"dataset"` // CSV 数据集路径
}

// RecommendConfig 推荐策略配置
type RecommendConfig struct {
	TopN     int             `yaml:"top_n"`
	Ordering domain.Ordering `yaml:"ordering"` // stars_desc 或 random
}

// FetchConfig 数据集抓取配置
type FetchConfig struct {
	Topic      string                  `yaml:"topic"`
	MaxPages   int                     `yaml:"max_pages"`
	Difficulty domain.DifficultyPolicy `yaml:"difficulty"`
}

// GitHubConfig GitHub 访问配置
type GitHubConfig struct {
	Token string `yaml:"token"` // 为空则匿名访问 (60次/小时)
}

// WebConfig Web 模式配置
type WebConfig struct {
	Addr string `yaml:"addr"`
}

// Config 进程启动时构建一次，之后显式传给各组件，不读全局状态
type Config struct {
	API       APIConfig       `yaml:"api"`
	Files     FilesConfig     `yaml:"files"`
	Recommend RecommendConfig `yaml:"recommend"`
	Fetch     FetchConfig     `yaml:"fetch"`
	GitHub    GitHubConfig    `yaml:"github"`
	Web       WebConfig       `yaml:"web"`
}

// Load 读取并校验配置文件
// 配置错误是唯一的启动致命错误：调用方应打印诊断并以非零码退出
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeConfig, fmt.Sprintf("读取配置文件 %s 失败", path), err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, common.WrapError(common.ErrCodeConfig, fmt.Sprintf("配置文件 %s 格式错误", path), err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.Provider == "" {
		c.API.Provider = ProviderGemini
	}
	if c.API.Model == "" {
		switch c.API.Provider {
		case ProviderGemini:
			c.API.Model = "gemini-2.5-flash-lite"
		case ProviderNovita:
			c.API.Model = "meta-llama/llama-3.1-8b-instruct"
		}
	}
	if c.Recommend.TopN <= 0 {
		c.Recommend.TopN = 5
	}
	if c.Recommend.Ordering == "" {
		c.Recommend.Ordering = domain.OrderingStarsDesc
	}
	if c.Fetch.Topic == "" {
		c.Fetch.Topic = "data science"
	}
	if c.Fetch.MaxPages <= 0 {
		c.Fetch.MaxPages = 10
	}
	if c.Fetch.Difficulty == (domain.DifficultyPolicy{}) {
		c.Fetch.Difficulty = domain.DefaultDifficultyPolicy()
	}
	if c.Web.Addr == "" {
		c.Web.Addr = ":8080"
	}
	if c.GitHub.Token == "" {
		c.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}
}

func (c *Config) validate() error {
	switch c.API.Provider {
	case ProviderGemini, ProviderNovita:
	default:
		return common.NewError(common.ErrCodeConfig,
			fmt.Sprintf("未知的 api.provider: %q (可选: gemini, novita)", c.API.Provider))
	}
	if c.APIKey() == "" {
		return common.NewError(common.ErrCodeConfig, "缺少 api.key (也可通过 GEMINI_API_KEY / NOVITA_API_KEY 环境变量提供)")
	}
	if c.API.Provider == ProviderNovita && c.API.Endpoint == "" {
		return common.NewError(common.ErrCodeConfig, "provider 为 novita 时必须配置 api.endpoint")
	}
	if c.Files.Dataset == "" {
		return common.NewError(common.ErrCodeConfig, "缺少 files.dataset (CSV 数据集路径)")
	}
	switch c.Recommend.Ordering {
	case domain.OrderingStarsDesc, domain.OrderingRandom:
	default:
		return common.NewError(common.ErrCodeConfig,
			fmt.Sprintf("未知的 recommend.ordering: %q (可选: stars_desc, random)", c.Recommend.Ordering))
	}
	return nil
}

// APIKey 解析 API 密钥：配置文件优先，环境变量兜底
func (c *Config) APIKey() string {
	if c.API.Key != "" {
		return c.API.Key
	}
	switch c.API.Provider {
	case ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	case ProviderNovita:
		return os.Getenv("NOVITA_API_KEY")
	}
	return ""
}
