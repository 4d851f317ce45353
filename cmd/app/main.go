package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"project-pathfinder/internal/adapter/console"
	"project-pathfinder/internal/adapter/csvstore"
	"project-pathfinder/internal/adapter/gemini"
	"project-pathfinder/internal/adapter/github"
	"project-pathfinder/internal/adapter/novita"
	"project-pathfinder/internal/adapter/web"
	"project-pathfinder/internal/config"
	"project-pathfinder/internal/port"
	"project-pathfinder/internal/service"
)

func main() {
	// 1. 定义命令行参数
	mode := flag.String("mode", "recommend", "运行模式: recommend (控制台推荐)、fetch (抓取数据集) 或 web (网页)")
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	topic := flag.String("topic", "", "抓取主题 (仅在 fetch 模式下有效，覆盖配置)")
	pages := flag.Int("pages", 0, "抓取页数上限 (仅在 fetch 模式下有效，覆盖配置)")
	flag.Parse()

	// 2. 加载 .env (允许不存在) 和配置文件
	// 配置错误是唯一的启动致命错误，必须在加载任何数据之前以非零码退出
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ 配置初始化失败: %v", err)
	}

	ctx := context.Background()

	// 3. 根据模式分流
	switch *mode {
	case "fetch":
		runFetch(ctx, cfg, *topic, *pages)
	case "web":
		runWeb(ctx, cfg)
	case "recommend":
		runRecommend(ctx, cfg)
	default:
		log.Fatalf("❌ 未知模式 %q，请使用 -mode=recommend、-mode=fetch 或 -mode=web", *mode)
	}
}

// buildGenerator 按配置选择路线图后端
func buildGenerator(ctx context.Context, cfg *config.Config) (port.RoadmapGenerator, error) {
	switch cfg.API.Provider {
	case config.ProviderNovita:
		return novita.NewRoadmapGenerator(cfg.APIKey(), cfg.API.Endpoint, cfg.API.Model), nil
	default:
		return gemini.NewRoadmapGenerator(ctx, cfg.APIKey(), cfg.API.Model)
	}
}

// buildService 数据集加载一次，之后只读
func buildService(ctx context.Context, cfg *config.Config) (*service.RecommendService, error) {
	generator, err := buildGenerator(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("路线图后端初始化失败: %w", err)
	}

	store := csvstore.NewStore(cfg.Files.Dataset)
	projects := store.Load()
	return service.NewRecommendService(projects, generator, cfg.Recommend.TopN, cfg.Recommend.Ordering), nil
}

// --- 控制台推荐模式 ---
func runRecommend(ctx context.Context, cfg *config.Config) {
	svc, err := buildService(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	presenter := console.NewPresenter(os.Stdin, os.Stdout, svc)
	if err := presenter.Run(ctx); err != nil {
		log.Printf("❌ 推荐流程出错: %v", err)
	}
}

// --- 网页模式 ---
func runWeb(ctx context.Context, cfg *config.Config) {
	svc, err := buildService(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	server := web.NewServer(svc)
	fmt.Printf("🌐 Web 服务已启动: http://localhost%s\n", cfg.Web.Addr)
	if err := server.Run(cfg.Web.Addr); err != nil {
		log.Fatalf("❌ Web 服务退出: %v", err)
	}
}

// --- 数据集抓取模式 ---
func runFetch(ctx context.Context, cfg *config.Config, topic string, pages int) {
	if topic == "" {
		topic = cfg.Fetch.Topic
	}
	if pages <= 0 {
		pages = cfg.Fetch.MaxPages
	}

	fetcher := github.NewFetcher(cfg.GitHub.Token, cfg.Fetch.Difficulty)

	fmt.Printf("📥 正在抓取主题 %q 的项目 (至多 %d 页)...\n", topic, pages)
	projects, err := fetcher.FetchByTopic(ctx, topic, pages)
	if err != nil {
		log.Fatalf("❌ 抓取失败: %v", err)
	}
	fmt.Printf("✅ 成功抓取 %d 个项目\n", len(projects))

	store := csvstore.NewStore(cfg.Files.Dataset)
	if err := store.Save(projects); err != nil {
		log.Fatalf("❌ 保存数据集失败: %v", err)
	}
	fmt.Printf("💾 数据已保存到 %s\n", cfg.Files.Dataset)
}
