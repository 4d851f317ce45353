package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/joho/godotenv"

	"project-pathfinder/internal/adapter/csvstore"
	"project-pathfinder/internal/adapter/gemini"
	"project-pathfinder/internal/adapter/novita"
	"project-pathfinder/internal/config"
	"project-pathfinder/internal/domain"
	"project-pathfinder/internal/port"
	"project-pathfinder/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ 配置初始化失败: %v", err)
	}

	fmt.Println("🔍 调试模式：检查数据集并试跑一次路线图生成")

	// 1. 数据集统计
	store := csvstore.NewStore(cfg.Files.Dataset)
	projects := store.Load()
	if len(projects) == 0 {
		fmt.Println("📭 数据集是空的。请先运行 -mode=fetch 抓取一些项目！")
		return
	}
	fmt.Printf("📚 数据集共 %d 个项目\n", len(projects))

	counts := map[string]int{}
	for _, p := range projects {
		if p.Language != "" {
			counts[p.Language]++
		}
	}
	langs := make([]string, 0, len(counts))
	for lang := range counts {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return counts[langs[i]] > counts[langs[j]] })
	fmt.Println("🏷️ 语言分布 (前5):")
	for i, lang := range langs {
		if i >= 5 {
			break
		}
		fmt.Printf("   %-16s %d\n", lang, counts[lang])
	}

	// 2. 路线图后端试跑
	ctx := context.Background()
	var generator port.RoadmapGenerator
	if cfg.API.Provider == config.ProviderNovita {
		generator = novita.NewRoadmapGenerator(cfg.APIKey(), cfg.API.Endpoint, cfg.API.Model)
	} else {
		generator, err = gemini.NewRoadmapGenerator(ctx, cfg.APIKey(), cfg.API.Model)
		if err != nil {
			log.Fatalf("❌ 路线图后端初始化失败: %v", err)
		}
	}

	svc := service.NewRecommendService(projects, generator, cfg.Recommend.TopN, cfg.Recommend.Ordering)
	sample := projects[0]
	fmt.Printf("🛠️ 为 %s 试生成路线图...\n", sample.Name)
	text := svc.RoadmapText(ctx, sample, domain.Preferences{
		SkillLevel: "beginner",
		TechStack:  "python",
	})
	fmt.Println(text)
}
