package github

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v53/github"
	"golang.org/x/oauth2"

	"project-pathfinder/internal/common"
	"project-pathfinder/internal/domain"
)

// 每页抓取数量，GitHub Search API 的上限
const perPage = 100

// Fetcher 实现了 port.Fetcher 接口
type Fetcher struct {
	client *github.Client
	policy domain.DifficultyPolicy
}

// NewFetcher 初始化 GitHub 客户端
// token 为空字符串时匿名访问，限制 60次/小时
func NewFetcher(token string, policy domain.DifficultyPolicy) *Fetcher {
	var client *github.Client

	if token == "" {
		client = github.NewClient(nil)
	} else {
		ctx := context.Background()
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc := oauth2.NewClient(ctx, ts)
		client = github.NewClient(tc)
	}

	return &Fetcher{client: client, policy: policy}
}

// FetchByTopic 按主题分页抓取项目，按 Star 降序
// 翻页直到结果页耗尽或到达 maxPages 上限
func (f *Fetcher) FetchByTopic(ctx context.Context, topic string, maxPages int) ([]domain.Project, error) {
	opts := &github.SearchOptions{
		Sort:  "stars",
		Order: "desc",
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	var projects []domain.Project
	for page := 1; page <= maxPages; page++ {
		opts.Page = page

		var result *github.RepositoriesSearchResult
		err := common.Do(ctx, func() error {
			var apiErr error
			result, _, apiErr = f.client.Search.Repositories(ctx, topic, opts)
			return apiErr
		},
			common.WithMaxRetries(3),
			common.WithInitialDelay(time.Second),
		)
		if err != nil {
			return nil, common.WrapError(common.ErrCodeGitHubAPI,
				fmt.Sprintf("GitHub API 第 %d 页调用失败", page), err)
		}

		for _, item := range result.Repositories {
			projects = append(projects, f.toProject(item))
		}

		// 没有下一页了
		if len(result.Repositories) < perPage {
			break
		}
	}

	return projects, nil
}

// toProject 把 GitHub 的数据结构转换为 Domain 实体 (DTO 转换)
// 顺带按阈值策略打上难度标签
func (f *Fetcher) toProject(item *github.Repository) domain.Project {
	return domain.Project{
		Name:        item.GetName(),
		Description: item.GetDescription(),
		Stars:       item.GetStargazersCount(),
		Language:    item.GetLanguage(),
		URL:         item.GetHTMLURL(),
		Difficulty:  f.policy.Bucket(item.GetStargazersCount()),
	}
}
