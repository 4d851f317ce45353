package novita

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"project-pathfinder/internal/port"
)

// RoadmapGenerator 实现了 port.RoadmapGenerator 接口
// 后端是 OpenAI completions 风格的 HTTP 接口 (Novita 等)
type RoadmapGenerator struct {
	apiKey   string
	endpoint string
	model    string
	client   *http.Client
}

// NewRoadmapGenerator 初始化 HTTP 后端
// 单次同步请求，超时兜底 10 秒；按规则不做重试，超时即失败
func NewRoadmapGenerator(apiKey, endpoint, model string) *RoadmapGenerator {
	return &RoadmapGenerator{
		apiKey:   apiKey,
		endpoint: endpoint,
		model:    model,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type completionRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

// Generate 发送一次 POST 请求并取回第一个候选的文本
func (g *RoadmapGenerator) Generate(ctx context.Context, req port.RoadmapRequest) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:       g.model,
		Prompt:      req.Prompt(),
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("构造请求体失败: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("构造请求失败: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("API 报错: 状态码 %d, 响应 %s", resp.StatusCode, string(excerpt))
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// 成功状态但响应不可解析，按"没生成出来"处理
		return "", nil
	}
	if len(result.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(result.Choices[0].Text), nil
}
