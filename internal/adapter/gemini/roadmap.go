package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"project-pathfinder/internal/port"
)

// RoadmapGenerator 实现了 port.RoadmapGenerator 接口，后端为 Gemini
type RoadmapGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewRoadmapGenerator 初始化 Gemini 客户端
func NewRoadmapGenerator(ctx context.Context, apiKey, modelName string) (*RoadmapGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	// 与 novita 后端保持同一组生成参数
	model.SetMaxOutputTokens(500)
	model.SetTemperature(0.7)

	return &RoadmapGenerator{
		client: client,
		model:  model,
	}, nil
}

// Generate 发送提示词并取回第一个候选的文本
// 响应为空或格式不对时返回 ("", nil)，由 service 层转成占位文案
func (g *RoadmapGenerator) Generate(ctx context.Context, req port.RoadmapRequest) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(req.Prompt()))
	if err != nil {
		return "", fmt.Errorf("Gemini 调用失败: %w", err)
	}

	return extractText(resp), nil
}

// extractText 从响应中抠出第一个候选的第一段文本
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	text, ok := content.Parts[0].(genai.Text)
	if !ok {
		return ""
	}
	return strings.TrimSpace(string(text))
}
