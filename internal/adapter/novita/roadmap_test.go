package novita

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"project-pathfinder/internal/port"
)

// mockCompletionServer 创建模拟的 completions 接口服务器
func mockCompletionServer(t *testing.T, statusCode int, response string, validatePayload func(*testing.T, map[string]interface{})) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var payload map[string]interface{}
		err = json.Unmarshal(body, &payload)
		assert.NoError(t, err)

		if validatePayload != nil {
			validatePayload(t, payload)
		}

		w.WriteHeader(statusCode)
		w.Write([]byte(response))
	}))
}

func sampleRequest() port.RoadmapRequest {
	return port.RoadmapRequest{
		ProjectName: "pandas",
		Description: "data frames",
		TechStack:   "python",
		SkillLevel:  "beginner",
	}
}

func TestRoadmapGenerator_Generate(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		response       string
		expectError    bool
		errorSubstring string
		expectedText   string
	}{
		{
			name:         "成功取回第一个候选的文本",
			statusCode:   http.StatusOK,
			response:     `{"choices": [{"text": "  1. Learn basics\n2. Build\n  "}, {"text": "ignored"}]}`,
			expectedText: "1. Learn basics\n2. Build",
		},
		{
			name:           "非 200 状态码返回错误",
			statusCode:     http.StatusTooManyRequests,
			response:       `{"error": "rate limited"}`,
			expectError:    true,
			errorSubstring: "429",
		},
		{
			name:         "choices 为空按没生成处理",
			statusCode:   http.StatusOK,
			response:     `{"choices": []}`,
			expectedText: "",
		},
		{
			name:         "响应不可解析按没生成处理",
			statusCode:   http.StatusOK,
			response:     `not json at all`,
			expectedText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockCompletionServer(t, tt.statusCode, tt.response, nil)
			defer server.Close()

			generator := NewRoadmapGenerator("test-key", server.URL, "meta-llama/llama-3.1-8b-instruct")
			text, err := generator.Generate(context.Background(), sampleRequest())

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorSubstring)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedText, text)
			}
		})
	}
}

func TestRoadmapGenerator_RequestPayload(t *testing.T) {
	// 请求体必须带上模型、提示词和生成参数
	server := mockCompletionServer(t, http.StatusOK, `{"choices": [{"text": "ok"}]}`,
		func(t *testing.T, payload map[string]interface{}) {
			assert.Equal(t, "meta-llama/llama-3.1-8b-instruct", payload["model"])
			assert.Equal(t, float64(500), payload["max_tokens"])
			assert.Equal(t, 0.7, payload["temperature"])

			prompt, _ := payload["prompt"].(string)
			assert.Contains(t, prompt, "pandas")
			assert.Contains(t, prompt, "data frames")
			assert.Contains(t, prompt, "python")
			assert.Contains(t, prompt, "beginner")
		})
	defer server.Close()

	generator := NewRoadmapGenerator("test-key", server.URL, "meta-llama/llama-3.1-8b-instruct")
	text, err := generator.Generate(context.Background(), sampleRequest())

	assert.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestRoadmapGenerator_TransportFailure(t *testing.T) {
	// 连不上的地址：传输错误向上返回，由 service 层转成可展示文案
	generator := NewRoadmapGenerator("test-key", "http://127.0.0.1:1", "m")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := generator.Generate(ctx, sampleRequest())

	assert.Error(t, err)
}
