package csvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"project-pathfinder/internal/domain"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.csv")
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)
	return path
}

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		verify  func(*testing.T, []domain.Project)
	}{
		{
			name: "完整数据集正常加载",
			content: "Name,Description,Stars,Language,Repo URL,Difficulty\n" +
				"pandas,data frames,45000,Python,https://github.com/pandas-dev/pandas,Advanced\n" +
				"tinylib,,12,Go,https://github.com/x/tinylib,Beginner\n",
			verify: func(t *testing.T, got []domain.Project) {
				assert.Equal(t, 2, len(got))
				assert.Equal(t, domain.Project{
					Name:        "pandas",
					Description: "data frames",
					Stars:       45000,
					Language:    "Python",
					URL:         "https://github.com/pandas-dev/pandas",
					Difficulty:  "Advanced",
				}, got[0])
				// 可选字段缺省按空串处理，下游不会崩
				assert.Equal(t, "", got[1].Description)
			},
		},
		{
			name: "可选列缺失被容忍",
			content: "Name,Stars,Repo URL\n" +
				"solo,7,https://github.com/x/solo\n",
			verify: func(t *testing.T, got []domain.Project) {
				assert.Equal(t, 1, len(got))
				assert.Equal(t, "", got[0].Language)
				assert.Equal(t, "", got[0].Difficulty)
				assert.Equal(t, 7, got[0].Stars)
			},
		},
		{
			name: "列序变化不影响加载",
			content: "Stars,Repo URL,Name,Language\n" +
				"42,https://github.com/x/y,shuffled,Python\n",
			verify: func(t *testing.T, got []domain.Project) {
				assert.Equal(t, 1, len(got))
				assert.Equal(t, "shuffled", got[0].Name)
				assert.Equal(t, 42, got[0].Stars)
				assert.Equal(t, "Python", got[0].Language)
			},
		},
		{
			name:    "缺少必需列返回空表",
			content: "Name,Description\nfoo,bar\n",
			verify: func(t *testing.T, got []domain.Project) {
				assert.Empty(t, got)
			},
		},
		{
			name: "Stars 列非法返回空表",
			content: "Name,Stars,Repo URL\n" +
				"bad,not-a-number,https://github.com/x/bad\n",
			verify: func(t *testing.T, got []domain.Project) {
				assert.Empty(t, got)
			},
		},
		{
			name: "行列数不齐返回空表",
			content: "Name,Stars,Repo URL\n" +
				"broken,1\n",
			verify: func(t *testing.T, got []domain.Project) {
				assert.Empty(t, got)
			},
		},
		{
			name:    "空文件返回空表",
			content: "",
			verify: func(t *testing.T, got []domain.Project) {
				assert.Empty(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(writeDataset(t, tt.content))
			tt.verify(t, store.Load())
		})
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	// 失败关闭：文件不存在返回空表，不向调用方抛错
	store := NewStore(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Empty(t, store.Load())
}

func TestStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.csv")
	store := NewStore(path)

	projects := []domain.Project{
		{Name: "a,b", Description: "带逗号和\"引号\"", Stars: 10, Language: "Python", URL: "https://github.com/x/a", Difficulty: "Beginner"},
		{Name: "plain", Stars: 0, URL: "https://github.com/x/plain"},
	}
	assert.NoError(t, store.Save(projects))

	got := store.Load()
	assert.Equal(t, projects, got)
}
