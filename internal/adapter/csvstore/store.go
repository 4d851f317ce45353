package csvstore

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"project-pathfinder/internal/domain"
)

// CSV 列名，Difficulty 为可选列
const (
	colName        = "Name"
	colDescription = "Description"
	colStars       = "Stars"
	colLanguage    = "Language"
	colURL         = "Repo URL"
	colDifficulty  = "Difficulty"
)

// Store 实现了 port.Store 接口
// 数据集整表加载、整表覆盖写，加载后不做任何字段级修改
type Store struct {
	path string
}

// NewStore 创建指向指定 CSV 文件的存储
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load 加载数据集
// 失败关闭：文件缺失、表头/行格式错误一律记录日志并返回空表
// 调用方把空表当作"没有数据"短路处理，不再向上传播 I/O 错误
func (s *Store) Load() []domain.Project {
	file, err := os.Open(s.path)
	if err != nil {
		log.Printf("❌ 打开数据集 %s 失败: %v", s.path, err)
		return nil
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Printf("❌ 解析数据集 %s 失败: %v", s.path, err)
		return nil
	}
	if len(records) == 0 {
		log.Printf("❌ 数据集 %s 缺少表头", s.path)
		return nil
	}

	// 按表头定位各列，容忍可选列缺失和列序变化
	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[name] = i
	}
	for _, required := range []string{colName, colStars, colURL} {
		if _, ok := index[required]; !ok {
			log.Printf("❌ 数据集 %s 缺少必需列 %q", s.path, required)
			return nil
		}
	}

	projects := make([]domain.Project, 0, len(records)-1)
	for i, row := range records[1:] {
		stars, err := strconv.Atoi(field(row, index, colStars))
		if err != nil {
			log.Printf("❌ 数据集 %s 第 %d 行 Stars 列非法: %v", s.path, i+2, err)
			return nil
		}
		projects = append(projects, domain.Project{
			Name:        field(row, index, colName),
			Description: field(row, index, colDescription),
			Stars:       stars,
			Language:    field(row, index, colLanguage),
			URL:         field(row, index, colURL),
			Difficulty:  field(row, index, colDifficulty),
		})
	}

	log.Printf("✅ 从 %s 加载了 %d 个项目", s.path, len(projects))
	return projects
}

// field 按列名取值，列不存在或越界时视为空串
func field(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// Save 整表覆盖写入数据集 (供 fetch 模式使用)
func (s *Store) Save(projects []domain.Project) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("创建数据集 %s 失败: %w", s.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{colName, colDescription, colStars, colLanguage, colURL, colDifficulty}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}
	for _, p := range projects {
		row := []string{p.Name, p.Description, strconv.Itoa(p.Stars), p.Language, p.URL, p.Difficulty}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("写入项目 %s 失败: %w", p.Name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
