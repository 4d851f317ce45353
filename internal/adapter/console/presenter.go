package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"project-pathfinder/internal/domain"
	"project-pathfinder/internal/service"
)

// Presenter 控制台适配器: 三个顺序提问 + 卡片式输出
// 每次运行是一趟无状态流程: 校验 → 筛选 → 逐项生成并展示路线图
type Presenter struct {
	in  *bufio.Reader
	out io.Writer
	svc *service.RecommendService
}

// NewPresenter 创建控制台适配器
func NewPresenter(in io.Reader, out io.Writer, svc *service.RecommendService) *Presenter {
	return &Presenter{
		in:  bufio.NewReader(in),
		out: out,
		svc: svc,
	}
}

// Run 执行一次完整的推荐交互
func (p *Presenter) Run(ctx context.Context) error {
	if !p.svc.HasData() {
		fmt.Fprintln(p.out, errorStyle.Render("❌ 数据集加载失败，请先运行 -mode=fetch 抓取数据"))
		return nil
	}

	prefs, err := p.collectPreferences()
	if err != nil {
		return err
	}

	recs := p.svc.Recommend(prefs)
	if len(recs) == 0 {
		fmt.Fprintf(p.out, "📭 没有匹配技术栈 %q 的项目，换个关键词试试\n", prefs.TechStack)
		return nil
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, headerStyle.Render(fmt.Sprintf("🔹 为你推荐的 %d 个项目", len(recs))))
	fmt.Fprintln(p.out, dimStyle.Render(fmt.Sprintf("技能等级: %s | 技术栈: %s", prefs.SkillLevel, prefs.TechStack)))

	for _, rec := range recs {
		p.renderCard(rec)
		fmt.Fprintln(p.out, "🛠️ 学习路线图:")
		// 逐项同步生成，单个失败不影响后续项目
		fmt.Fprintln(p.out, p.svc.RoadmapText(ctx, rec, prefs))
	}

	return nil
}

// collectPreferences 顺序收集三个偏好输入
// 校验失败时提示并立即重新提问，不需要重启进程
func (p *Presenter) collectPreferences() (domain.Preferences, error) {
	for {
		skill, err := p.ask(fmt.Sprintf("请输入技能等级 (%s): ", strings.Join(domain.SkillLevels, "/")))
		if err != nil {
			return domain.Preferences{}, err
		}
		stack, err := p.ask("请输入偏好的技术栈 (Python, TensorFlow, Go 等): ")
		if err != nil {
			return domain.Preferences{}, err
		}
		ptype, err := p.ask("请输入偏好的项目类型 (ML, Web, 数据分析等): ")
		if err != nil {
			return domain.Preferences{}, err
		}

		prefs, vErr := domain.ValidatePreferences(skill, stack, ptype)
		if vErr != nil {
			fmt.Fprintln(p.out, errorStyle.Render("⚠️ 输入无效: "+vErr.Error()))
			continue
		}
		return prefs, nil
	}
}

// ask 打印提示并读取一行输入
func (p *Presenter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("读取输入失败: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// renderCard 渲染单个项目卡片
func (p *Presenter) renderCard(rec domain.Project) {
	desc := rec.Description
	if desc == "" {
		desc = "(无描述)"
	}
	lines := []string{
		titleStyle.Render("📌 " + rec.Name),
		desc,
		starsStyle.Render(fmt.Sprintf("⭐ %d", rec.Stars)) + dimStyle.Render("  "+rec.URL),
	}
	if rec.Difficulty != "" {
		lines = append(lines, dimStyle.Render("难度: "+rec.Difficulty))
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, cardStyle.Render(strings.Join(lines, "\n")))
}
