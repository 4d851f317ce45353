package domain

import (
	"fmt"
	"strings"

	"project-pathfinder/internal/common"
)

// Preferences 用户偏好三元组，每次交互新建，不落盘
type Preferences struct {
	SkillLevel  string `json:"skill_level"`
	TechStack   string `json:"tech_stack"`
	ProjectType string `json:"project_type"` // 只收集展示，不参与筛选
}

// SkillLevels 合法的技能等级枚举（已小写）
var SkillLevels = []string{"beginner", "intermediate", "advanced"}

// ValidatePreferences 归一化并校验三个输入
// 纯函数，不做任何 I/O：全部 trim + 小写后再校验
// 失败返回 INVALID_PREFERENCE 错误，调用方提示用户重试即可，无需重启进程
func ValidatePreferences(skillLevel, techStack, projectType string) (Preferences, error) {
	skillLevel = strings.ToLower(strings.TrimSpace(skillLevel))
	techStack = strings.ToLower(strings.TrimSpace(techStack))
	projectType = strings.ToLower(strings.TrimSpace(projectType))

	valid := false
	for _, level := range SkillLevels {
		if skillLevel == level {
			valid = true
			break
		}
	}
	if !valid {
		return Preferences{}, common.NewError(common.ErrCodeInvalidPreference,
			fmt.Sprintf("技能等级必须是 %s 之一", strings.Join(SkillLevels, "/")))
	}

	if techStack == "" {
		return Preferences{}, common.NewError(common.ErrCodeInvalidPreference, "技术栈不能为空")
	}
	if projectType == "" {
		return Preferences{}, common.NewError(common.ErrCodeInvalidPreference, "项目类型不能为空")
	}

	return Preferences{
		SkillLevel:  skillLevel,
		TechStack:   techStack,
		ProjectType: projectType,
	}, nil
}
