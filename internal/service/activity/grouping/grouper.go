package grouping

import (
	"slices"
	"time"

	"gitee.com/flycash/activity-platform/internal/domain"
)

// DefaultWindow 相邻动态的时间差在这个范围内才会合并
const DefaultWindow = 3 * time.Hour

// Helper 把按时间倒序到来的动态合并成展示用的分组。
// 相邻两条动态只有第一个 subject 参数（通常是文件名）不同的时候会被合并。
type Helper struct {
	user   string
	window int64
	groups []domain.ActivityGroup
}

func NewHelper(window time.Duration) *Helper {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Helper{window: int64(window / time.Second)}
}

// SetUser 切换到新用户的动态流，之前累积的分组会被清空
func (h *Helper) SetUser(user string) {
	h.user = user
	h.groups = nil
}

func (h *Helper) AddActivity(a domain.Activity) {
	if len(h.groups) > 0 {
		g := &h.groups[len(h.groups)-1]
		if canGroup(g.Activity, a) && g.Timestamp-a.Timestamp <= h.window {
			h.merge(g, a)
			return
		}
	}
	h.groups = append(h.groups, domain.ActivityGroup{
		Activity:     a,
		IDs:          []int64{a.ID},
		GroupedParam: -1,
	})
}

func (h *Helper) merge(g *domain.ActivityGroup, a domain.Activity) {
	if g.GroupedParam < 0 {
		g.GroupedParam = 0
		g.GroupedValues = []string{g.SubjectParams[0]}
	}
	g.IDs = append(g.IDs, a.ID)
	val := a.SubjectParams[0]
	for _, v := range g.GroupedValues {
		if v == val {
			return
		}
	}
	g.GroupedValues = append(g.GroupedValues, val)
}

func (h *Helper) Activities() []domain.ActivityGroup {
	res := make([]domain.ActivityGroup, len(h.groups))
	copy(res, h.groups)
	return res
}

// canGroup 除了第一个 subject 参数之外全部相同的动态才可以合并
func canGroup(a, b domain.Activity) bool {
	if len(a.SubjectParams) == 0 || len(b.SubjectParams) == 0 {
		return false
	}
	return a.App == b.App &&
		a.Type == b.Type &&
		a.Subject == b.Subject &&
		a.User == b.User &&
		a.AffectedUser == b.AffectedUser &&
		a.ObjectType == b.ObjectType &&
		slices.Equal(a.SubjectParams[1:], b.SubjectParams[1:])
}
