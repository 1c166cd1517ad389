package registry

import (
	"context"

	"gitee.com/flycash/activity-platform/internal/domain"
)

// TypeConfig 一种通知类型的配置
type TypeConfig struct {
	ID string `yaml:"id"`
	// Descriptions 语言到描述的映射
	Descriptions map[string]string `yaml:"descriptions"`
	// Methods 为空代表 stream 和 email 都适用
	Methods []string `yaml:"methods"`
	// Filters 哪些扩展过滤器会展示这种类型
	Filters []string `yaml:"filters"`
}

// FilterConfig 一个扩展过滤器
type FilterConfig struct {
	ID         string           `yaml:"id"`
	Conditions []FragmentConfig `yaml:"conditions"`
}

type FragmentConfig struct {
	SQL  string   `yaml:"sql"`
	Args []string `yaml:"args"`
}

// StaticTypeRegistry 从配置里加载的通知类型
type StaticTypeRegistry struct {
	types        []TypeConfig
	fallbackLang string
}

func NewStaticTypeRegistry(types []TypeConfig, fallbackLang string) *StaticTypeRegistry {
	return &StaticTypeRegistry{types: types, fallbackLang: fallbackLang}
}

func (r *StaticTypeRegistry) NotificationTypes(_ context.Context, lang string) ([]domain.NotificationType, error) {
	res := make([]domain.NotificationType, 0, len(r.types))
	for _, t := range r.types {
		desc, ok := t.Descriptions[lang]
		if !ok {
			desc, ok = t.Descriptions[r.fallbackLang]
		}
		if !ok {
			desc = t.ID
		}
		res = append(res, domain.NotificationType{
			ID:          t.ID,
			Description: desc,
			Methods:     t.Methods,
		})
	}
	return res, nil
}

// FilterNotificationTypes 内置过滤器不做筛选，扩展过滤器只保留声明过的类型
func (r *StaticTypeRegistry) FilterNotificationTypes(_ context.Context, types []string, filter string) []string {
	switch filter {
	case domain.FilterAll, domain.FilterSelf, domain.FilterBy, domain.FilterObject:
		return types
	}
	allowed := make(map[string]struct{}, len(r.types))
	for _, t := range r.types {
		for _, f := range t.Filters {
			if f == filter {
				allowed[t.ID] = struct{}{}
				break
			}
		}
	}
	res := make([]string, 0, len(types))
	for _, t := range types {
		if _, ok := allowed[t]; ok {
			res = append(res, t)
		}
	}
	return res
}

// IDs 全部类型的 ID
func (r *StaticTypeRegistry) IDs(method string) []string {
	res := make([]string, 0, len(r.types))
	for _, t := range r.types {
		nt := domain.NotificationType{ID: t.ID, Methods: t.Methods}
		if nt.Supports(method) {
			res = append(res, t.ID)
		}
	}
	return res
}

// StaticFilterRegistry 从配置里加载的扩展过滤器，配置顺序就是注册顺序
type StaticFilterRegistry struct {
	filters []FilterConfig
}

func NewStaticFilterRegistry(filters []FilterConfig) *StaticFilterRegistry {
	return &StaticFilterRegistry{filters: filters}
}

func (r *StaticFilterRegistry) IsFilterValid(filter string) bool {
	for _, f := range r.filters {
		if f.ID == filter {
			return true
		}
	}
	return false
}

func (r *StaticFilterRegistry) QueryForFilter(filter string) []domain.Fragment {
	var res []domain.Fragment
	for _, f := range r.filters {
		if f.ID != filter {
			continue
		}
		for _, c := range f.Conditions {
			args := make([]any, 0, len(c.Args))
			for _, a := range c.Args {
				args = append(args, a)
			}
			res = append(res, domain.Fragment{SQL: c.SQL, Args: args})
		}
	}
	return res
}
