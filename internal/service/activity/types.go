package activity

import (
	"context"

	"gitee.com/flycash/activity-platform/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/types.mock.go -package=activitymocks -typed

type Session interface {
	// User 当前操作人，匿名时返回 false
	User(ctx context.Context) (string, bool)
}

type TypeRegistry interface {
	// NotificationTypes 指定语言下全部的通知类型
	NotificationTypes(ctx context.Context, lang string) ([]domain.NotificationType, error)
	// FilterNotificationTypes 按过滤器筛掉不相关的通知类型
	FilterNotificationTypes(ctx context.Context, types []string, filter string) []string
}

type FilterRegistry interface {
	IsFilterValid(filter string) bool
	// QueryForFilter 返回扩展提供的额外条件，按扩展的注册顺序
	QueryForFilter(filter string) []domain.Fragment
}

type UserSettings interface {
	// NotificationTypes 用户在某个场景（stream/email）下开启的通知类型
	NotificationTypes(ctx context.Context, user, method string) ([]string, error)
	Setting(ctx context.Context, user, category, key string) (string, error)
}

type Grouper interface {
	SetUser(user string)
	AddActivity(a domain.Activity)
	Activities() []domain.ActivityGroup
}

// GrouperFactory 每次读取都需要一个新的 Grouper，它是有状态的
type GrouperFactory func() Grouper
