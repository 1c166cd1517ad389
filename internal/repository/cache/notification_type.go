package cache

import (
	"context"
	"fmt"

	"gitee.com/flycash/activity-platform/internal/domain"
)

const (
	NotificationTypePrefix = "notification_types"
)

// NotificationTypeCache 按语言缓存通知类型
type NotificationTypeCache interface {
	Get(ctx context.Context, lang string) ([]domain.NotificationType, error)
	Set(ctx context.Context, lang string, types []domain.NotificationType) error
}

func NotificationTypeKey(lang string) string {
	return fmt.Sprintf("%s:%s", NotificationTypePrefix, lang)
}
