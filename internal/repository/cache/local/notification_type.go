package local

import (
	"context"

	"gitee.com/flycash/activity-platform/internal/domain"
	"gitee.com/flycash/activity-platform/internal/repository/cache"
	ca "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

var ErrorKeyNotFound = errors.New("key not found")

// NotificationTypeCache 进程内缓存，计算过一次的语言不再重新计算
type NotificationTypeCache struct {
	c *ca.Cache
}

func NewNotificationTypeCache(c *ca.Cache) *NotificationTypeCache {
	return &NotificationTypeCache{
		c: c,
	}
}

func (l *NotificationTypeCache) Get(_ context.Context, lang string) ([]domain.NotificationType, error) {
	v, ok := l.c.Get(cache.NotificationTypeKey(lang))
	if !ok {
		return nil, errors.Wrapf(ErrorKeyNotFound, "lang=%s", lang)
	}
	return v.([]domain.NotificationType), nil
}

func (l *NotificationTypeCache) Set(_ context.Context, lang string, types []domain.NotificationType) error {
	l.c.Set(cache.NotificationTypeKey(lang), types, ca.NoExpiration)
	return nil
}
