package activity

import (
	"context"
	"time"

	"gitee.com/flycash/activity-platform/internal/pkg/retry"
	"github.com/gotomicro/ego/core/elog"
)

// ExpireCron 定时清理过期动态，失败的时候按照 retryCfg 重试
type ExpireCron struct {
	svc      Service
	days     int
	retryCfg retry.Config
	timeout  time.Duration
	logger   *elog.Component
}

func NewExpireCron(svc Service, days int, retryCfg retry.Config) *ExpireCron {
	return &ExpireCron{
		svc:      svc,
		days:     days,
		retryCfg: retryCfg,
		timeout:  time.Minute,
		logger:   elog.DefaultLogger,
	}
}

func (c *ExpireCron) Do(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	err := retry.Do(ctx, c.retryCfg, func(ctx context.Context) error {
		_, err := c.svc.Expire(ctx, c.days)
		return err
	})
	if err != nil {
		c.logger.Error("清理过期动态失败", elog.Int("days", c.days), elog.FieldErr(err))
	}
	return err
}
