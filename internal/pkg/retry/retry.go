package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

type Config struct {
	// Type fixed 或者 exponential，为空代表不重试
	Type               string                    `yaml:"type"`
	FixedInterval      *FixedIntervalConfig      `yaml:"fixedInterval"`
	ExponentialBackoff *ExponentialBackoffConfig `yaml:"exponentialBackoff"`
}

type ExponentialBackoffConfig struct {
	InitialInterval time.Duration `yaml:"initialInterval"`
	MaxInterval     time.Duration `yaml:"maxInterval"`
	// 最大重试次数
	MaxRetries int32 `yaml:"maxRetries"`
}

type FixedIntervalConfig struct {
	MaxRetries int32         `yaml:"maxRetries"`
	Interval   time.Duration `yaml:"interval"`
}

// NewRetry 策略是有状态的，每一轮执行都要重新创建
func NewRetry(cfg Config) (retry.Strategy, error) {
	switch cfg.Type {
	case "fixed":
		if cfg.FixedInterval == nil {
			return nil, fmt.Errorf("缺少 fixedInterval 配置")
		}
		return retry.NewFixedIntervalRetryStrategy(cfg.FixedInterval.Interval, cfg.FixedInterval.MaxRetries)
	case "exponential":
		if cfg.ExponentialBackoff == nil {
			return nil, fmt.Errorf("缺少 exponentialBackoff 配置")
		}
		return retry.NewExponentialBackoffRetryStrategy(cfg.ExponentialBackoff.InitialInterval,
			cfg.ExponentialBackoff.MaxInterval, cfg.ExponentialBackoff.MaxRetries)
	default:
		return nil, fmt.Errorf("unknown retry type: %s", cfg.Type)
	}
}

// Do 执行 fn，失败之后按照策略重试，直到成功、策略放弃或者 ctx 结束。
// 返回最后一次的错误
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil || cfg.Type == "" {
		return err
	}
	strategy, err1 := NewRetry(cfg)
	if err1 != nil {
		return fmt.Errorf("%w, 重试配置错误: %w", err, err1)
	}
	for {
		next, ok := strategy.Next()
		if !ok {
			return err
		}
		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
		if err = fn(ctx); err == nil {
			return nil
		}
	}
}
