package ioc

import (
	"time"

	"gitee.com/flycash/activity-platform/internal/domain"
	"gitee.com/flycash/activity-platform/internal/pkg/retry"
	"gitee.com/flycash/activity-platform/internal/service/activity"
	"gitee.com/flycash/activity-platform/internal/service/activity/grouping"
	"gitee.com/flycash/activity-platform/internal/service/registry"
	"github.com/gotomicro/ego/core/econf"
)

type ActivityConfig struct {
	// ExpireDays 动态保留的天数
	ExpireDays   int                     `yaml:"expireDays"`
	ExpireRetry  retry.Config            `yaml:"expireRetry"`
	FallbackLang string                  `yaml:"fallbackLang"`
	GroupWindow  time.Duration           `yaml:"groupWindow"`
	Types        []registry.TypeConfig   `yaml:"types"`
	Filters      []registry.FilterConfig `yaml:"filters"`
	// Methods 场景到默认开启的通知类型，没有配置的场景开启全部类型
	Methods map[string][]string `yaml:"methods"`
	// Settings category 到 key 到默认值
	Settings map[string]map[string]string `yaml:"settings"`
}

func InitActivityConfig() ActivityConfig {
	cfg := ActivityConfig{
		ExpireDays:   365,
		FallbackLang: "en",
	}
	if err := econf.UnmarshalKey("activity", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func InitTypeRegistry(cfg ActivityConfig) *registry.StaticTypeRegistry {
	return registry.NewStaticTypeRegistry(cfg.Types, cfg.FallbackLang)
}

func InitFilterRegistry(cfg ActivityConfig) *registry.StaticFilterRegistry {
	return registry.NewStaticFilterRegistry(cfg.Filters)
}

func InitUserSettings(cfg ActivityConfig, types *registry.StaticTypeRegistry) *registry.DefaultUserSettings {
	methods := make(map[string][]string, 2)
	for _, m := range []string{domain.MethodStream, domain.MethodEmail} {
		if ids, ok := cfg.Methods[m]; ok {
			methods[m] = ids
			continue
		}
		methods[m] = types.IDs(m)
	}
	values := registry.DefaultValues()
	for category, kv := range cfg.Settings {
		for k, v := range kv {
			values[registry.SettingKey(category, k)] = v
		}
	}
	return registry.NewDefaultUserSettings(methods, values)
}

func InitGrouperFactory(cfg ActivityConfig) activity.GrouperFactory {
	return func() activity.Grouper {
		return grouping.NewHelper(cfg.GroupWindow)
	}
}

func InitExpireCron(svc activity.Service, cfg ActivityConfig) *activity.ExpireCron {
	return activity.NewExpireCron(svc, cfg.ExpireDays, cfg.ExpireRetry)
}
