package registry

import (
	"context"
	"fmt"

	"gitee.com/flycash/activity-platform/internal/domain"
)

// DefaultUserSettings 所有用户共用一份默认设置。
// 用户级别的设置由宿主平台负责存储，这里只提供缺省值。
type DefaultUserSettings struct {
	methods map[string][]string
	values  map[string]string
}

// NewDefaultUserSettings methods 是场景到开启的通知类型，values 的键是 category.key
func NewDefaultUserSettings(methods map[string][]string, values map[string]string) *DefaultUserSettings {
	return &DefaultUserSettings{methods: methods, values: values}
}

func (s *DefaultUserSettings) NotificationTypes(_ context.Context, _ string, method string) ([]string, error) {
	types := s.methods[method]
	res := make([]string, len(types))
	copy(res, types)
	return res, nil
}

func (s *DefaultUserSettings) Setting(_ context.Context, _ string, category, key string) (string, error) {
	return s.values[SettingKey(category, key)], nil
}

func SettingKey(category, key string) string {
	return fmt.Sprintf("%s.%s", category, key)
}

// DefaultValues 没有配置时使用的缺省设置
func DefaultValues() map[string]string {
	return map[string]string{
		SettingKey(domain.SettingCategory, domain.SettingSelf):      "true",
		SettingKey(domain.SettingCategory, domain.SettingBatchTime): "3600",
	}
}
