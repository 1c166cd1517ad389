//go:build wireinject

package ioc

import (
	"gitee.com/flycash/activity-platform/internal/ioc"
	"gitee.com/flycash/activity-platform/internal/pkg/session"
	"gitee.com/flycash/activity-platform/internal/repository"
	"gitee.com/flycash/activity-platform/internal/repository/cache"
	"gitee.com/flycash/activity-platform/internal/repository/cache/local"
	"gitee.com/flycash/activity-platform/internal/repository/dao"
	"gitee.com/flycash/activity-platform/internal/service/activity"
	"gitee.com/flycash/activity-platform/internal/service/digest"
	"gitee.com/flycash/activity-platform/internal/service/registry"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitGoCache,
		ioc.InitActivityConfig,

		local.NewNotificationTypeCache,
		wire.Bind(new(cache.NotificationTypeCache), new(*local.NotificationTypeCache)),
	)
	registrySet = wire.NewSet(
		ioc.InitTypeRegistry,
		ioc.InitFilterRegistry,
		ioc.InitUserSettings,
		ioc.InitGrouperFactory,
		session.NewContextSession,
		wire.Bind(new(activity.TypeRegistry), new(*registry.StaticTypeRegistry)),
		wire.Bind(new(activity.FilterRegistry), new(*registry.StaticFilterRegistry)),
		wire.Bind(new(activity.UserSettings), new(*registry.DefaultUserSettings)),
		wire.Bind(new(activity.Session), new(session.ContextSession)),
	)
	activitySvcSet = wire.NewSet(
		activity.NewService,
		repository.NewActivityRepository,
		repository.NewMailQueueRepository,
		dao.NewActivityDAO,
		dao.NewMailQueueDAO,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 通知类型、过滤器和用户设置
		registrySet,

		// 动态服务
		activitySvcSet,

		// 邮件摘要
		digest.NewService,

		// 定时任务
		ioc.InitExpireCron,
		ioc.Crons,

		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
