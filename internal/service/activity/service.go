package activity

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/activity-platform/internal/domain"
	"gitee.com/flycash/activity-platform/internal/errs"
	"gitee.com/flycash/activity-platform/internal/repository"
	"gitee.com/flycash/activity-platform/internal/repository/cache"

	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/singleflight"
)

const (
	// defaultCount 没有指定分页大小时每页的条数
	defaultCount = 30
	secondsOfDay = 24 * 60 * 60
)

//go:generate mockgen -source=./service.go -destination=./mocks/service.mock.go -package=activitymocks -typed Service
type Service interface {
	// Send 记录一条动态。匿名操作并且没有指定接收人的时候什么都不做，返回 false
	Send(ctx context.Context, evt domain.Event) (bool, error)
	// StoreMail 把一条动态放进邮件摘要队列
	StoreMail(ctx context.Context, item domain.MailItem) error
	// ValidateFilter 返回规范化之后的过滤器
	ValidateFilter(filter string) string
	// Read 读取用户的动态流，并完成分组
	Read(ctx context.Context, q domain.ReadQuery) ([]domain.ActivityGroup, error)
	// Expire 删除 days 天之前的动态，days 最小为 1
	Expire(ctx context.Context, days int) (int64, error)
	// DeleteActivities 删除满足全部条件的动态，不传条件会清空全表
	DeleteActivities(ctx context.Context, conds ...domain.Condition) (int64, error)
	// NotificationTypes 指定语言下的通知类型，每种语言只会计算一次
	NotificationTypes(ctx context.Context, lang string) ([]domain.NotificationType, error)
}

type service struct {
	repo       repository.ActivityRepository
	mailRepo   repository.MailQueueRepository
	typeCache  cache.NotificationTypeCache
	session    Session
	types      TypeRegistry
	filters    FilterRegistry
	settings   UserSettings
	newGrouper GrouperFactory
	// typeGroup 同一种语言并发未命中缓存时只计算一次
	typeGroup singleflight.Group
	now       func() time.Time
	logger    *elog.Component
}

func NewService(
	repo repository.ActivityRepository,
	mailRepo repository.MailQueueRepository,
	typeCache cache.NotificationTypeCache,
	session Session,
	types TypeRegistry,
	filters FilterRegistry,
	settings UserSettings,
	newGrouper GrouperFactory,
) Service {
	return &service{
		repo:       repo,
		mailRepo:   mailRepo,
		typeCache:  typeCache,
		session:    session,
		types:      types,
		filters:    filters,
		settings:   settings,
		newGrouper: newGrouper,
		now:        time.Now,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) Send(ctx context.Context, evt domain.Event) (bool, error) {
	actor, _ := s.session.User(ctx)
	affected := evt.AffectedUser
	if affected == "" {
		if actor == "" {
			// 匿名操作又没有接收人，没有人可以看到这条动态
			return false, nil
		}
		affected = actor
	}

	a := domain.Activity{
		App:           evt.App,
		Subject:       evt.Subject,
		SubjectParams: evt.SubjectParams,
		Message:       evt.Message,
		MessageParams: evt.MessageParams,
		File:          evt.File,
		Link:          evt.Link,
		User:          actor,
		AffectedUser:  affected,
		Timestamp:     s.now().Unix(),
		Priority:      evt.Priority,
		Type:          evt.Type,
		ObjectType:    evt.ObjectType,
		ObjectID:      evt.ObjectID,
	}
	if _, err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("记录动态失败",
			elog.String("app", a.App),
			elog.String("type", a.Type),
			elog.String("affectedUser", a.AffectedUser),
			elog.FieldErr(err))
		return false, err
	}
	return true, nil
}

func (s *service) StoreMail(ctx context.Context, item domain.MailItem) error {
	item.Timestamp = s.now().Unix()
	_, err := s.mailRepo.Create(ctx, item)
	return err
}

func (s *service) Read(ctx context.Context, q domain.ReadQuery) ([]domain.ActivityGroup, error) {
	user := q.User
	if user == "" {
		user, _ = s.session.User(ctx)
	}
	if user == "" {
		return []domain.ActivityGroup{}, nil
	}

	filter := s.ValidateFilter(q.Filter)
	types, err := s.enabledTypes(ctx, user, filter)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return []domain.ActivityGroup{}, nil
	}

	conds, err := s.conditions(ctx, user, filter, q, types)
	if err != nil {
		return nil, err
	}

	count := q.Count
	if count <= 0 {
		count = defaultCount
	}
	grouper := s.newGrouper()
	grouper.SetUser(user)
	err = s.repo.Stream(ctx, domain.ActivityQuery{
		Conditions: conds,
		Offset:     q.Start,
		Limit:      count,
	}, func(a domain.Activity) error {
		grouper.AddActivity(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return grouper.Activities(), nil
}

func (s *service) Expire(ctx context.Context, days int) (int64, error) {
	if days < 1 {
		days = 1
	}
	limit := s.now().Unix() - int64(days)*secondsOfDay
	cnt, err := s.DeleteActivities(ctx, domain.Lt(domain.FieldTimestamp, limit))
	if err != nil {
		return 0, err
	}
	s.logger.Info("清理过期动态",
		elog.Int("days", days),
		elog.Int64("before", limit),
		elog.Int64("deleted", cnt))
	return cnt, nil
}

func (s *service) DeleteActivities(ctx context.Context, conds ...domain.Condition) (int64, error) {
	return s.repo.Delete(ctx, conds...)
}

func (s *service) NotificationTypes(ctx context.Context, lang string) ([]domain.NotificationType, error) {
	types, err := s.typeCache.Get(ctx, lang)
	if err == nil {
		return types, nil
	}
	val, err, _ := s.typeGroup.Do(lang, func() (any, error) {
		// 结果是所有等待者共享的，不能跟着第一个调用者一起取消
		ctx := context.WithoutCancel(ctx)
		res, err := s.types.NotificationTypes(ctx, lang)
		if err != nil {
			return nil, fmt.Errorf("%w: lang=%s, %w", errs.ErrNotificationTypes, lang, err)
		}
		if err = s.typeCache.Set(ctx, lang, res); err != nil {
			s.logger.Warn("缓存通知类型失败", elog.String("lang", lang), elog.FieldErr(err))
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]domain.NotificationType), nil
}

// NotificationTypeDescriptions 类型 ID 到描述的映射，方便渲染时查找
func NotificationTypeDescriptions(types []domain.NotificationType, method string) map[string]string {
	res := make(map[string]string, len(types))
	for _, t := range types {
		if !t.Supports(method) {
			continue
		}
		res[t.ID] = t.Description
	}
	return res
}
