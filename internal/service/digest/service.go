package digest

import (
	"context"
	"fmt"
	"strconv"

	"gitee.com/flycash/activity-platform/internal/domain"
	"gitee.com/flycash/activity-platform/internal/errs"
	"gitee.com/flycash/activity-platform/internal/repository"
	"gitee.com/flycash/activity-platform/internal/service/activity"

	"github.com/gotomicro/ego/core/elog"
)

// DefaultBatchTime 用户没有设置合并间隔时使用，单位秒
const DefaultBatchTime = 3600

// Service 邮件摘要队列。
// 动态先进入队列，到了最晚发送时间之后由发信方一次性取出，发送完成后确认删除。
type Service interface {
	// Queue 计算最晚发送时间并入队
	Queue(ctx context.Context, item domain.MailItem, eventTime int64) error
	// Due 最晚发送时间早于 now 的记录，按接收人分组排序
	Due(ctx context.Context, now int64, limit int) ([]domain.MailItem, error)
	// Ack 删除已经发送过的记录
	Ack(ctx context.Context, users []string, maxTime int64) (int64, error)
}

type service struct {
	activitySvc activity.Service
	settings    activity.UserSettings
	repo        repository.MailQueueRepository
	logger      *elog.Component
}

func NewService(activitySvc activity.Service, settings activity.UserSettings, repo repository.MailQueueRepository) Service {
	return &service{
		activitySvc: activitySvc,
		settings:    settings,
		repo:        repo,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) Queue(ctx context.Context, item domain.MailItem, eventTime int64) error {
	if item.AffectedUser == "" {
		return fmt.Errorf("%w: AffectedUser 不能为空", errs.ErrInvalidParameter)
	}
	batch, err := s.batchTime(ctx, item.AffectedUser)
	if err != nil {
		return err
	}
	item.LatestSend = eventTime + batch
	return s.activitySvc.StoreMail(ctx, item)
}

func (s *service) batchTime(ctx context.Context, user string) (int64, error) {
	val, err := s.settings.Setting(ctx, user, domain.SettingCategory, domain.SettingBatchTime)
	if err != nil {
		return 0, fmt.Errorf("%w: user=%s, %w", errs.ErrUserSettings, user, err)
	}
	batch, err := strconv.ParseInt(val, 10, 64)
	if err != nil || batch <= 0 {
		if val != "" {
			s.logger.Warn("非法的邮件合并间隔", elog.String("user", user), elog.String("batchtime", val))
		}
		return DefaultBatchTime, nil
	}
	return batch, nil
}

func (s *service) Due(ctx context.Context, now int64, limit int) ([]domain.MailItem, error) {
	return s.repo.FindDue(ctx, now, limit)
}

func (s *service) Ack(ctx context.Context, users []string, maxTime int64) (int64, error) {
	return s.repo.DeleteByUsers(ctx, users, maxTime)
}
