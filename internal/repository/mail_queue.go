package repository

import (
	"context"

	"gitee.com/flycash/activity-platform/internal/domain"
	"gitee.com/flycash/activity-platform/internal/repository/dao"

	"github.com/ecodeclub/ekit/slice"
)

// MailQueueRepository 邮件摘要队列仓储
type MailQueueRepository interface {
	Create(ctx context.Context, item domain.MailItem) (domain.MailItem, error)
	FindDue(ctx context.Context, before int64, limit int) ([]domain.MailItem, error)
	DeleteByUsers(ctx context.Context, users []string, maxTime int64) (int64, error)
}

type mailQueueRepository struct {
	dao dao.MailQueueDAO
}

func NewMailQueueRepository(d dao.MailQueueDAO) MailQueueRepository {
	return &mailQueueRepository{dao: d}
}

func (r *mailQueueRepository) Create(ctx context.Context, item domain.MailItem) (domain.MailItem, error) {
	m, err := r.dao.Insert(ctx, r.toEntity(item))
	if err != nil {
		return domain.MailItem{}, err
	}
	return r.toDomain(m), nil
}

func (r *mailQueueRepository) FindDue(ctx context.Context, before int64, limit int) ([]domain.MailItem, error) {
	ms, err := r.dao.FindDue(ctx, before, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ms, func(idx int, src dao.MailQueue) domain.MailItem {
		return r.toDomain(src)
	}), nil
}

func (r *mailQueueRepository) DeleteByUsers(ctx context.Context, users []string, maxTime int64) (int64, error) {
	return r.dao.DeleteByUsers(ctx, users, maxTime)
}

func (r *mailQueueRepository) toEntity(item domain.MailItem) dao.MailQueue {
	return dao.MailQueue{
		ID:            item.ID,
		AppID:         item.App,
		Subject:       item.Subject,
		SubjectParams: marshalParams(item.SubjectParams),
		AffectedUser:  item.AffectedUser,
		Timestamp:     item.Timestamp,
		Type:          item.Type,
		LatestSend:    item.LatestSend,
	}
}

func (r *mailQueueRepository) toDomain(m dao.MailQueue) domain.MailItem {
	return domain.MailItem{
		ID:            m.ID,
		App:           m.AppID,
		Subject:       m.Subject,
		SubjectParams: unmarshalParams(m.SubjectParams),
		AffectedUser:  m.AffectedUser,
		Timestamp:     m.Timestamp,
		Type:          m.Type,
		LatestSend:    m.LatestSend,
	}
}
