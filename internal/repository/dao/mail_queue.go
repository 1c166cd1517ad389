package dao

import (
	"context"
	"fmt"

	"gitee.com/flycash/activity-platform/internal/errs"

	"github.com/ego-component/egorm"
)

type MailQueueDAO interface {
	Insert(ctx context.Context, data MailQueue) (MailQueue, error)
	// FindDue 查找 latest_send 早于 before 的记录，按接收人和时间排序
	FindDue(ctx context.Context, before int64, limit int) ([]MailQueue, error)
	// DeleteByUsers 删除这些用户在 maxTime 之前（含）入队的记录
	DeleteByUsers(ctx context.Context, users []string, maxTime int64) (int64, error)
}

// MailQueue 邮件摘要队列表，写入之后只会被删除，不会更新
type MailQueue struct {
	ID            int64  `gorm:"column:mail_id;primaryKey;autoIncrement"`
	AppID         string `gorm:"column:amq_appid;type:VARCHAR(255);NOT NULL;default:''"`
	Subject       string `gorm:"column:amq_subject;type:VARCHAR(255);NOT NULL;default:''"`
	SubjectParams string `gorm:"column:amq_subjectparams;type:TEXT;comment:'subject 参数，JSON数组'"`
	AffectedUser  string `gorm:"column:amq_affecteduser;type:VARCHAR(64);NOT NULL;default:'';index:idx_amq_user"`
	Timestamp     int64  `gorm:"column:amq_timestamp;NOT NULL;default:0"`
	Type          string `gorm:"column:amq_type;type:VARCHAR(255);NOT NULL;default:''"`
	LatestSend    int64  `gorm:"column:amq_latest_send;NOT NULL;default:0;index:idx_amq_latest_send"`
}

func (MailQueue) TableName() string {
	return "activity_mq"
}

type mailQueueDAO struct {
	db *egorm.Component
}

func NewMailQueueDAO(db *egorm.Component) MailQueueDAO {
	return &mailQueueDAO{db: db}
}

func (d *mailQueueDAO) Insert(ctx context.Context, data MailQueue) (MailQueue, error) {
	if err := d.db.WithContext(ctx).Create(&data).Error; err != nil {
		return MailQueue{}, fmt.Errorf("%w: %w", errs.ErrCreateMailFailed, err)
	}
	return data, nil
}

func (d *mailQueueDAO) FindDue(ctx context.Context, before int64, limit int) ([]MailQueue, error) {
	var res []MailQueue
	db := d.db.WithContext(ctx).
		Where("amq_latest_send < ?", before).
		Order("amq_affecteduser ASC").
		Order("amq_timestamp ASC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&res).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrReadMailFailed, err)
	}
	return res, nil
}

func (d *mailQueueDAO) DeleteByUsers(ctx context.Context, users []string, maxTime int64) (int64, error) {
	if len(users) == 0 {
		return 0, nil
	}
	res := d.db.WithContext(ctx).
		Where("amq_affecteduser IN ? AND amq_timestamp <= ?", users, maxTime).
		Delete(&MailQueue{})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrDeleteMailFailed, res.Error)
	}
	return res.RowsAffected, nil
}
