package repository

import (
	"context"
	"encoding/json"

	"gitee.com/flycash/activity-platform/internal/domain"
	"gitee.com/flycash/activity-platform/internal/repository/dao"
)

// ActivityRepository 动态仓储接口
type ActivityRepository interface {
	// Create 写入一条动态
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	// Stream 逐行读取满足条件的动态
	Stream(ctx context.Context, query domain.ActivityQuery, fn func(domain.Activity) error) error
	// Delete 删除满足条件的动态，返回删除的行数
	Delete(ctx context.Context, conds ...domain.Condition) (int64, error)
}

type activityRepository struct {
	dao dao.ActivityDAO
}

// NewActivityRepository 创建动态仓储实例
func NewActivityRepository(d dao.ActivityDAO) ActivityRepository {
	return &activityRepository{
		dao: d,
	}
}

func (r *activityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if err := activity.Validate(); err != nil {
		return domain.Activity{}, err
	}
	a, err := r.dao.Insert(ctx, r.toEntity(activity))
	if err != nil {
		return domain.Activity{}, err
	}
	return r.toDomain(a), nil
}

func (r *activityRepository) Stream(ctx context.Context, query domain.ActivityQuery, fn func(domain.Activity) error) error {
	return r.dao.Stream(ctx, query, func(a dao.Activity) error {
		return fn(r.toDomain(a))
	})
}

func (r *activityRepository) Delete(ctx context.Context, conds ...domain.Condition) (int64, error) {
	return r.dao.Delete(ctx, conds...)
}

// toEntity 将领域对象转换为DAO实体
func (r *activityRepository) toEntity(a domain.Activity) dao.Activity {
	return dao.Activity{
		ID:            a.ID,
		App:           a.App,
		Subject:       a.Subject,
		SubjectParams: marshalParams(a.SubjectParams),
		Message:       a.Message,
		MessageParams: marshalParams(a.MessageParams),
		File:          a.File,
		Link:          a.Link,
		User:          a.User,
		AffectedUser:  a.AffectedUser,
		Timestamp:     a.Timestamp,
		Priority:      a.Priority,
		Type:          a.Type,
		ObjectType:    a.ObjectType,
		ObjectID:      a.ObjectID,
	}
}

// toDomain 将DAO实体转换为领域对象
func (r *activityRepository) toDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:            a.ID,
		App:           a.App,
		Subject:       a.Subject,
		SubjectParams: unmarshalParams(a.SubjectParams),
		Message:       a.Message,
		MessageParams: unmarshalParams(a.MessageParams),
		File:          a.File,
		Link:          a.Link,
		User:          a.User,
		AffectedUser:  a.AffectedUser,
		Timestamp:     a.Timestamp,
		Priority:      a.Priority,
		Type:          a.Type,
		ObjectType:    a.ObjectType,
		ObjectID:      a.ObjectID,
	}
}

func marshalParams(params []string) string {
	jsonBytes, _ := json.Marshal(params)
	return string(jsonBytes)
}

func unmarshalParams(val string) []string {
	if val == "" {
		return nil
	}
	var params []string
	_ = json.Unmarshal([]byte(val), &params)
	return params
}
