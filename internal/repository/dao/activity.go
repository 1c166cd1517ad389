package dao

import (
	"context"
	"errors"
	"fmt"

	"gitee.com/flycash/activity-platform/internal/domain"
	"gitee.com/flycash/activity-platform/internal/errs"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityDAO interface {
	// Insert 写入一条动态，ID 由数据库生成
	Insert(ctx context.Context, data Activity) (Activity, error)
	// Stream 按时间倒序查询，每扫描到一行就回调一次 fn，不会把结果全部放进内存
	Stream(ctx context.Context, query domain.ActivityQuery, fn func(Activity) error) error
	// Delete 删除满足全部条件的动态。没有条件的时候会删除全表
	Delete(ctx context.Context, conds ...domain.Condition) (int64, error)
}

// Activity 动态表
type Activity struct {
	ID            int64  `gorm:"column:activity_id;primaryKey;autoIncrement"`
	App           string `gorm:"column:app;type:VARCHAR(255);NOT NULL;default:''"`
	Subject       string `gorm:"column:subject;type:VARCHAR(255);NOT NULL;default:''"`
	SubjectParams string `gorm:"column:subjectparams;type:TEXT;NOT NULL;comment:'subject 参数，JSON数组'"`
	Message       string `gorm:"column:message;type:VARCHAR(255);NOT NULL;default:''"`
	MessageParams string `gorm:"column:messageparams;type:TEXT;comment:'message 参数，JSON数组'"`
	File          string `gorm:"column:file;type:VARCHAR(4000);NOT NULL;default:''"`
	Link          string `gorm:"column:link;type:VARCHAR(4000);NOT NULL;default:''"`
	// 匿名操作为空字符串
	User         string `gorm:"column:user;type:VARCHAR(64);NOT NULL;default:'';index:idx_user_time,priority:1"`
	AffectedUser string `gorm:"column:affecteduser;type:VARCHAR(64);NOT NULL;index:idx_affected_time,priority:1;index:idx_affected_object,priority:1"`
	// 秒
	Timestamp  int64  `gorm:"column:timestamp;NOT NULL;default:0;index:idx_time;index:idx_user_time,priority:2;index:idx_affected_time,priority:2"`
	Priority   int    `gorm:"column:priority;NOT NULL;default:0"`
	Type       string `gorm:"column:type;type:VARCHAR(255);NOT NULL;default:''"`
	ObjectType string `gorm:"column:object_type;type:VARCHAR(255);NOT NULL;default:'';index:idx_affected_object,priority:2"`
	ObjectID   int64  `gorm:"column:object_id;NOT NULL;default:0;index:idx_affected_object,priority:3"`
}

func (Activity) TableName() string {
	return "activity"
}

var activityColumns = map[string]struct{}{
	domain.FieldID:           {},
	domain.FieldApp:          {},
	domain.FieldSubject:      {},
	domain.FieldFile:         {},
	domain.FieldUser:         {},
	domain.FieldAffectedUser: {},
	domain.FieldTimestamp:    {},
	domain.FieldPriority:     {},
	domain.FieldType:         {},
	domain.FieldObjectType:   {},
	domain.FieldObjectID:     {},
}

type activityDAO struct {
	db *egorm.Component
}

// NewActivityDAO 创建动态DAO实例
func NewActivityDAO(db *egorm.Component) ActivityDAO {
	return &activityDAO{
		db: db,
	}
}

func (d *activityDAO) Insert(ctx context.Context, data Activity) (Activity, error) {
	if err := d.db.WithContext(ctx).Create(&data).Error; err != nil {
		if isUniqueConstraintError(err) {
			return Activity{}, fmt.Errorf("%w: id=%d", errs.ErrActivityDuplicate, data.ID)
		}
		return Activity{}, fmt.Errorf("%w: %w", errs.ErrCreateActivityFailed, err)
	}
	return data, nil
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (d *activityDAO) Stream(ctx context.Context, query domain.ActivityQuery, fn func(Activity) error) error {
	exprs, err := buildExpressions(activityColumns, query.Conditions)
	if err != nil {
		return err
	}
	db := d.db.WithContext(ctx).Model(&Activity{})
	if len(exprs) > 0 {
		db = db.Clauses(clause.Where{Exprs: exprs})
	}
	db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: domain.FieldTimestamp}, Desc: true})
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}
	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}
	rows, err := db.Rows()
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrReadActivityFailed, err)
	}
	defer rows.Close()
	for rows.Next() {
		var a Activity
		if err = d.db.ScanRows(rows, &a); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrReadActivityFailed, err)
		}
		if err = fn(a); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (d *activityDAO) Delete(ctx context.Context, conds ...domain.Condition) (int64, error) {
	exprs, err := buildExpressions(activityColumns, conds)
	if err != nil {
		return 0, err
	}
	db := d.db.WithContext(ctx)
	if len(exprs) == 0 {
		// 没有条件就是清空全表，gorm 默认会拦截
		db = db.Session(&gorm.Session{AllowGlobalUpdate: true})
	} else {
		db = db.Clauses(clause.Where{Exprs: exprs})
	}
	res := db.Delete(&Activity{})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrDeleteActivityFailed, res.Error)
	}
	return res.RowsAffected, nil
}
