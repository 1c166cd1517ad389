package domain

import (
	"fmt"

	"gitee.com/flycash/activity-platform/internal/errs"
)

// 内置的过滤器
const (
	FilterAll    = "all"
	FilterSelf   = "self"
	FilterBy     = "by"
	FilterObject = "filter"
)

// 通知类型生效的场景
const (
	MethodStream = "stream"
	MethodEmail  = "email"
)

// 用户设置里的分类和键
const (
	SettingCategory = "setting"
	// SettingSelf 是否在动态流里显示自己的操作
	SettingSelf = "self"
	// SettingBatchTime 邮件摘要的合并间隔，单位秒
	SettingBatchTime = "batchtime"
)

// Event 一次需要记录的动作，由 Send 写入
type Event struct {
	App           string
	Subject       string
	SubjectParams []string
	Message       string
	MessageParams []string
	File          string
	Link          string
	// AffectedUser 为空时表示通知当前操作人自己
	AffectedUser string
	Type         string
	Priority     int
	ObjectType   string
	ObjectID     int64
}

// Activity 动态领域模型，对应 activity 表里的一行
type Activity struct {
	ID            int64
	App           string
	Subject       string
	SubjectParams []string
	Message       string
	MessageParams []string
	File          string
	Link          string
	// User 动作的发起者，匿名操作为空
	User         string
	AffectedUser string
	// Timestamp 秒级时间戳，写入时由服务端生成
	Timestamp  int64
	Priority   int
	Type       string
	ObjectType string
	ObjectID   int64
}

func (a Activity) Validate() error {
	if a.AffectedUser == "" {
		return fmt.Errorf("%w: AffectedUser = %q", errs.ErrInvalidParameter, a.AffectedUser)
	}
	return nil
}

// ActivityGroup 分组后的动态，可以直接用于展示
type ActivityGroup struct {
	Activity
	// IDs 被合并进来的全部动态 ID，按时间倒序
	IDs []int64
	// GroupedParam 被合并的 subject 参数下标，-1 代表没有合并
	GroupedParam int
	// GroupedValues 合并之后该参数位置上的全部取值
	GroupedValues []string
}

// ReadQuery 读取动态流的参数
type ReadQuery struct {
	Start  int
	Count  int
	Filter string
	// User 为空时使用当前会话里的用户
	User       string
	ObjectType string
	ObjectID   int64
}

// MailItem 邮件摘要队列里的一项
type MailItem struct {
	ID            int64
	App           string
	Subject       string
	SubjectParams []string
	AffectedUser  string
	Type          string
	Timestamp     int64
	// LatestSend 最晚发送时间，由调用方计算
	LatestSend int64
}

// NotificationType 通知类型
type NotificationType struct {
	ID          string
	Description string
	// Methods 为空代表 stream 和 email 都适用
	Methods []string
}

func (t NotificationType) Supports(method string) bool {
	if len(t.Methods) == 0 {
		return true
	}
	for _, m := range t.Methods {
		if m == method {
			return true
		}
	}
	return false
}
