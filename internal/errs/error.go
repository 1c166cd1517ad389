package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter     = errors.New("参数错误")
	ErrInvalidCondition     = errors.New("非法的查询条件")
	ErrCreateActivityFailed = errors.New("创建动态失败")
	ErrActivityDuplicate    = errors.New("动态ID冲突")
	ErrCreateMailFailed     = errors.New("创建邮件队列记录失败")
	ErrReadMailFailed       = errors.New("读取邮件队列失败")
	ErrDeleteMailFailed     = errors.New("删除邮件队列记录失败")
	ErrReadActivityFailed   = errors.New("读取动态失败")
	ErrDeleteActivityFailed = errors.New("删除动态失败")
	ErrNotificationTypes    = errors.New("获取通知类型失败")
	ErrUserSettings         = errors.New("获取用户设置失败")
)
