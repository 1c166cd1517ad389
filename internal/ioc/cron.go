package ioc

import (
	"gitee.com/flycash/activity-platform/internal/service/activity"
	"github.com/gotomicro/ego/task/ecron"
)

func Crons(expire *activity.ExpireCron) []ecron.Ecron {
	c := ecron.Load("cron.expire").Build(ecron.WithJob(expire.Do))
	return []ecron.Ecron{c}
}
