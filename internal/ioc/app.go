package ioc

import (
	"gitee.com/flycash/activity-platform/internal/service/activity"
	"gitee.com/flycash/activity-platform/internal/service/digest"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Crons []ecron.Ecron

	ActivitySvc activity.Service
	DigestSvc   digest.Service
}
