package main

import (
	"gitee.com/flycash/activity-platform/cmd/platform/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
)

func main() {
	app := ioc.InitApp()
	if err := ego.New().Cron(app.Crons...).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
