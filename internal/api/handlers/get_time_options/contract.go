package get_time_options

import (
	getTimeOptions "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_time_options"
)

type GetTimeOptionsUseCase interface {
	Execute(req *getTimeOptions.Request) (*getTimeOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
