package finalize_booking

import (
	"context"

	finalizeBooking "github.com/m04kA/SMC-ScheduleGateway/internal/usecase/finalize_booking"
)

type FinalizeBookingUseCase interface {
	Execute(ctx context.Context, req *finalizeBooking.Request) (*finalizeBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
