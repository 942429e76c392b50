package bulk_availability

import (
	"context"

	bulkAvailability "github.com/m04kA/HRC-CalendarService/internal/usecase/bulk_availability"
)

type BulkAvailabilityUseCase interface {
	Execute(ctx context.Context, req *bulkAvailability.Request) (*bulkAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
