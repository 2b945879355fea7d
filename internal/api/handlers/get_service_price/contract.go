package get_service_price

import (
	"context"

	getServicePrice "github.com/m04kA/SMC-DentalCareService/internal/usecase/get_service_price"
)

type GetServicePriceUseCase interface {
	Execute(ctx context.Context, req *getServicePrice.Request) (*getServicePrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
