package get_customer

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/customers/models"
)

type CustomerService interface {
	Get(ctx context.Context, id int64) (*models.CustomerDetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
