package get_customer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/service/customers"
	"github.com/m04kA/SMC-SalonService/internal/service/customers/models"
)

type mockLogger struct{}

func (mockLogger) Info(string, ...interface{})  {}
func (mockLogger) Warn(string, ...interface{})  {}
func (mockLogger) Error(string, ...interface{}) {}

type mockService struct{}

func (mockService) Get(_ context.Context, id int64) (*models.CustomerDetailResponse, error) {
	if id != 1 {
		return nil, customers.ErrCustomerNotFound
	}
	return &models.CustomerDetailResponse{
		CustomerResponse: models.CustomerResponse{ID: 1, Name: "김민지", Phone: "010-1234-5678"},
		History:          []models.VisitResponse{},
	}, nil
}

func TestHandle(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/customers/{customerId}", NewHandler(mockService{}, mockLogger{}).Handle)

	tests := []struct {
		path     string
		wantCode int
	}{
		{"/customers/1", http.StatusOK},
		{"/customers/2", http.StatusNotFound},
		{"/customers/abc", http.StatusBadRequest},
		{"/customers/0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.wantCode, rec.Code, tt.path)
	}
}
