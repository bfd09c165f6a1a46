package delete_special_period

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TableBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule"
	"github.com/m04kA/SMC-TableBookingService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) DeleteSpecialPeriod(ctx context.Context, restaurantID, periodID, userID int64) error {
	return m.Called(ctx, restaurantID, periodID, userID).Error(0)
}

func serve(svc ScheduleService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/restaurants/{restaurantId}/special-periods/{periodId}",
		NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set("X-User-ID", "9")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		svcErr     error
		callSvc    bool
		wantStatus int
	}{
		{name: "deleted", target: "/api/v1/restaurants/4/special-periods/3", callSvc: true, wantStatus: http.StatusNoContent},
		{name: "not found", target: "/api/v1/restaurants/4/special-periods/3", callSvc: true,
			svcErr: schedule.ErrSpecialPeriodNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", target: "/api/v1/restaurants/4/special-periods/3", callSvc: true,
			svcErr: schedule.ErrInternal, wantStatus: http.StatusInternalServerError},
		{name: "bad period id", target: "/api/v1/restaurants/4/special-periods/x", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.callSvc {
				svc.On("DeleteSpecialPeriod", mock.Anything, int64(4), int64(3), int64(9)).Return(tt.svcErr)
			}

			rec := serve(svc, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
