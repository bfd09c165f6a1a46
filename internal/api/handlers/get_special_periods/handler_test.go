package get_special_periods

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule"
	"github.com/m04kA/SMC-TableBookingService/internal/service/schedule/models"
	"github.com/m04kA/SMC-TableBookingService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) ListSpecialPeriods(ctx context.Context, req *models.ListSpecialPeriodsRequest) (*models.SpecialPeriodListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpecialPeriodListResponse), args.Error(1)
}

func serve(svc ScheduleService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/restaurants/{restaurantId}/special-periods",
		NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(1, "2024-12-01", "")
	require.NoError(t, err)
	require.NotNil(t, req.From)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), *req.From)
	assert.Nil(t, req.To)

	_, err = ToServiceRequest(1, "", "tomorrow")
	assert.Error(t, err)
}

func TestHandle_Success(t *testing.T) {
	svc := new(mockService)
	svc.On("ListSpecialPeriods", mock.Anything, mock.MatchedBy(func(req *models.ListSpecialPeriodsRequest) bool {
		return req.RestaurantID == 2 && req.From != nil && req.To != nil
	})).Return(&models.SpecialPeriodListResponse{Periods: []models.SpecialPeriodResponse{{ID: 5, RestaurantID: 2}}}, nil)

	rec := serve(svc, "/api/v1/restaurants/2/special-periods?from=2024-12-01&to=2024-12-31")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		svcErr     error
		wantStatus int
	}{
		{name: "bad date", target: "/api/v1/restaurants/2/special-periods?from=01.12.2024", wantStatus: http.StatusBadRequest},
		{name: "inverted range", target: "/api/v1/restaurants/2/special-periods", svcErr: schedule.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "not found", target: "/api/v1/restaurants/2/special-periods", svcErr: schedule.ErrRestaurantNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", target: "/api/v1/restaurants/2/special-periods", svcErr: schedule.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.svcErr != nil {
				svc.On("ListSpecialPeriods", mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := serve(svc, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
