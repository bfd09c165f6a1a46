package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// Request модели

// DaySchedule расписание на один день недели
type DaySchedule struct {
	DayOfWeek int     `json:"dayOfWeek"`           // 0 = воскресенье
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`  // HH:MM
	CloseTime *string `json:"closeTime,omitempty"` // HH:MM, 24:00 = до конца суток
}

// UpdateOpeningHoursRequest запрос на замену недельного расписания
// Дни, отсутствующие в запросе, считаются выходными
type UpdateOpeningHoursRequest struct {
	UserID       int64         `json:"-"`
	RestaurantID int64         `json:"-"`
	Days         []DaySchedule `json:"days"`
}

// ListSpecialPeriodsRequest запрос списка особых периодов
type ListSpecialPeriodsRequest struct {
	RestaurantID int64
	From         *time.Time // nil - без ограничения
	To           *time.Time // nil - без ограничения
}

// CreateSpecialPeriodRequest запрос на создание особого периода
type CreateSpecialPeriodRequest struct {
	UserID       int64   `json:"-"`
	RestaurantID int64   `json:"-"`
	StartDate    string  `json:"startDate"` // YYYY-MM-DD
	EndDate      string  `json:"endDate"`   // YYYY-MM-DD, включительно
	IsOpen       bool    `json:"isOpen"`
	OpenTime     *string `json:"openTime,omitempty"`
	CloseTime    *string `json:"closeTime,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}

// Response модели

// OpeningHoursResponse недельное расписание ресторана
type OpeningHoursResponse struct {
	RestaurantID int64         `json:"restaurantId"`
	Days         []DaySchedule `json:"days"`
}

// SpecialPeriodResponse особый период
type SpecialPeriodResponse struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	IsOpen       bool      `json:"isOpen"`
	OpenTime     *string   `json:"openTime,omitempty"`
	CloseTime    *string   `json:"closeTime,omitempty"`
	Reason       *string   `json:"reason,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SpecialPeriodListResponse список особых периодов
type SpecialPeriodListResponse struct {
	Periods []SpecialPeriodResponse `json:"periods"`
}

// Методы конвертации

// FromDomainOpeningHours конвертирует domain модели в DTO
func FromDomainOpeningHours(restaurantID int64, hours []*domain.OpeningHours) *OpeningHoursResponse {
	days := make([]DaySchedule, 0, len(hours))
	for _, h := range hours {
		days = append(days, DaySchedule{
			DayOfWeek: h.DayOfWeek,
			IsOpen:    h.IsOpen,
			OpenTime:  timeToString(h.OpenTime),
			CloseTime: timeToString(h.CloseTime),
		})
	}
	return &OpeningHoursResponse{RestaurantID: restaurantID, Days: days}
}

// ToDomain конвертирует DTO дня в domain модель
func (d DaySchedule) ToDomain(restaurantID int64) (*domain.OpeningHours, error) {
	h := &domain.OpeningHours{
		RestaurantID: restaurantID,
		DayOfWeek:    d.DayOfWeek,
		IsOpen:       d.IsOpen,
	}

	var err error
	if h.OpenTime, err = parseOptionalTime(d.OpenTime); err != nil {
		return nil, fmt.Errorf("openTime: %w", err)
	}
	if h.CloseTime, err = parseOptionalTime(d.CloseTime); err != nil {
		return nil, fmt.Errorf("closeTime: %w", err)
	}

	return h, nil
}

// FromDomainSpecialPeriod конвертирует domain модель в DTO
func FromDomainSpecialPeriod(p *domain.SpecialPeriod) *SpecialPeriodResponse {
	if p == nil {
		return nil
	}
	return &SpecialPeriodResponse{
		ID:           p.ID,
		RestaurantID: p.RestaurantID,
		StartDate:    p.StartDate.Format(domain.DateFormat),
		EndDate:      p.EndDate.Format(domain.DateFormat),
		IsOpen:       p.IsOpen,
		OpenTime:     timeToString(p.OpenTime),
		CloseTime:    timeToString(p.CloseTime),
		Reason:       p.Reason,
		CreatedAt:    p.CreatedAt,
	}
}

// FromDomainSpecialPeriods конвертирует список domain моделей в DTO
func FromDomainSpecialPeriods(periods []*domain.SpecialPeriod) *SpecialPeriodListResponse {
	result := make([]SpecialPeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, *FromDomainSpecialPeriod(p))
	}
	return &SpecialPeriodListResponse{Periods: result}
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateSpecialPeriodRequest) ToDomain() (*domain.SpecialPeriod, error) {
	start, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}
	end, err := types.ParseDate(r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	p := &domain.SpecialPeriod{
		RestaurantID: r.RestaurantID,
		StartDate:    start,
		EndDate:      end,
		IsOpen:       r.IsOpen,
		Reason:       r.Reason,
	}

	if p.OpenTime, err = parseOptionalTime(r.OpenTime); err != nil {
		return nil, fmt.Errorf("openTime: %w", err)
	}
	if p.CloseTime, err = parseOptionalTime(r.CloseTime); err != nil {
		return nil, fmt.Errorf("closeTime: %w", err)
	}

	return p, nil
}

func parseOptionalTime(s *string) (*types.TimeString, error) {
	if s == nil {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func timeToString(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
