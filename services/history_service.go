package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doener-shop/models"
	"doener-shop/repositories"
)

const (
	RangeToday  = "today"
	RangeWeek   = "week"
	RangeMonth  = "month"
	RangeYear   = "year"
	RangeCustom = "custom"
	RangeAll    = "all"

	dateLayout = "2006-01-02"
)

// OrderRange is a named history window; From/To follow OrderFilter semantics.
type OrderRange struct {
	Kind   string
	Filter repositories.OrderFilter
}

// ParseRange resolves a history window in the shop's local time. Weeks start
// on Monday; custom ranges include both end dates.
func ParseRange(kind, start, end string, now time.Time, loc *time.Location) (OrderRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	bounded := func(from, to time.Time) OrderRange {
		return OrderRange{Kind: kind, Filter: repositories.OrderFilter{From: &from, To: &to}}
	}

	switch kind {
	case "", RangeAll:
		return OrderRange{Kind: RangeAll}, nil
	case RangeToday:
		return bounded(day, day.AddDate(0, 0, 1)), nil
	case RangeWeek:
		offset := (int(day.Weekday()) + 6) % 7
		monday := day.AddDate(0, 0, -offset)
		return bounded(monday, monday.AddDate(0, 0, 7)), nil
	case RangeMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, loc)
		return bounded(first, first.AddDate(0, 1, 0)), nil
	case RangeYear:
		first := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return bounded(first, first.AddDate(1, 0, 0)), nil
	case RangeCustom:
		from, err := time.ParseInLocation(dateLayout, start, loc)
		if err != nil {
			return OrderRange{}, validationErr("start_date", "expected YYYY-MM-DD")
		}
		to, err := time.ParseInLocation(dateLayout, end, loc)
		if err != nil {
			return OrderRange{}, validationErr("end_date", "expected YYYY-MM-DD")
		}
		if to.Before(from) {
			return OrderRange{}, validationErr("end_date", "end date before start date")
		}
		return bounded(from, to.AddDate(0, 0, 1)), nil
	default:
		return OrderRange{}, validationErr("range", "unknown range %q", kind)
	}
}

type HistoryService struct {
	orders repositories.OrderRepository
}

func NewHistoryService(orders repositories.OrderRepository) *HistoryService {
	return &HistoryService{orders: orders}
}

// List returns matching orders newest first with their count and revenue.
func (s *HistoryService) List(ctx context.Context, r OrderRange) (models.OrderHistory, error) {
	orders, err := s.orders.List(ctx, r.Filter)
	if err != nil {
		return models.OrderHistory{}, fmt.Errorf("failed to list orders: %w", err)
	}

	history := models.OrderHistory{
		Range:  r.Kind,
		From:   r.Filter.From,
		To:     r.Filter.To,
		Orders: orders,
		Count:  len(orders),
	}
	if history.Orders == nil {
		history.Orders = []models.OrderRecord{}
	}
	for _, o := range orders {
		history.Revenue += o.Total
	}
	return history, nil
}

func (s *HistoryService) Delete(ctx context.Context, id string) error {
	err := s.orders.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrOrderNotFound
	}
	return err
}
