package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"doener-shop/models"
	"doener-shop/repositories"
)

func TestParseRange(t *testing.T) {
	now := shopTime(8, 15, 30)
	day := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 0, 0, 0, 0, shopZone) }

	tests := []struct {
		kind, start, end string
		from, to         time.Time
	}{
		{RangeToday, "", "", day(time.May, 8), day(time.May, 9)},
		{RangeWeek, "", "", day(time.May, 6), day(time.May, 13)},
		{RangeMonth, "", "", day(time.May, 1), day(time.June, 1)},
		{RangeYear, "", "", day(time.January, 1), time.Date(2025, time.January, 1, 0, 0, 0, 0, shopZone)},
		{RangeCustom, "2024-04-30", "2024-05-02", day(time.April, 30), day(time.May, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			r, err := ParseRange(tt.kind, tt.start, tt.end, now, shopZone)
			if err != nil {
				t.Fatal(err)
			}
			if !r.Filter.From.Equal(tt.from) || !r.Filter.To.Equal(tt.to) {
				t.Fatalf("range = %v..%v, want %v..%v", r.Filter.From, r.Filter.To, tt.from, tt.to)
			}
		})
	}
}

func TestParseRangeSundayBelongsToPreviousWeek(t *testing.T) {
	r, err := ParseRange(RangeWeek, "", "", shopTime(12, 20, 0), shopZone)
	if err != nil {
		t.Fatal(err)
	}
	if r.Filter.From.Day() != 6 {
		t.Fatalf("week of sunday starts %v", r.Filter.From)
	}
}

func TestParseRangeErrors(t *testing.T) {
	now := shopTime(8, 12, 0)

	all, err := ParseRange("", "", "", now, shopZone)
	if err != nil || all.Kind != RangeAll || all.Filter.From != nil {
		t.Fatalf("default range = %+v, %v", all, err)
	}

	_, err = ParseRange("decade", "", "", now, shopZone)
	wantValidation(t, err, "range")

	_, err = ParseRange(RangeCustom, "08.05.2024", "2024-05-09", now, shopZone)
	wantValidation(t, err, "start_date")

	_, err = ParseRange(RangeCustom, "2024-05-09", "2024-05-08", now, shopZone)
	wantValidation(t, err, "end_date")
}

func TestHistoryListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryOrderRepository()
	for i, total := range []models.Cents{1250, 3000, 990} {
		order := &models.OrderRecord{Total: total, CreatedAt: shopTime(6+i, 18, 0)}
		if err := repo.Create(ctx, order); err != nil {
			t.Fatal(err)
		}
	}

	svc := NewHistoryService(repo)
	r, _ := ParseRange(RangeCustom, "2024-05-07", "2024-05-08", shopTime(8, 23, 0), shopZone)

	history, err := svc.List(ctx, r)
	if err != nil {
		t.Fatal(err)
	}
	if history.Count != 2 || history.Revenue != 3990 {
		t.Fatalf("history = %+v", history)
	}
	if !history.Orders[0].CreatedAt.After(history.Orders[1].CreatedAt) {
		t.Fatal("orders not newest first")
	}

	if err := svc.Delete(ctx, history.Orders[0].ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, history.Orders[0].ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
}
