package models

import "time"

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type LoginFailure struct {
	AttemptsRemaining int `json:"attempts_remaining"`
	LockedMinutes     int `json:"locked_minutes,omitempty"`
}

type OrderHistory struct {
	Range   string        `json:"range"`
	From    *time.Time    `json:"from,omitempty"`
	To      *time.Time    `json:"to,omitempty"`
	Orders  []OrderRecord `json:"orders"`
	Count   int           `json:"count"`
	Revenue Cents         `json:"revenue"`
}

type OpeningStatus struct {
	IsOpen       bool   `json:"is_open"`
	IsClosedDay  bool   `json:"is_closed_day"`
	CurrentHours string `json:"current_hours"`
	NextOpening  string `json:"next_opening,omitempty"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationLinks struct {
	Self string `json:"self"`
	Next string `json:"next,omitempty"`
	Prev string `json:"prev,omitempty"`
}

type HATEOASResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    interface{}     `json:"data"`
	Meta    PaginationMeta  `json:"meta"`
	Links   PaginationLinks `json:"links"`
}
