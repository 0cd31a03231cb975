package services

import (
	"context"
	"errors"

	"github.com/adanyl0v/quicktask-analytics/internal/analytics"
)

var (
	ErrInvalidIdentifier = errors.New("invalid user id format")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInternal          = errors.New("internal error")
)

const (
	MessageNoTasks          = "No tasks found for this user"
	MessageNoParseableDates = "No tasks with parseable dates found for this user"
)

type AnalyticsService interface {
	// GetUserStats returns completion, priority and status statistics
	// over every task of the user.
	//
	// It returns ErrInvalidIdentifier before touching the store if userID
	// is not a valid object id. Store failures are returned wrapped in
	// ErrInternal and keep storage.ErrUnavailable or storage.ErrTimeout
	// in their chain.
	GetUserStats(ctx context.Context, userID string) (*UserStats, error)

	// GetProductivityAnalysis groups the tasks of the user by day or ISO
	// week. groupBy must be "day" or "week"; callers choose the default.
	//
	// It returns ErrInvalidIdentifier or ErrInvalidArgument before
	// touching the store, and wraps store failures like GetUserStats.
	GetProductivityAnalysis(ctx context.Context, userID, groupBy string) (*ProductivityAnalysis, error)
}

type UserStats struct {
	UserID string `json:"userId"`
	analytics.Stats
}

type ProductivityAnalysis struct {
	UserID          string                 `json:"userId"`
	GroupBy         analytics.GroupBy      `json:"groupBy"`
	Trends          []analytics.TrendPoint `json:"trends"`
	TotalDataPoints int                    `json:"totalDataPoints"`
	// Message explains an empty Trends list.
	Message string `json:"message,omitempty"`
}
