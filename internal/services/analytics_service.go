package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/quicktask-analytics/internal/analytics"
	"github.com/adanyl0v/quicktask-analytics/internal/metrics"
	"github.com/adanyl0v/quicktask-analytics/internal/models"
	"github.com/adanyl0v/quicktask-analytics/internal/storage"
)

const (
	operationUserStats            = "user_stats"
	operationProductivityAnalysis = "productivity_analysis"
)

// internalError reports a failure after validation. It matches both
// ErrInternal and the underlying cause.
type internalError struct {
	op  string
	err error
}

func (e *internalError) Error() string {
	return e.op + ": " + e.err.Error()
}

func (e *internalError) Unwrap() []error {
	return []error{ErrInternal, e.err}
}

type analyticsServiceImpl struct {
	logger zerolog.Logger
	store  storage.TaskStore
}

func NewAnalyticsService(
	logger zerolog.Logger,
	store storage.TaskStore,
) AnalyticsService {
	return &analyticsServiceImpl{
		logger: logger,
		store:  store,
	}
}

func (s *analyticsServiceImpl) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	if !models.IsValidUserID(userID) {
		s.logger.Warn().
			Str("user_id", userID).
			Msg("invalid user id")
		metrics.RecordError(operationUserStats, "invalid_identifier")
		return nil, ErrInvalidIdentifier
	}

	tasks, err := s.store.FetchTasksForUser(ctx, userID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to fetch tasks")
		metrics.RecordError(operationUserStats, storeErrorType(err))
		return nil, &internalError{op: "error fetching user stats", err: err}
	}
	metrics.RecordFetch(operationUserStats, len(tasks))
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", userID).
		Msg("fetched tasks")

	stats := analytics.ComputeStats(tasks)

	s.logger.Info().
		Str("user_id", userID).
		Int("total_tasks", stats.TotalTasks).
		Float64("completion_percentage", stats.CompletionPercentage).
		Msg("computed user stats")
	return &UserStats{
		UserID: userID,
		Stats:  stats,
	}, nil
}

func (s *analyticsServiceImpl) GetProductivityAnalysis(ctx context.Context, userID, groupBy string) (*ProductivityAnalysis, error) {
	if !models.IsValidUserID(userID) {
		s.logger.Warn().
			Str("user_id", userID).
			Msg("invalid user id")
		metrics.RecordError(operationProductivityAnalysis, "invalid_identifier")
		return nil, ErrInvalidIdentifier
	}

	group, err := analytics.ParseGroupBy(groupBy)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("group_by", groupBy).
			Msg("invalid group by")
		metrics.RecordError(operationProductivityAnalysis, "invalid_argument")
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	tasks, err := s.store.FetchTasksForUser(ctx, userID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to fetch tasks")
		metrics.RecordError(operationProductivityAnalysis, storeErrorType(err))
		return nil, &internalError{op: "error fetching productivity analysis", err: err}
	}
	metrics.RecordFetch(operationProductivityAnalysis, len(tasks))
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", userID).
		Msg("fetched tasks")

	result := &ProductivityAnalysis{
		UserID:  userID,
		GroupBy: group,
		Trends:  []analytics.TrendPoint{},
	}
	if len(tasks) == 0 {
		s.logger.Info().
			Str("user_id", userID).
			Msg("no tasks found")
		result.Message = MessageNoTasks
		return result, nil
	}

	result.Trends = analytics.ComputeTrends(tasks, group)
	result.TotalDataPoints = len(result.Trends)
	if result.TotalDataPoints == 0 {
		s.logger.Warn().
			Int("count", len(tasks)).
			Str("user_id", userID).
			Msg("no tasks with parseable dates")
		result.Message = MessageNoParseableDates
		return result, nil
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("group_by", string(group)).
		Int("data_points", result.TotalDataPoints).
		Msg("computed productivity analysis")
	return result, nil
}

func storeErrorType(err error) string {
	switch {
	case errors.Is(err, storage.ErrUnavailable):
		return "store_unavailable"
	case errors.Is(err, storage.ErrTimeout):
		return "store_timeout"
	default:
		return "internal"
	}
}
