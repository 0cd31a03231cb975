// Package postgres reads task rows from a PostgreSQL table.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/quicktask-analytics/internal/models"
	"github.com/adanyl0v/quicktask-analytics/internal/storage"
)

// Querier is satisfied by *pgxpool.Pool and by pgxmock pools in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type taskStoreImpl struct {
	logger zerolog.Logger
	db     Querier
}

func NewTaskStore(
	logger zerolog.Logger,
	db Querier,
) storage.TaskStore {
	return &taskStoreImpl{
		logger: logger,
		db:     db,
	}
}

func (s *taskStoreImpl) FetchTasksForUser(ctx context.Context, userID string) ([]models.Task, error) {
	const selectTasksByUserIDQuery = `
SELECT id,
       status,
       priority,
       created_at,
       updated_at
FROM tasks
WHERE user_id = $1
`
	rows, err := s.db.Query(
		ctx,
		selectTasksByUserIDQuery,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select tasks by user id")
		return nil, classifyError(err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var (
			task      = models.Task{UserID: userID}
			createdAt *time.Time
			updatedAt *time.Time
		)
		err = rows.Scan(
			&task.ID,
			&task.Status,
			&task.Priority,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, classifyError(err)
		}

		if createdAt != nil {
			task.CreatedAt = models.NativeTimestamp(*createdAt)
		}
		if updatedAt != nil {
			task.UpdatedAt = models.NativeTimestamp(*updatedAt)
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", userID).
		Msg("selected tasks by user id")
	return tasks, nil
}

func classifyError(err error) error {
	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", storage.ErrTimeout, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.QueryCanceled:
			return fmt.Errorf("%w: %w", storage.ErrTimeout, err)
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code):
			return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
		}
	}
	return fmt.Errorf("failed to fetch tasks: %w", err)
}
