package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/quicktask-analytics/internal/models"
	"github.com/adanyl0v/quicktask-analytics/internal/storage"
)

const testUserID = "65a1f0c2e4b0a1b2c3d4e5f6"

var taskColumns = []string{"id", "status", "priority", "created_at", "updated_at"}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestTaskStore_FetchTasksForUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id").
		WithArgs(testUserID).
		WillReturnRows(pgxmock.NewRows(taskColumns).
			AddRow("t1", strPtr(models.StatusCompleted), strPtr(models.PriorityHigh), timePtr(createdAt), timePtr(updatedAt)).
			AddRow("t2", nil, nil, timePtr(createdAt), nil).
			AddRow("t3", strPtr(models.StatusTodo), strPtr(models.PriorityLow), nil, nil))

	store := NewTaskStore(zerolog.Nop(), mock)
	tasks, err := store.FetchTasksForUser(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, models.Task{
		ID:        "t1",
		UserID:    testUserID,
		Status:    strPtr(models.StatusCompleted),
		Priority:  strPtr(models.PriorityHigh),
		CreatedAt: models.NativeTimestamp(createdAt),
		UpdatedAt: models.NativeTimestamp(updatedAt),
	}, tasks[0])

	assert.Nil(t, tasks[1].Status)
	assert.Nil(t, tasks[1].Priority)
	assert.True(t, tasks[1].CreatedAt.IsPresent())
	assert.False(t, tasks[1].UpdatedAt.IsPresent())

	assert.False(t, tasks[2].CreatedAt.IsPresent())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_FetchTasksForUser_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs(testUserID).
		WillReturnRows(pgxmock.NewRows(taskColumns))

	store := NewTaskStore(zerolog.Nop(), mock)
	tasks, err := store.FetchTasksForUser(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Empty(t, tasks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_FetchTasksForUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "query canceled",
			err:     &pgconn.PgError{Code: pgerrcode.QueryCanceled},
			wantErr: storage.ErrTimeout,
		},
		{
			name:    "deadline exceeded",
			err:     context.DeadlineExceeded,
			wantErr: storage.ErrTimeout,
		},
		{
			name:    "connection failure",
			err:     &pgconn.PgError{Code: pgerrcode.ConnectionFailure},
			wantErr: storage.ErrUnavailable,
		},
		{
			name:    "admin shutdown",
			err:     &pgconn.PgError{Code: pgerrcode.AdminShutdown},
			wantErr: storage.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectQuery("SELECT id").
				WithArgs(testUserID).
				WillReturnError(tt.err)

			store := NewTaskStore(zerolog.Nop(), mock)
			_, err = store.FetchTasksForUser(context.Background(), testUserID)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTaskStore_FetchTasksForUser_UndefinedTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs(testUserID).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable, Message: `relation "tasks" does not exist`})

	store := NewTaskStore(zerolog.Nop(), mock)
	_, err = store.FetchTasksForUser(context.Background(), testUserID)

	require.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrTimeout) || errors.Is(err, storage.ErrUnavailable))
	assert.ErrorContains(t, err, "failed to fetch tasks")
}
