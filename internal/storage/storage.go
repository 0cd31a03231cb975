// Package storage defines the read contract the analytics core consumes
// from a task store.
package storage

import (
	"context"
	"errors"

	"github.com/adanyl0v/quicktask-analytics/internal/models"
)

var (
	ErrUnavailable = errors.New("task store unavailable")
	ErrTimeout     = errors.New("task store timed out")
)

type TaskStore interface {
	// FetchTasksForUser returns every task owned by userID. An empty
	// result is not an error.
	//
	// It returns an error matching ErrUnavailable if the store cannot be
	// reached or ErrTimeout if the operation exceeded a limit.
	FetchTasksForUser(ctx context.Context, userID string) ([]models.Task, error)
}
