package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusTodo       = "Todo"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

const (
	PriorityLow  = "Low"
	PriorityMed  = "Med"
	PriorityHigh = "High"
)

// UnsetValue stands for a status or priority that is stored but null. It is
// never a valid status or priority.
const UnsetValue = ""

// Task is a task record as read from the store. Status and Priority are nil
// when the stored document has no such field, and point to UnsetValue when
// the field is stored as null.
type Task struct {
	ID        string
	UserID    string
	Status    *string
	Priority  *string
	CreatedAt Timestamp
	UpdatedAt Timestamp
}

// StatusOrDefault returns the task status, or StatusTodo if it is missing.
func (t *Task) StatusOrDefault() string {
	if t.Status == nil {
		return StatusTodo
	}
	return *t.Status
}

// PriorityOrDefault returns the task priority, or PriorityMed if it is missing.
func (t *Task) PriorityOrDefault() string {
	if t.Priority == nil {
		return PriorityMed
	}
	return *t.Priority
}

func (t *Task) IsCompleted() bool {
	return t.Status != nil && *t.Status == StatusCompleted
}

type TimestampKind uint8

const (
	TimestampAbsent TimestampKind = iota
	TimestampNative
	TimestampText
	TimestampEpoch
	TimestampUnsupported
)

// Timestamp keeps a lifecycle timestamp in the representation it was stored
// with. Only the field matching Kind is meaningful.
type Timestamp struct {
	Kind  TimestampKind
	Time  time.Time
	Text  string
	Epoch float64
}

func NativeTimestamp(t time.Time) Timestamp {
	return Timestamp{Kind: TimestampNative, Time: t}
}

// TextTimestamp treats an empty string as an absent timestamp.
func TextTimestamp(s string) Timestamp {
	if s == "" {
		return Timestamp{}
	}
	return Timestamp{Kind: TimestampText, Text: s}
}

func EpochTimestamp(seconds float64) Timestamp {
	return Timestamp{Kind: TimestampEpoch, Epoch: seconds}
}

func (ts Timestamp) IsPresent() bool {
	return ts.Kind != TimestampAbsent
}

// IsValidUserID reports whether id is a 24-character hex object id.
func IsValidUserID(id string) bool {
	return primitive.IsValidObjectID(id)
}
