// Package mongodb reads task documents from a MongoDB collection.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adanyl0v/quicktask-analytics/internal/models"
	"github.com/adanyl0v/quicktask-analytics/internal/storage"
)

// Every field is decoded raw: documents written by different clients store
// timestamps as dates, strings or numbers.
type taskDocument struct {
	ID        bson.RawValue `bson:"_id"`
	UserID    bson.RawValue `bson:"userId"`
	Status    bson.RawValue `bson:"status"`
	Priority  bson.RawValue `bson:"priority"`
	CreatedAt bson.RawValue `bson:"createdAt"`
	UpdatedAt bson.RawValue `bson:"updatedAt"`
}

type taskStoreImpl struct {
	logger     zerolog.Logger
	collection *mongo.Collection
}

func NewTaskStore(
	logger zerolog.Logger,
	collection *mongo.Collection,
) storage.TaskStore {
	return &taskStoreImpl{
		logger:     logger,
		collection: collection,
	}
}

func (s *taskStoreImpl) FetchTasksForUser(ctx context.Context, userID string) ([]models.Task, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("invalid user object id")
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	findOpts := options.Find().SetProjection(bson.M{
		"_id":       1,
		"userId":    1,
		"status":    1,
		"priority":  1,
		"createdAt": 1,
		"updatedAt": 1,
	})
	cursor, err := s.collection.Find(ctx, bson.M{"userId": userObjectID}, findOpts)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to find tasks by user id")
		return nil, classifyError(err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []taskDocument
	err = cursor.All(ctx, &docs)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to decode tasks")
		return nil, classifyError(err)
	}

	tasks := make([]models.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, doc.toModel(userID))
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", userID).
		Msg("selected tasks by user id")
	return tasks, nil
}

func (d taskDocument) toModel(userID string) models.Task {
	return models.Task{
		ID:        idFromRaw(d.ID),
		UserID:    userID,
		Status:    stringFromRaw(d.Status),
		Priority:  stringFromRaw(d.Priority),
		CreatedAt: timestampFromRaw(d.CreatedAt),
		UpdatedAt: timestampFromRaw(d.UpdatedAt),
	}
}

func idFromRaw(rv bson.RawValue) string {
	switch rv.Type {
	case bson.TypeObjectID:
		return rv.ObjectID().Hex()
	case bson.TypeString:
		return rv.StringValue()
	default:
		if rv.IsZero() {
			return ""
		}
		return rv.String()
	}
}

func stringFromRaw(rv bson.RawValue) *string {
	if rv.IsZero() {
		return nil
	}

	var s string
	switch rv.Type {
	case bson.TypeNull, bson.TypeUndefined:
		// An explicit null is not a missing field: it gets no default and
		// matches no status or priority.
		s = models.UnsetValue
	case bson.TypeString:
		s = rv.StringValue()
	default:
		// Kept so the task still counts toward the total, but it will
		// never match a known status or priority.
		s = rv.String()
	}
	return &s
}

func timestampFromRaw(rv bson.RawValue) models.Timestamp {
	if rv.IsZero() {
		return models.Timestamp{}
	}

	switch rv.Type {
	case bson.TypeNull, bson.TypeUndefined:
		return models.Timestamp{}
	case bson.TypeDateTime:
		return models.NativeTimestamp(rv.Time())
	case bson.TypeTimestamp:
		seconds, _ := rv.Timestamp()
		return models.NativeTimestamp(time.Unix(int64(seconds), 0))
	case bson.TypeString:
		return models.TextTimestamp(rv.StringValue())
	case bson.TypeInt32:
		return models.EpochTimestamp(float64(rv.Int32()))
	case bson.TypeInt64:
		return models.EpochTimestamp(float64(rv.Int64()))
	case bson.TypeDouble:
		return models.EpochTimestamp(rv.Double())
	default:
		return models.Timestamp{Kind: models.TimestampUnsupported}
	}
}

func classifyError(err error) error {
	switch {
	case mongo.IsNetworkError(err), errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	case mongo.IsTimeout(err):
		return fmt.Errorf("%w: %w", storage.ErrTimeout, err)
	default:
		return fmt.Errorf("failed to fetch tasks: %w", err)
	}
}
