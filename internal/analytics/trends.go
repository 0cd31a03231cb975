package analytics

import (
	"slices"
	"strings"

	"github.com/adanyl0v/quicktask-analytics/internal/models"
)

type TrendPoint struct {
	Date           string `json:"date"`
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	CreatedTasks   int    `json:"createdTasks"`
}

// ComputeTrends buckets tasks by their event date and returns the buckets in
// ascending date order. A completed task is dated by UpdatedAt when it has
// one, every other task by CreatedAt. Tasks whose event date is missing or
// unparseable are skipped.
//
// CreatedTasks counts only the bucket members whose CreatedAt falls into the
// same bucket as their event date.
func ComputeTrends(tasks []models.Task, groupBy GroupBy) []TrendPoint {
	buckets := make(map[string]*TrendPoint)
	for i := range tasks {
		task := &tasks[i]

		eventAt, err := NormalizeTimestamp(eventTimestamp(task))
		if err != nil {
			continue
		}
		key := BucketKey(eventAt, groupBy)

		point, ok := buckets[key]
		if !ok {
			point = &TrendPoint{Date: key}
			buckets[key] = point
		}

		point.TotalTasks++
		if task.IsCompleted() {
			point.CompletedTasks++
		}

		createdAt, err := NormalizeTimestamp(task.CreatedAt)
		if err != nil {
			continue
		}
		if BucketKey(createdAt, groupBy) == key {
			point.CreatedTasks++
		}
	}

	trends := make([]TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		trends = append(trends, *point)
	}
	slices.SortFunc(trends, func(a, b TrendPoint) int {
		return strings.Compare(a.Date, b.Date)
	})
	return trends
}

func eventTimestamp(task *models.Task) models.Timestamp {
	if task.IsCompleted() && task.UpdatedAt.IsPresent() {
		return task.UpdatedAt
	}
	return task.CreatedAt
}
