package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/quicktask-analytics/internal/models"
)

func at(year int, month time.Month, day, hour int) models.Timestamp {
	return models.NativeTimestamp(time.Date(year, month, day, hour, 0, 0, 0, time.UTC))
}

func datedTask(status string, createdAt, updatedAt models.Timestamp) models.Task {
	task := newTask(status, models.PriorityMed)
	task.CreatedAt = createdAt
	task.UpdatedAt = updatedAt
	return task
}

func TestComputeTrends_CompletedTaskMovesToUpdateDay(t *testing.T) {
	tasks := []models.Task{
		datedTask(models.StatusTodo, at(2024, 1, 10, 9), at(2024, 1, 10, 9)),
		datedTask(models.StatusCompleted, at(2024, 1, 10, 10), at(2024, 1, 11, 15)),
	}

	trends := ComputeTrends(tasks, GroupByDay)

	assert.Equal(t, []TrendPoint{
		{Date: "2024-01-10", TotalTasks: 1, CompletedTasks: 0, CreatedTasks: 1},
		{Date: "2024-01-11", TotalTasks: 1, CompletedTasks: 1, CreatedTasks: 0},
	}, trends)
}

func TestComputeTrends_WeekGroupsOnMonday(t *testing.T) {
	tasks := []models.Task{
		// Wednesday, created and completed the same week.
		datedTask(models.StatusCompleted, at(2024, 1, 8, 9), at(2024, 1, 10, 9)),
		// Sunday of the same week.
		datedTask(models.StatusTodo, at(2024, 1, 14, 22), models.Timestamp{}),
		// Following Monday.
		datedTask(models.StatusInProgress, at(2024, 1, 15, 0), models.Timestamp{}),
	}

	trends := ComputeTrends(tasks, GroupByWeek)

	assert.Equal(t, []TrendPoint{
		{Date: "2024-01-08", TotalTasks: 2, CompletedTasks: 1, CreatedTasks: 2},
		{Date: "2024-01-15", TotalTasks: 1, CompletedTasks: 0, CreatedTasks: 1},
	}, trends)
}

func TestComputeTrends_CompletedWithoutUpdateUsesCreation(t *testing.T) {
	tasks := []models.Task{
		datedTask(models.StatusCompleted, at(2024, 2, 1, 9), models.Timestamp{}),
	}

	trends := ComputeTrends(tasks, GroupByDay)

	assert.Equal(t, []TrendPoint{
		{Date: "2024-02-01", TotalTasks: 1, CompletedTasks: 1, CreatedTasks: 1},
	}, trends)
}

func TestComputeTrends_UpdateIgnoredForOpenTasks(t *testing.T) {
	tasks := []models.Task{
		datedTask(models.StatusInProgress, at(2024, 2, 1, 9), at(2024, 2, 5, 9)),
	}

	trends := ComputeTrends(tasks, GroupByDay)

	require.Len(t, trends, 1)
	assert.Equal(t, "2024-02-01", trends[0].Date)
}

func TestComputeTrends_SkipsTasksWithoutUsableEventDate(t *testing.T) {
	tasks := []models.Task{
		datedTask(models.StatusTodo, models.Timestamp{}, models.Timestamp{}),
		datedTask(models.StatusTodo, models.TextTimestamp("not a date"), models.Timestamp{}),
		datedTask(models.StatusCompleted, at(2024, 3, 1, 9), models.TextTimestamp("not a date")),
		{ID: "no status or dates"},
	}

	trends := ComputeTrends(tasks, GroupByDay)

	assert.NotNil(t, trends)
	assert.Empty(t, trends)
}

func TestComputeTrends_UnparseableCreationOnlySkipsCreatedCount(t *testing.T) {
	tasks := []models.Task{
		datedTask(models.StatusCompleted, models.TextTimestamp("garbage"), at(2024, 3, 2, 9)),
		datedTask(models.StatusCompleted, models.Timestamp{}, at(2024, 3, 2, 10)),
	}

	trends := ComputeTrends(tasks, GroupByDay)

	assert.Equal(t, []TrendPoint{
		{Date: "2024-03-02", TotalTasks: 2, CompletedTasks: 2, CreatedTasks: 0},
	}, trends)
}

func TestComputeTrends_MixedRepresentations(t *testing.T) {
	tasks := []models.Task{
		datedTask(models.StatusTodo, models.TextTimestamp("2024-01-10T08:00:00Z"), models.Timestamp{}),
		datedTask(models.StatusTodo, models.EpochTimestamp(1704844800), models.Timestamp{}),
		datedTask(models.StatusTodo, at(2024, 1, 10, 20), models.Timestamp{}),
	}

	trends := ComputeTrends(tasks, GroupByDay)

	assert.Equal(t, []TrendPoint{
		{Date: "2024-01-10", TotalTasks: 3, CompletedTasks: 0, CreatedTasks: 3},
	}, trends)
}

func TestComputeTrends_SortedAndUnique(t *testing.T) {
	var tasks []models.Task
	for _, day := range []int{20, 3, 15, 3, 28, 1, 15} {
		tasks = append(tasks, datedTask(models.StatusTodo, at(2024, 5, day, 12), models.Timestamp{}))
	}

	trends := ComputeTrends(tasks, GroupByDay)

	require.Len(t, trends, 5)
	for i := 1; i < len(trends); i++ {
		assert.Less(t, trends[i-1].Date, trends[i].Date)
	}
	assert.Equal(t, 2, trends[1].TotalTasks)
}

func TestComputeTrends_Idempotent(t *testing.T) {
	tasks := []models.Task{
		datedTask(models.StatusCompleted, at(2024, 1, 1, 9), at(2024, 1, 9, 9)),
		datedTask(models.StatusTodo, at(2024, 1, 3, 9), models.Timestamp{}),
		datedTask(models.StatusTodo, models.TextTimestamp("2024-01-09"), models.Timestamp{}),
	}

	assert.Equal(t, ComputeTrends(tasks, GroupByWeek), ComputeTrends(tasks, GroupByWeek))
	assert.Equal(t, ComputeTrends(tasks, GroupByDay), ComputeTrends(tasks, GroupByDay))
}
