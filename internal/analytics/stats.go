// Package analytics reduces a snapshot of task records into completion
// statistics and productivity trends.
package analytics

import (
	"math"

	"github.com/adanyl0v/quicktask-analytics/internal/models"
)

type PriorityDistribution struct {
	Low  int `json:"Low"`
	Med  int `json:"Med"`
	High int `json:"High"`
}

type StatusDistribution struct {
	Todo       int `json:"Todo"`
	InProgress int `json:"In Progress"`
	Completed  int `json:"Completed"`
}

type Stats struct {
	TotalTasks           int                  `json:"totalTasks"`
	CompletedTasks       int                  `json:"completedTasks"`
	CompletionPercentage float64              `json:"completionPercentage"`
	PriorityDistribution PriorityDistribution `json:"priorityDistribution"`
	StatusDistribution   StatusDistribution   `json:"statusDistribution"`
}

// ComputeStats counts tasks by completion, priority and status. Values
// outside the known priorities and statuses count toward TotalTasks only.
func ComputeStats(tasks []models.Task) Stats {
	if len(tasks) == 0 {
		return Stats{}
	}

	stats := Stats{TotalTasks: len(tasks)}
	for i := range tasks {
		task := &tasks[i]
		if task.IsCompleted() {
			stats.CompletedTasks++
		}

		switch task.PriorityOrDefault() {
		case models.PriorityLow:
			stats.PriorityDistribution.Low++
		case models.PriorityMed:
			stats.PriorityDistribution.Med++
		case models.PriorityHigh:
			stats.PriorityDistribution.High++
		}

		switch task.StatusOrDefault() {
		case models.StatusTodo:
			stats.StatusDistribution.Todo++
		case models.StatusInProgress:
			stats.StatusDistribution.InProgress++
		case models.StatusCompleted:
			stats.StatusDistribution.Completed++
		}
	}

	stats.CompletionPercentage = percentage(stats.CompletedTasks, stats.TotalTasks)
	return stats
}

// percentage returns part/total*100 rounded to two decimal places.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*100*100) / 100
}
