// internal/service/analytics.go
package service

import (
	"math"
	"time"

	"tracker/internal/models"
)

// CategoryStats computes the completion rate per category: 100 * completed /
// total, rounded to one decimal place. Categories only appear if they have at
// least one task; an empty task set yields an empty map. Pure function,
// recomputed on every dashboard render.
func CategoryStats(tasks []models.Task) map[string]float64 {
	total := make(map[string]int)
	completed := make(map[string]int)
	for _, t := range tasks {
		total[t.Category]++
		if t.Completed() {
			completed[t.Category]++
		}
	}

	stats := make(map[string]float64, len(total))
	for category, n := range total {
		rate := 100 * float64(completed[category]) / float64(n)
		stats[category] = math.Round(rate*10) / 10
	}
	return stats
}

// Streak counts the unbroken run of consecutive calendar days ending today on
// which at least one task was completed. A day counts once no matter how many
// tasks were completed on it. If nothing was completed today the streak is 0,
// regardless of earlier days.
func Streak(tasks []models.Task, today time.Time) int {
	dates := make(map[string]struct{})
	for _, t := range tasks {
		if t.Completed() && t.DateCompleted.Valid && t.DateCompleted.String != "" {
			dates[t.DateCompleted.String] = struct{}{}
		}
	}

	streak := 0
	day := today
	for {
		if _, ok := dates[day.Format(models.DateLayout)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
