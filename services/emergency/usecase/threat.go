package usecase

import (
	"math"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

const (
	defaultThreatLevel = 5
	nightThreatBonus   = 2
)

// estimateThreatLevel derives a 1..10 severity from the client's safety
// assessment. Without a score it falls back to a time-of-day heuristic:
// night hours (20:00-06:59) raise the default by two.
func estimateThreatLevel(assessment *models.SafetyAssessment, now time.Time) int {
	if assessment != nil && assessment.SafetyScore != nil {
		score := *assessment.SafetyScore
		if score < 0 || score > 100 || math.IsNaN(score) {
			return defaultThreatLevel
		}
		level := int(math.Ceil((100 - score) / 10))
		return clampThreat(level)
	}

	level := defaultThreatLevel
	hour := now.Hour()
	if hour >= 20 || hour <= 6 {
		level += nightThreatBonus
	}
	return clampThreat(level)
}

func clampThreat(level int) int {
	if level < 1 {
		return 1
	}
	if level > 10 {
		return 10
	}
	return level
}
