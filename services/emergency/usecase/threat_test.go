package usecase

import (
	"testing"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func scoreAssessment(score float64) *models.SafetyAssessment {
	return &models.SafetyAssessment{SafetyScore: &score}
}

func TestEstimateThreatLevel_FromScore(t *testing.T) {
	noon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		score float64
		want  int
	}{
		{"perfect safety", 100, 1},
		{"score 95", 95, 1},
		{"score 35", 35, 7},
		{"score 50", 50, 5},
		{"score 0", 0, 10},
		{"score 1", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimateThreatLevel(scoreAssessment(tt.score), noon))
		})
	}
}

func TestEstimateThreatLevel_Monotonic(t *testing.T) {
	noon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// A lower safety score never yields a lower threat level.
	prev := 11
	for score := 0.0; score <= 100; score += 5 {
		level := estimateThreatLevel(scoreAssessment(score), noon)
		assert.LessOrEqual(t, level, prev, "score %v", score)
		assert.GreaterOrEqual(t, level, 1)
		assert.LessOrEqual(t, level, 10)
		prev = level
	}
}

func TestEstimateThreatLevel_TimeOfDayFallback(t *testing.T) {
	day := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	night := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	earlyMorning := time.Date(2025, 6, 1, 4, 0, 0, 0, time.UTC)
	sevenAM := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, estimateThreatLevel(nil, day))
	assert.Equal(t, 7, estimateThreatLevel(nil, night))
	assert.Equal(t, 7, estimateThreatLevel(nil, earlyMorning))
	assert.Equal(t, 5, estimateThreatLevel(nil, sevenAM))

	// Assessment without a score falls through to the same heuristic.
	assert.Equal(t, 7, estimateThreatLevel(&models.SafetyAssessment{RiskLevel: "high"}, night))
}

func TestEstimateThreatLevel_UnexpectedInput(t *testing.T) {
	noon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, estimateThreatLevel(scoreAssessment(-10), noon))
	assert.Equal(t, 5, estimateThreatLevel(scoreAssessment(250), noon))
}
