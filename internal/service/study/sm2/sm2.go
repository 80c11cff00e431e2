// Package sm2 implements the SM-2 spaced-repetition update rule.
// Everything here is pure: no I/O, no clock, no logger.
package sm2

import (
	"math"
	"time"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

const (
	// DefaultEaseFactor is the ease of a concept that has never been answered.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor the ease factor can never drop below.
	MinEaseFactor = 1.3

	firstInterval  = 1
	secondInterval = 6
)

// Params holds the tunable parts of the update rule.
type Params struct {
	DefaultEase float64
	MinEase     float64
}

// DefaultParams returns the classic SM-2 constants.
func DefaultParams() Params {
	return Params{
		DefaultEase: DefaultEaseFactor,
		MinEase:     MinEaseFactor,
	}
}

// Update applies one answer of the given quality to the record and returns the
// next record. A nil record is treated as a fresh one.
// Quality must be valid; callers validate it at the boundary.
func Update(params Params, record *domain.LearningRecord, quality domain.Quality, now time.Time) domain.LearningRecord {
	next := fresh(params)
	if record != nil {
		next = *record
	}

	if quality.IsPass() {
		switch next.Repetitions {
		case 0:
			next.Interval = firstInterval
		case 1:
			next.Interval = secondInterval
		default:
			next.Interval = int(math.Round(float64(next.Interval) * next.EaseFactor))
		}
		next.Repetitions++
	} else {
		next.Repetitions = 0
		next.Interval = firstInterval
	}

	next.EaseFactor = NextEase(params, next.EaseFactor, quality)
	next.LastReviewDate = now
	next.NextReviewDate = now.AddDate(0, 0, next.Interval)

	return next
}

// NextEase recomputes the ease factor for an answer of the given quality,
// floored at params.MinEase.
func NextEase(params Params, ease float64, quality domain.Quality) float64 {
	miss := float64(domain.QualityPerfect - quality)
	ease += 0.1 - miss*(0.08+miss*0.02)
	return math.Max(floor(params), ease)
}

func fresh(params Params) domain.LearningRecord {
	ease := params.DefaultEase
	if ease < floor(params) {
		ease = floor(params)
	}
	return domain.LearningRecord{
		EaseFactor:  ease,
		Interval:    0,
		Repetitions: 0,
	}
}

func floor(params Params) float64 {
	return math.Max(MinEaseFactor, params.MinEase)
}
