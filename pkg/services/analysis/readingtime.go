package analysis

import (
	"math"

	"github.com/text-tools/text-atlas/pkg/models/domain"
)

// EstimateReadingTime computes the estimated time to read wordCount
// words at speedWPM words per minute. Zero words means zero time; the
// speed is validated positive at analyzer construction.
func EstimateReadingTime(wordCount int, speedWPM float64) domain.ReadingTime {
	if wordCount == 0 {
		return domain.ReadingTime{}
	}

	minutes := float64(wordCount) / speedWPM
	return domain.ReadingTime{
		Minutes: minutes,
		Seconds: int(math.Round(minutes * 60)),
	}
}
