package statistics

import (
	"time"

	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
)

// Thresholds for the punctuality category rule: inside the tolerance
// margin on both ends is perfect; within 30 minutes on both ends is still
// acceptable; anything beyond is unacceptable.
const acceptableDeviationMinutes = 30

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ClassifyPunch classifies a single punch against the resolved schedule
// policy. The second return value is false when the punch has no
// clock-out: such punches carry no classification.
func ClassifyPunch(p punch.Punch, policy SchedulePolicy) (statistics.Classification, bool) {
	if p.ClockOut == nil {
		return statistics.Classification{}, false
	}

	lateness := max(0, minutesOfDay(p.ClockIn)-minutesOfDay(policy.ExpectedClockIn))
	earlyDeparture := max(0, minutesOfDay(policy.ExpectedClockOut)-minutesOfDay(*p.ClockOut))

	onTimeIn := lateness <= policy.ToleranceMinutes
	onTimeOut := earlyDeparture <= policy.ToleranceMinutes

	var category statistics.PunctualityCategory
	switch {
	case onTimeIn && onTimeOut:
		category = statistics.CategoryPerfect
	case lateness <= acceptableDeviationMinutes && earlyDeparture <= acceptableDeviationMinutes:
		category = statistics.CategoryAcceptable
	default:
		category = statistics.CategoryUnacceptable
	}

	return statistics.Classification{
		Category:              category,
		LatenessMinutes:       lateness,
		EarlyDepartureMinutes: earlyDeparture,
		OnTimeIn:              onTimeIn,
		OnTimeOut:             onTimeOut,
	}, true
}
