package payment

import "time"

// Schedule picks the delay before the next attempt. Tiers are evaluated in order:
// short up to ShortUntil attempts, normal up to NormalUntil, slow once
// SlowAfterNotFound consecutive "not paid yet" answers were seen, final otherwise.
type Schedule struct {
	Short             time.Duration
	Normal            time.Duration
	Slow              time.Duration
	Final             time.Duration
	ShortUntil        int
	NormalUntil       int
	SlowAfterNotFound int
}

func DefaultSchedule() Schedule {
	return Schedule{
		Short:             10 * time.Second,
		Normal:            30 * time.Second,
		Slow:              60 * time.Second,
		Final:             120 * time.Second,
		ShortUntil:        3,
		NormalUntil:       8,
		SlowAfterNotFound: 5,
	}
}

func (s Schedule) Next(attemptsMade, consecutiveNotFound int) time.Duration {
	switch {
	case attemptsMade <= s.ShortUntil:
		return s.Short
	case attemptsMade <= s.NormalUntil:
		return s.Normal
	case consecutiveNotFound >= s.SlowAfterNotFound:
		return s.Slow
	default:
		return s.Final
	}
}

// Initial is the delay before the first attempt of a non-immediate session.
func (s Schedule) Initial() time.Duration {
	return s.Short
}
