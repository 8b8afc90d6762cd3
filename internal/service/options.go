package service

import "time"

// Option customizes service construction.
type Option func(*options)

type options struct {
	clock    func() time.Time
	observer UseCaseObserver
}

func defaultOptions() options {
	return options{
		clock:    time.Now,
		observer: NoopUseCaseObserver{},
	}
}

// WithClock overrides the current-date source. Tests use it to pin
// "today" for bare time commands and period cutoffs.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithObserver attaches a use-case observer.
func WithObserver(obs UseCaseObserver) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}
