package filesystem

// Observer records retry metrics. Implementations are provided by the metrics
// package to break the import cycle between filesystem and metrics.
type Observer interface {
	// operation is the retried call: "stat" or "open".
	ObserveRetryAttempt(operation string)
	ObserveRetrySuccess(operation string)
	ObserveRetryFailure(operation string)
	ObserveStaleError(operation string)
}

type nopObserver struct{}

func (nopObserver) ObserveRetryAttempt(string) {}
func (nopObserver) ObserveRetrySuccess(string) {}
func (nopObserver) ObserveRetryFailure(string) {}
func (nopObserver) ObserveStaleError(string)   {}

// observer is a nil-safe accessor for the config's observer.
func (c *RetryConfig) observer() Observer {
	if c.Observer == nil {
		return nopObserver{}
	}
	return c.Observer
}
