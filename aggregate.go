package paramfetch

import "strings"

// AggregateError collects the per-file failures of one GetParams or
// CheckParams invocation. A failing file never aborts the others, so the
// aggregate preserves every failure for diagnosis.
type AggregateError struct {
	errs []error
}

func (e *AggregateError) Error() string {
	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = err.Error()
	}
	return "aggregated errors:\n" + strings.Join(msgs, "\n\n")
}

// Unwrap returns the per-file failures so errors.Is and errors.As see
// through the aggregate.
func (e *AggregateError) Unwrap() []error { return e.errs }
