package pipeline

import "fmt"

// ConfigurationError reports an option the pipeline cannot be built with.
// It is returned from constructors and is fatal.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// EmptyInputWarning reports a record that produced no terms. It is never
// fatal; the record simply adds nothing to the statistics.
type EmptyInputWarning struct {
	Record string
	Source string
}

func (w *EmptyInputWarning) Error() string {
	return fmt.Sprintf("record %s in %s produced no terms", w.Record, w.Source)
}
