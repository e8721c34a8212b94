package errors

import "slices"

// WithLabels attaches backend classification labels to err.
// The result answers HasErrorLabel the same way mongo driver errors do,
// so labeled errors from any backend are classified uniformly.
func WithLabels(err error, labels ...string) error {
	if err == nil {
		return nil
	}
	return &labeledError{err: err, labels: labels}
}

// HasLabel reports whether any error in err's chain carries label.
func HasLabel(err error, label string) bool {
	for err != nil {
		if l, ok := err.(interface{ HasErrorLabel(string) bool }); ok && l.HasErrorLabel(label) {
			return true
		}

		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				if HasLabel(e, label) {
					return true
				}
			}
			return false
		}

		err = Unwrap(err)
	}
	return false
}

// HasCode reports whether any error in err's chain carries the server error code.
func HasCode(err error, code int) bool {
	for err != nil {
		if c, ok := err.(interface{ HasErrorCode(int) bool }); ok && c.HasErrorCode(code) {
			return true
		}

		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				if HasCode(e, code) {
					return true
				}
			}
			return false
		}

		err = Unwrap(err)
	}
	return false
}

type labeledError struct {
	err    error
	labels []string
}

func (e *labeledError) Error() string {
	return e.err.Error()
}

func (e *labeledError) Unwrap() error {
	return e.err
}

func (e *labeledError) HasErrorLabel(label string) bool {
	return slices.Contains(e.labels, label)
}
