package errors

import (
	"errors"
	"fmt"
)

var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

const cantPrefix = "can't"

// Collapse joins errs into one. It returns nil when every error is nil.
func Collapse(errs []error) error {
	return errors.Join(errs...)
}

func Error(msg string) error {
	return errors.New(msg)
}

func Errorf(msgFormat string, args ...any) error {
	return fmt.Errorf(msgFormat, args...)
}

// Fail reports an action that could not be done: "can't <whatFailed>".
func Fail(whatFailed string) error {
	return fmt.Errorf("%s %s", cantPrefix, whatFailed)
}

func Failf(whatFailedFormat string, args ...any) error {
	return fmt.Errorf(cantPrefix+" "+whatFailedFormat, args...)
}

// Wrap and its variants return nil for a nil err, so call results
// can be wrapped without checking them first.
func Wrap(err error, wrapper string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", wrapper, err)
}

func Wrapf(err error, wrapperFormat string, args ...any) error {
	if err == nil {
		return nil
	}
	wrapper := fmt.Sprintf(wrapperFormat, args...)
	return Wrap(err, wrapper)
}

// WrapFail prefixes err with the failed action, keeping it in the chain
// for Is, As, HasLabel and HasCode.
func WrapFail(err error, whatFailed string) error {
	if err == nil {
		return nil
	}
	return Wrapf(err, "%s %s", cantPrefix, whatFailed)
}

func WrapFailf(err error, whatFailedFormat string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrapf(err, cantPrefix+" "+whatFailedFormat, args...)
}
