package errors

import (
	"bytes"
	"fmt"
)

// Errors represents a list of errors; any non-nil Errors value represents a non-empty list.
// This invariant is maintained so that a client may simply compare an Errors value with nil
// to check for the absence of errors.
type Errors interface {
	error
	// Slice returns a non-empty slice of the underlying (non-nil) errors.
	Slice() []error
	// Len is always > 0. To check for existence of an error, compare the Errors with nil.
	Len() int
}

type errorSlice []error

func (m errorSlice) Slice() []error {
	return append([]error(nil), m...)
}

func (m errorSlice) Len() int {
	return len(m)
}

func (m errorSlice) Error() string {
	var b bytes.Buffer
	for i, err := range m {
		if i > 0 {
			fmt.Fprint(&b, "\n")
		}
		fmt.Fprint(&b, err)
	}
	return b.String()
}

// Append appends the given (possibly nil) error to the given (possibly nil) Errors.
// If the error is nil, it returns the given Errors unchanged.
func Append(errs Errors, err error) Errors {
	if err == nil {
		return errs
	}
	var slice errorSlice
	if errs != nil {
		slice = errorSlice(errs.Slice())
	}
	if multi, ok := err.(Errors); ok {
		return errorSlice(append(slice, multi.Slice()...))
	}
	return errorSlice(append(slice, err))
}

// Combine combines errors e & f into a single error
func Combine(e, f error) error {
	switch {
	case e == nil:
		return f
	case f == nil:
		return e
	}
	if multi, ok := e.(Errors); ok {
		return Append(multi, f)
	}
	return Append(errorSlice{e}, f)
}

// Defer is a helper method for deferring error-returning functions
func Defer(err *error, f func() error) {
	*err = Combine(*err, f())
}
