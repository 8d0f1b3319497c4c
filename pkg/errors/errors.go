package errors

import (
	stderrors "errors"
	"fmt"

	"rsiboard/pkg/errors/ecode"
)

// withCode attaches a business code to an error. The wrapped cause is kept
// for errors.Is / errors.As, the message is what the client sees.
type withCode struct {
	code int
	msg  string
	err  error
}

func (w *withCode) Error() string {
	if w.err != nil {
		return w.msg + ": " + w.err.Error()
	}
	return w.msg
}

func (w *withCode) Unwrap() error { return w.err }

// WithCode creates a coded error without a cause.
func WithCode(code int, format string, args ...interface{}) error {
	return &withCode{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message.
func Wrap(err error, code int, msg string) error {
	return &withCode{code: code, msg: msg, err: err}
}

// Wrapf annotates err with a code and formatted message.
func Wrapf(err error, code int, format string, args ...interface{}) error {
	return &withCode{code: code, msg: fmt.Sprintf(format, args...), err: err}
}

// Code extracts the business code from err, ecode.Unknown when none is set.
func Code(err error) int {
	if err == nil {
		return ecode.Success
	}
	var w *withCode
	if stderrors.As(err, &w) {
		return w.code
	}
	return ecode.Unknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code int) bool {
	return Code(err) == code
}

// DecodeErr resolves an error into the code/message pair the response layer
// sends back. A nil error decodes to Success.
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, ecode.Text(ecode.Success)
	}
	var w *withCode
	if stderrors.As(err, &w) {
		msg := w.msg
		if msg == "" {
			msg = ecode.Text(w.code)
		}
		return w.code, msg
	}
	return ecode.Unknown, err.Error()
}

// Is re-exports the stdlib matcher so callers need a single errors import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As re-exports the stdlib matcher.
func As(err error, target interface{}) bool { return stderrors.As(err, target) }
