package nogo

import "github.com/pkg/errors"

// ProtocolError is a GTP-level failure: bad input the remote side sent us.
// It is reported with a "?" response and the session carries on.
type ProtocolError struct {
	msg string
}

func (e *ProtocolError) Error() string { return e.msg }

func newProtocolError(msg string) error { return &ProtocolError{msg: msg} }

var (
	errUnknownCommand   = newProtocolError("unknown command")
	errUnacceptableSize = newProtocolError("unacceptable size")
	errIllegalMove      = newProtocolError("illegal move")
	errCannotUndo       = newProtocolError("cannot undo")
)

// EngineError wraps a violated internal invariant, the kind of bug that
// should never happen given a well-formed board. Its cause is built with
// errors.New from github.com/pkg/errors, which records a stack trace, so the
// cause survives for logging even though the GTP reply only ever says
// "internal error".
type EngineError struct {
	cause error
}

func (e *EngineError) Error() string { return e.cause.Error() }
func (e *EngineError) Unwrap() error { return e.cause }

func newEngineError(msg string) error {
	return &EngineError{cause: errors.New(msg)}
}
