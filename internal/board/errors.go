package board

import "fmt"

// Code identifies the kind of a board failure.
type Code string

const (
	CodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"
	CodeEmptySource     Code = "EMPTY_SOURCE"
	CodeIllegalRun      Code = "ILLEGAL_RUN"
	CodeInvalidDeckSize Code = "INVALID_DECK_SIZE"
	CodeInvalidMove     Code = "INVALID_MOVE"
)

// Error is the board error type. Every failure the board reports is an
// *Error; match on kind with errors.Is against the sentinels below.
type Error struct {
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrIndexOutOfRange = &Error{Code: CodeIndexOutOfRange, Message: "index out of range"}
	ErrEmptySource     = &Error{Code: CodeEmptySource, Message: "source stack is empty"}
	ErrIllegalRun      = &Error{Code: CodeIllegalRun, Message: "illegal run"}
	ErrInvalidDeckSize = &Error{Code: CodeInvalidDeckSize, Message: "invalid deck size"}
	ErrInvalidMove     = &Error{Code: CodeInvalidMove, Message: "invalid move"}
)

func errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
