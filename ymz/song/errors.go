package song

import (
	"errors"
	"fmt"
)

var (
	ErrBadMagic      = errors.New("bad magic")
	ErrTruncated     = errors.New("truncated program")
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrBadOperand    = errors.New("bad operand")
)

// DecodeError reports where a program could not be decoded. Err is one of
// the sentinel errors of this package.
type DecodeError struct {
	Offset int
	Opcode Opcode
	Err    error
	Detail string
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
	if e.Offset >= HeaderSize {
		msg = fmt.Sprintf("offset %d (%s): %v", e.Offset, e.Opcode, e.Err)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(offset int, op Opcode, err error, format string, args ...any) *DecodeError {
	return &DecodeError{Offset: offset, Opcode: op, Err: err, Detail: fmt.Sprintf(format, args...)}
}
