package codegen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgumentType = errors.New("invalid argument type")
	ErrUnsupportedLineType = errors.New("unsupported line type")
	ErrRenderableContract  = errors.New("renderable failed to render")
	ErrIndexOutOfRange     = errors.New("line index out of range")
)

// InvalidArgumentTypeError is returned by SetBody for values that are
// neither a string nor a sequence of lines.
type InvalidArgumentTypeError struct {
	Value    interface{}
	Accepted []string
}

func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf(
		"invalid body type %T, expected one of: %s",
		e.Value,
		strings.Join(e.Accepted, ", "))
}

func (e *InvalidArgumentTypeError) Unwrap() error {
	return ErrInvalidArgumentType
}

// UnsupportedLineTypeError is returned by Render when an entry is neither
// text nor renderable.
type UnsupportedLineTypeError struct {
	Index int
	Value interface{}
}

func (e *UnsupportedLineTypeError) Error() string {
	return fmt.Sprintf("line %d: unsupported line object type %T", e.Index, e.Value)
}

func (e *UnsupportedLineTypeError) Unwrap() error {
	return ErrUnsupportedLineType
}

// RenderableContractError is returned by Render when a renderable entry is
// nil or its Render call fails. Err is nil for a nil renderable.
type RenderableContractError struct {
	Index int
	Err   error
}

func (e *RenderableContractError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("line %d: nil renderable", e.Index)
	}
	return fmt.Sprintf("line %d: %v", e.Index, e.Err)
}

func (e *RenderableContractError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRenderableContract}
	}
	return []error{ErrRenderableContract, e.Err}
}
