// Package errors provides structured error handling for guikit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindTable indicates a malformed widget descriptor table.
	KindTable
	// KindLayout indicates a layout problem (clamped or degenerate geometry).
	KindLayout
	// KindDispatch indicates a failure while routing input or change events.
	KindDispatch
	// KindConfig indicates a configuration or string table loading error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindLayout:
		return "layout"
	case KindDispatch:
		return "dispatch"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// GuiError represents a structured error raised by the window system.
type GuiError struct {
	// Op is the operation that failed (e.g., "window.Manager.Open").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Window is the class of the window involved, if any.
	Window string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GuiError) Error() string {
	if e.Window != "" {
		return fmt.Sprintf("%s [%s] window=%s: %v", e.Op, e.Kind, e.Window, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GuiError) Unwrap() error {
	return e.Err
}

// TableError describes a malformed widget descriptor table.
// Index is the position of the offending part in the flat table, or -1 when
// the fault concerns the table as a whole (e.g., an unclosed container).
type TableError struct {
	Index  int
	Reason string
}

func (e *TableError) Error() string {
	if e.Index < 0 {
		return "widget table: " + e.Reason
	}
	return fmt.Sprintf("widget table part %d: %s", e.Index, e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "window.Manager.HandleClick").
	Op string
	// Window is the class of the window whose handler panicked, if any.
	Window string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Window != "" {
		return fmt.Sprintf("panic in %s window=%s: %v", e.Op, e.Window, e.Value)
	}
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the window system.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *GuiError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
