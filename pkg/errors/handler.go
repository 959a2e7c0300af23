package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every report. It defaults to a quiet
	// LogHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the global handler. Pass nil to restore the
// default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends err to the global handler, stamping it if needed.
func Report(err *GuiError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// RecoverWindow reports a panic raised by a handler of the given window
// class, or outside any window when window is empty, and then, if after is set, passes the report to it so the caller
// can repair the window's state.
//
//	defer errors.RecoverWindow("window.Manager.HandleClick", "toolbar", nil)
func RecoverWindow(op, window string, after func(*PanicError)) {
	if r := recover(); r != nil {
		p := newPanic(op, window, r)
		ReportPanic(p)
		if after != nil {
			after(p)
		}
	}
}

func newPanic(op, window string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Window:     window,
		Value:      r,
		StackTrace: captureStack(5),
		Timestamp:  time.Now(),
	}
}

// Recorder is an ErrorHandler that keeps every report. Tests and tools
// install it to inspect faults after driving a manager.
type Recorder struct {
	mu     sync.Mutex
	errs   []*GuiError
	panics []*PanicError
}

// HandleError implements ErrorHandler.
func (r *Recorder) HandleError(err *GuiError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// HandlePanic implements ErrorHandler.
func (r *Recorder) HandlePanic(err *PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the errors recorded so far.
func (r *Recorder) Errors() []*GuiError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*GuiError(nil), r.errs...)
}

// Panics returns the panics recorded so far.
func (r *Recorder) Panics() []*PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*PanicError(nil), r.panics...)
}

// Count returns how many reports of kind were recorded. Panics count as
// KindPanic.
func (r *Recorder) Count(kind ErrorKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if kind == KindPanic {
		return len(r.panics)
	}
	n := 0
	for _, e := range r.errs {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// InWindow returns the reports, errors and panics alike, that name the
// window class.
func (r *Recorder) InWindow(class string) []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []error
	for _, e := range r.errs {
		if e.Window == class {
			out = append(out, e)
		}
	}
	for _, p := range r.panics {
		if p.Window == class {
			out = append(out, p)
		}
	}
	return out
}

// CaptureStack returns the caller's call stack as a string.
func CaptureStack() string {
	return captureStack(3)
}

func captureStack(skip int) string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
