package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestGuiErrorString(t *testing.T) {
	err := &GuiError{
		Op:   "window.Manager.Open",
		Kind: KindTable,
		Err:  &TableError{Index: 3, Reason: "modifier without a widget"},
	}
	want := "window.Manager.Open [table]: widget table part 3: modifier without a widget"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestGuiErrorWithWindow(t *testing.T) {
	err := &GuiError{
		Op:     "window.Manager.NotifyChange",
		Kind:   KindDispatch,
		Window: "bottom-toolbar",
		Err:    stderrors.New("boom"),
	}
	if got := err.Error(); !strings.Contains(got, "window=bottom-toolbar") {
		t.Errorf("error string %q should contain window class", got)
	}
}

func TestGuiErrorUnwrap(t *testing.T) {
	inner := &TableError{Index: -1, Reason: "unclosed container"}
	err := &GuiError{Op: "widgets.Build", Kind: KindTable, Err: inner}

	var te *TableError
	if !stderrors.As(err, &te) {
		t.Fatal("expected errors.As to find the TableError")
	}
	if te.Error() != "widget table: unclosed container" {
		t.Errorf("TableError.Error() = %q", te.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindTable, "table"},
		{KindLayout, "layout"},
		{KindDispatch, "dispatch"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "window.Manager.HandleClick"
	if got, want := err.Error(), "panic in window.Manager.HandleClick: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Window = "quit"
	if got, want := err.Error(), "panic in window.Manager.HandleClick window=quit: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *GuiError
	handler := &testHandler{onError: func(err *GuiError) { captured = err }}

	old := DefaultHandler
	SetHandler(handler)
	defer SetHandler(old)

	Report(&GuiError{Op: "test.op", Kind: KindConfig, Err: stderrors.New("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	old := DefaultHandler
	SetHandler(handler)
	defer SetHandler(old)

	func() {
		defer RecoverWindow("test.recover", "", nil)
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverWindow(t *testing.T) {
	rec := &Recorder{}
	SetHandler(rec)
	defer SetHandler(nil)

	var repaired *PanicError
	func() {
		defer RecoverWindow("window.Manager.HandleClick", "toolbar", func(p *PanicError) { repaired = p })
		panic(42)
	}()

	panics := rec.Panics()
	if len(panics) != 1 {
		t.Fatalf("recorded %d panics, want 1", len(panics))
	}
	if repaired != panics[0] {
		t.Error("after should receive the reported panic")
	}
	if panics[0].Window != "toolbar" || panics[0].Value != 42 {
		t.Errorf("panic = %+v", panics[0])
	}
	if panics[0].StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestRecoverWindowWithoutPanic(t *testing.T) {
	rec := &Recorder{}
	SetHandler(rec)
	defer SetHandler(nil)

	called := false
	func() {
		defer RecoverWindow("window.Manager.NotifyChange", "quit", func(*PanicError) { called = true })
	}()
	if called || len(rec.Panics()) != 0 {
		t.Error("nothing should be reported without a panic")
	}
}

func TestRecorderCountAndWindow(t *testing.T) {
	rec := &Recorder{}
	SetHandler(rec)
	defer SetHandler(nil)

	Report(&GuiError{Op: "window.Manager.Open", Kind: KindLayout, Window: "quit", Err: stderrors.New("too big")})
	Report(&GuiError{Op: "window.Manager.Close", Kind: KindDispatch, Window: "toolbar", Err: stderrors.New("foreign")})
	Report(&GuiError{Op: "window.Manager.Open", Kind: KindLayout, Window: "toolbar", Err: stderrors.New("too big")})
	ReportPanic(&PanicError{Op: "window.Manager.HandleClick", Window: "quit", Value: "boom"})

	tests := []struct {
		kind ErrorKind
		want int
	}{
		{KindLayout, 2},
		{KindDispatch, 1},
		{KindConfig, 0},
		{KindPanic, 1},
	}
	for _, tt := range tests {
		if got := rec.Count(tt.kind); got != tt.want {
			t.Errorf("Count(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}
	if got := len(rec.InWindow("quit")); got != 2 {
		t.Errorf("InWindow(quit) has %d reports, want 2", got)
	}
	if got := len(rec.InWindow("bottom-toolbar")); got != 0 {
		t.Errorf("InWindow(bottom-toolbar) has %d reports, want 0", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Verbose: true, Out: &buf}
	h.HandleError(&GuiError{
		Op:         "config.Resolve",
		Kind:       KindConfig,
		Window:     "quit",
		Err:        stderrors.New("missing"),
		StackTrace: "frame",
	})
	out := buf.String()
	for _, want := range []string{"[guikit error] config.Resolve [config]", "window=quit", "missing", "Stack trace:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*GuiError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *GuiError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
