package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "user error", err: NewUserError("bad args"), want: ExitUserError},
		{name: "system error", err: NewSystemError("tool failed"), want: ExitSystemError},
		{name: "conflict error", err: NewConflictError("state mismatch"), want: ExitConflict},
		{name: "untyped error", err: errors.New("plain"), want: ExitUserError},
		{name: "wrapped exit error", err: wrap(NewSystemError("inner")), want: ExitSystemError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := GetExitCode(testCase.err); got != testCase.want {
				t.Errorf("GetExitCode() = %d, want %d", got, testCase.want)
			}
		})
	}
}

func wrap(err error) error {
	return &wrappedErr{inner: err}
}

type wrappedErr struct{ inner error }

func (w *wrappedErr) Error() string { return "wrapped: " + w.inner.Error() }
func (w *wrappedErr) Unwrap() error { return w.inner }

func TestExitErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewSystemErrorWithCause("outer", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestPrinterSuccessJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	if err := printer.Success(map[string]any{"message": "done", "count": 3}); err != nil {
		t.Fatalf("Success() unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["message"] != "done" {
		t.Errorf("message = %v, want done", decoded["message"])
	}
}

func TestPrinterSuccessHuman(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	if err := printer.Success(map[string]any{"message": "workspace saved"}); err != nil {
		t.Fatalf("Success() unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "workspace saved" {
		t.Errorf("human output = %q, want %q", got, "workspace saved")
	}
}

func TestPrinterErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewSystemError("push failed"))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["error"] != "push failed" {
		t.Errorf("error = %v, want push failed", decoded["error"])
	}
	if int(decoded["code"].(float64)) != ExitSystemError {
		t.Errorf("code = %v, want %d", decoded["code"], ExitSystemError)
	}
}

func TestPrinterErrorHumanGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(NewUserError("unknown backend"))

	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "unknown backend") {
		t.Errorf("stderr = %q, want it to contain the message", errOut.String())
	}
}

func TestPrinterTable(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table([]string{"NAME", "AVAILABLE"}, [][]string{
		{"git", "yes"},
		{"mercurial", "no"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("table lines = %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[2], "mercurial") {
		t.Errorf("row = %q, want it to start with backend name", lines[2])
	}
}
