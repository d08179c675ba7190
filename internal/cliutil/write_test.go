package cliutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %t\n", "userName", true)
	if got, want := buf.String(), "userName: true\n"; got != want {
		t.Errorf("Writef() = %q, want %q", got, want)
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	WriteLines(&buf, "user_name", "api_response")
	if got, want := buf.String(), "user_name\napi_response\n"; got != want {
		t.Errorf("WriteLines() = %q, want %q", got, want)
	}

	buf.Reset()
	WriteLines(&buf)
	if got := buf.String(); got != "" {
		t.Errorf("WriteLines() with no lines = %q, want empty", got)
	}
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	WriteError(&buf, errors.New("transcoding <stdin>: json parse error"))
	if got, want := buf.String(), "Error: transcoding <stdin>: json parse error\n"; got != want {
		t.Errorf("WriteError() = %q, want %q", got, want)
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	// Should not panic
	Writef(errorWriter{}, "This will fail")
}
