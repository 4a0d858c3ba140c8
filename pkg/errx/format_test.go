package errx

import (
	"errors"
	"strings"
	"testing"
)

func TestFormat_UserString(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := New(KindNetwork, "test")
		if UserString(err) != "test" {
			t.Errorf("UserString(err) = %q, want %q", UserString(err), "test")
		}
	})

	t.Run("without message, with description", func(t *testing.T) {
		err := New(KindNetwork, "")
		if UserString(err) != "Network failure" {
			t.Errorf("UserString(err) = %q, want %q", UserString(err), "Network failure")
		}
	})

	t.Run("with nil error", func(t *testing.T) {
		if UserString(nil) != "" {
			t.Errorf("UserString(nil) = %q, want empty string", UserString(nil))
		}
	})

	t.Run("with non-errx error", func(t *testing.T) {
		err := errors.New("standard error")
		if UserString(err) != "standard error" {
			t.Errorf("UserString(err) = %q, want %q", UserString(err), "standard error")
		}
	})
}

func TestFormat_IsError(t *testing.T) {
	t.Run("with errx.Error", func(t *testing.T) {
		err := New(KindNetwork, "test")
		if !IsError(err) {
			t.Errorf("IsError(err) = %v, want %v", IsError(err), true)
		}
	})
	t.Run("with non-errx.Error", func(t *testing.T) {
		err := errors.New("test")
		if IsError(err) {
			t.Errorf("IsError(err) = %v, want %v", IsError(err), false)
		}
	})
	t.Run("with nil error", func(t *testing.T) {
		if IsError(nil) {
			t.Errorf("IsError(nil) = %v, want %v", IsError(nil), false)
		}
	})
}

func TestFormat_DebugString(t *testing.T) {
	t.Run("with errx.Error", func(t *testing.T) {
		err := New(KindNetwork, "test")
		got := DebugString(err)
		want := "1: *errx.Error: test | kind=NetworkError | exit_code=2 | message=\"test\""
		if got != want {
			t.Errorf("DebugString(err) = %q, want %q", got, want)
		}
	})
	t.Run("with context", func(t *testing.T) {
		err := New(KindNetwork, "test").WithContext("url", "a").WithContext("attempt", 2)
		got := DebugString(err)
		if !strings.Contains(got, "context={attempt=2, url=a}") {
			t.Errorf("DebugString(err) = %q, want sorted context listing", got)
		}
	})
	t.Run("with wrapped cause", func(t *testing.T) {
		cause := errors.New("dial tcp: timeout")
		err := Wrap(KindNetwork, "failed to reach registry", cause)
		got := DebugString(err)
		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("DebugString(err) has %d lines, want 2: %q", len(lines), got)
		}
		if !strings.Contains(lines[1], "dial tcp: timeout") {
			t.Errorf("DebugString(err) second line = %q, want cause message", lines[1])
		}
	})
	t.Run("with nil error", func(t *testing.T) {
		if DebugString(nil) != "" {
			t.Errorf("DebugString(nil) = %q, want empty string", DebugString(nil))
		}
	})
	t.Run("with non-errx error", func(t *testing.T) {
		got := DebugString(errors.New("standard"))
		if !strings.Contains(got, "standard") {
			t.Errorf("DebugString(err) = %q, want to contain %q", got, "standard")
		}
	})
}
