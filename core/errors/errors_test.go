package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with ID",
			err:      &NotFoundError{Resource: "sequence", ID: "chr11"},
			wantMsg:  "sequence not found: chr11",
			wantBase: ErrNotFound,
		},
		{
			name:     "without ID",
			err:      &NotFoundError{Resource: "report element"},
			wantMsg:  "report element not found",
			wantBase: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("disk error")
		err := &NotFoundError{Resource: "report", ID: "hits.xml", Err: underlyingErr}
		if got := err.Error(); got != "report not found: hits.xml" {
			t.Errorf("Error() = %q, want %q", got, "report not found: hits.xml")
		}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with field",
			err:      &ValidationError{Field: "width", Message: "must not be negative"},
			wantMsg:  "validation failed for width: must not be negative",
			wantBase: ErrInvalidInput,
		},
		{
			name:     "with field and value",
			err:      &ValidationError{Field: "strand", Value: "x", Message: "must be one of +, -, *"},
			wantMsg:  `validation failed for strand "x": must be one of +, -, *`,
			wantBase: ErrInvalidInput,
		},
		{
			name:     "without field",
			err:      &ValidationError{Message: "invalid format"},
			wantMsg:  "validation failed: invalid format",
			wantBase: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ParseError
		wantMsg string
	}{
		{
			name:    "with path",
			err:     &ParseError{Format: "BLAST XML", Path: "hits.xml", Message: "missing BlastOutput"},
			wantMsg: "failed to parse BLAST XML at hits.xml: missing BlastOutput",
		},
		{
			name:    "without path",
			err:     &ParseError{Format: "region", Message: "bad strand"},
			wantMsg: "failed to parse region: bad strand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Errorf("errors.Is(err, ErrInvalidInput) = false, want true")
			}
		})
	}
}

func TestUnsupportedError(t *testing.T) {
	err := &UnsupportedError{
		Feature: "overlaps",
		Reason:  "lightweight collections do not support collection-wide overlap",
	}
	want := "unsupported overlaps: lightweight collections do not support collection-wide overlap"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("errors.Is(err, ErrUnsupported) = false, want true")
	}

	bare := &UnsupportedError{Feature: "frame"}
	if got := bare.Error(); got != "unsupported frame" {
		t.Errorf("Error() = %q, want %q", got, "unsupported frame")
	}
}

func TestIOError(t *testing.T) {
	underlying := fmt.Errorf("permission denied")
	err := &IOError{Operation: "open", Path: "report.xml.xz", Err: underlying}
	want := "failed to open report.xml.xz: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := err.Unwrap(); got != underlying {
		t.Errorf("Unwrap() = %v, want %v", got, underlying)
	}

	noPath := &IOError{Operation: "read", Err: underlying}
	if got := noPath.Error(); got != "failed to read: permission denied" {
		t.Errorf("Error() = %q, want %q", got, "failed to read: permission denied")
	}
}

func TestConstructors(t *testing.T) {
	if err := NewNotFound("entry", "abc"); err.Resource != "entry" || err.ID != "abc" {
		t.Errorf("NewNotFound fields = %q/%q, want entry/abc", err.Resource, err.ID)
	}
	if err := NewValidation("start", "out of order"); err.Field != "start" || err.Message != "out of order" {
		t.Errorf("NewValidation fields = %q/%q", err.Field, err.Message)
	}
	if err := NewUnsupported("overlaps", "use an interval tree"); err.Feature != "overlaps" {
		t.Errorf("NewUnsupported Feature = %q", err.Feature)
	}
	if err := NewParse("region", "", "empty input"); err.Format != "region" {
		t.Errorf("NewParse Format = %q", err.Format)
	}
	inner := fmt.Errorf("boom")
	if err := NewIO("read", "x", inner); err.Err != inner {
		t.Errorf("NewIO Err = %v, want %v", err.Err, inner)
	}
}

func TestWrap(t *testing.T) {
	if got := Wrap(nil, "context"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}

	base := ErrInvalidInput
	wrapped := Wrap(base, "building range")
	if wrapped == nil {
		t.Fatal("Wrap returned nil for non-nil error")
	}
	if want := "building range: invalid input"; wrapped.Error() != want {
		t.Errorf("Wrap().Error() = %q, want %q", wrapped.Error(), want)
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error does not match base with errors.Is")
	}
}

func TestWrapf(t *testing.T) {
	if got := Wrapf(nil, "entry %d", 3); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}

	wrapped := Wrapf(ErrInvalidInput, "entry %d", 3)
	if want := "entry 3: invalid input"; wrapped.Error() != want {
		t.Errorf("Wrapf().Error() = %q, want %q", wrapped.Error(), want)
	}
	if !Is(wrapped, ErrInvalidInput) {
		t.Error("Is(wrapped, ErrInvalidInput) = false, want true")
	}
}

func TestAs(t *testing.T) {
	var ve *ValidationError
	err := fmt.Errorf("entry 2: %w", NewValidation("strand", "must be one of +, -, *"))
	if !As(err, &ve) {
		t.Fatal("As failed to find ValidationError through wrapping")
	}
	if ve.Field != "strand" {
		t.Errorf("Field = %q, want %q", ve.Field, "strand")
	}
}
