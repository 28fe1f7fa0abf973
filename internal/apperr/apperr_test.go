package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	err := New(CodeNotFound, "post not found")

	if CodeOf(err) != CodeNotFound {
		t.Errorf("CodeOf = %q, want %q", CodeOf(err), CodeNotFound)
	}

	// Wrapped further up the stack, the code must survive
	wrapped := fmt.Errorf("loading post: %w", err)
	if CodeOf(wrapped) != CodeNotFound {
		t.Errorf("CodeOf(wrapped) = %q, want %q", CodeOf(wrapped), CodeNotFound)
	}
}

func TestCodeOfUnknownError(t *testing.T) {
	err := errors.New("connection reset")
	if CodeOf(err) != CodeUpstreamFailure {
		t.Errorf("CodeOf = %q, want %q", CodeOf(err), CodeUpstreamFailure)
	}
}

func TestMessageHidesBackendDetail(t *testing.T) {
	cause := errors.New("pq: deadlock detected on relation posts")
	err := Wrap(CodeUpstreamFailure, "Failed to create post", cause)

	if Message(err) != "Failed to create post" {
		t.Errorf("Message = %q", Message(err))
	}

	// Raw errors never surface their detail
	if msg := Message(cause); msg == cause.Error() {
		t.Errorf("Message leaked backend detail: %q", msg)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeUploadFailure, "upload failed", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find wrapped cause")
	}
}
