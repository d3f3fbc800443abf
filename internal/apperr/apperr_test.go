package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestDetailsCarriesWorkflowCode(t *testing.T) {
	details := Details(NewServerError(CodeDuplicateUser, "duplicate"))
	if details.ErrorCode != CodeDuplicateUser {
		t.Fatalf("expected errorCode 120, got %d", details.ErrorCode)
	}
	if details.ErrorMessage != "duplicate" {
		t.Fatalf("unexpected message %q", details.ErrorMessage)
	}
	if details.DevErrorMessage == "" {
		t.Fatalf("devErrorMessage should carry a stack detail")
	}
	if details.AdditionalData == nil {
		t.Fatalf("additionalData should be present")
	}

	details = Details(NewNotFoundError(CodeUserNotFound, "missing"))
	if details.ErrorCode != CodeUserNotFound {
		t.Fatalf("expected errorCode 400, got %d", details.ErrorCode)
	}
}

func TestDetailsUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("save failed: %w", NewServerError(CodeNotFrench, "not french"))

	details := Details(wrapped)
	if details.ErrorCode != CodeNotFrench {
		t.Fatalf("expected errorCode 110 through the wrap, got %d", details.ErrorCode)
	}
}

func TestDetailsDefaultsToCodeZero(t *testing.T) {
	details := Details(errors.New("boom"))
	if details.ErrorCode != 0 {
		t.Fatalf("expected errorCode 0 for an uncoded error, got %d", details.ErrorCode)
	}
}
