package errors_test

import (
	"errors"
	"fmt"
	"testing"

	berr "github.com/next-trace/scg-event-bus/contract/errors"
)

func TestCodeAndVars(t *testing.T) {
	e := berr.Code(berr.ErrCodeHandlerFailed)
	if e.Error() != berr.ErrCodeHandlerFailed {
		t.Fatalf("unexpected error string: %s", e.Error())
	}

	// exported variables must carry their codes
	tests := []struct {
		err  error
		code string
	}{
		{berr.ErrHandlerFailed, berr.ErrCodeHandlerFailed},
		{berr.ErrHandlerPanicked, berr.ErrCodeHandlerPanicked},
		{berr.ErrHandlerTypeMismatch, berr.ErrCodeHandlerTypeMismatch},
		{berr.ErrSubscriptionNotFound, berr.ErrCodeSubscriptionNotFound},
		{berr.ErrNilEvent, berr.ErrCodeNilEvent},
		{berr.ErrBusClosed, berr.ErrCodeBusClosed},
		{berr.ErrInvalidBlockID, berr.ErrCodeInvalidBlockID},
		{berr.ErrConfigLoadFailed, berr.ErrCodeConfigLoadFailed},
	}

	for _, tc := range tests {
		if !errors.Is(tc.err, berr.Code(tc.code)) {
			t.Fatalf("expected %s to be %s", tc.err, tc.code)
		}
	}
}

func TestWrappedCodesStillMatch(t *testing.T) {
	err := fmt.Errorf("dispatch *event: handler 1: %w", errors.Join(berr.ErrHandlerFailed, errors.New("boom")))
	if !errors.Is(err, berr.ErrHandlerFailed) {
		t.Fatalf("want ErrHandlerFailed in chain, got %v", err)
	}

	if errors.Is(err, berr.ErrHandlerPanicked) {
		t.Fatalf("unexpected ErrHandlerPanicked in chain: %v", err)
	}
}
