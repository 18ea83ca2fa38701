package common

import (
	"testing"

	"github.com/pkg/errors"
)

func TestReported(t *testing.T) {
	if err := Reported(nil); err != nil {
		t.Fatalf("Reported(nil): expected nil, got %v", err)
	}

	sentinel := errors.New("connection refused")

	err := errors.WithStack(Reported(errors.Wrap(sentinel, "could not retrieve recommendations")))

	if !IsReported(err) {
		t.Error("expected error to be reported")
	}

	if !errors.Is(err, sentinel) {
		t.Error("expected error to wrap its cause")
	}

	if IsReported(sentinel) {
		t.Error("expected plain error to not be reported")
	}
}
