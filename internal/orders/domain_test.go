package orders

import (
	"errors"
	"testing"
)

func TestValidateTransitionForwardFlow(t *testing.T) {
	steps := []struct{ from, to Status }{
		{StatusPending, StatusProcessing},
		{StatusProcessing, StatusShipped},
		{StatusShipped, StatusDelivered},
	}
	for _, s := range steps {
		if err := ValidateTransition(s.from, s.to); err != nil {
			t.Fatalf("%s -> %s should be allowed: %v", s.from, s.to, err)
		}
	}
}

func TestValidateTransitionCancellation(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusProcessing, StatusShipped} {
		if err := ValidateTransition(from, StatusCancelled); err != nil {
			t.Fatalf("%s -> cancelled should be allowed: %v", from, err)
		}
	}
	if err := ValidateTransition(StatusDelivered, StatusCancelled); !errors.Is(err, ErrTransition) {
		t.Fatalf("delivered is terminal, got %v", err)
	}
}

func TestValidateTransitionRejectsSkipsAndReversals(t *testing.T) {
	cases := []struct{ from, to Status }{
		{StatusPending, StatusShipped},
		{StatusPending, StatusDelivered},
		{StatusShipped, StatusProcessing},
		{StatusDelivered, StatusPending},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusProcessing},
	}
	for _, c := range cases {
		if err := ValidateTransition(c.from, c.to); !errors.Is(err, ErrTransition) {
			t.Fatalf("%s -> %s should be rejected, got %v", c.from, c.to, err)
		}
	}
}

func TestValidateTransitionUnknownStatus(t *testing.T) {
	if err := ValidateTransition(StatusPending, Status("lost")); !errors.Is(err, ErrTransition) {
		t.Fatalf("expected ErrTransition got %v", err)
	}
}
