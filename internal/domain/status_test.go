package domain

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pendente", "preparando", "pronto", "entregue"} {
		got, err := ParseStatus(s)
		if err != nil {
			t.Fatalf("ParseStatus(%q) returned error: %v", s, err)
		}
		if string(got) != s {
			t.Fatalf("ParseStatus(%q) = %q", s, got)
		}
	}

	if _, err := ParseStatus("cooking"); !errors.Is(err, ErrValidation) {
		t.Fatalf("ParseStatus(cooking) error = %v, want ErrValidation", err)
	}
	if _, err := ParseStatus(""); !errors.Is(err, ErrValidation) {
		t.Fatalf("ParseStatus(empty) error = %v, want ErrValidation", err)
	}
}

func TestValidateTransition_LegalEdges(t *testing.T) {
	legal := [][2]Status{
		{StatusPending, StatusPreparing},
		{StatusPreparing, StatusReady},
		{StatusReady, StatusDelivered},
	}
	for _, e := range legal {
		if err := ValidateTransition(e[0], e[1]); err != nil {
			t.Fatalf("ValidateTransition(%s, %s) = %v, want nil", e[0], e[1], err)
		}
	}
}

func TestValidateTransition_RejectsIllegalEdges(t *testing.T) {
	illegal := [][2]Status{
		{StatusPending, StatusReady},       // skip
		{StatusPending, StatusDelivered},   // skip
		{StatusPreparing, StatusDelivered}, // skip
		{StatusReady, StatusPending},       // regression
		{StatusPreparing, StatusPending},   // regression
		{StatusDelivered, StatusReady},     // regression
		{StatusPending, StatusPending},     // self
		{StatusDelivered, StatusDelivered}, // terminal self
	}
	for _, e := range illegal {
		err := ValidateTransition(e[0], e[1])
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("ValidateTransition(%s, %s) = %v, want ErrInvalidTransition", e[0], e[1], err)
		}
	}
}
