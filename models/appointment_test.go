package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if Status("done").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}

func TestPaymentMethodValid(t *testing.T) {
	for _, p := range []PaymentMethod{PaymentCash, PaymentInstantTransfer, PaymentDebitCard, PaymentCreditCard} {
		if !p.Valid() {
			t.Errorf("expected %s to be valid", p)
		}
	}
	if PaymentMethod("check").Valid() {
		t.Error("expected unknown payment method to be invalid")
	}
}
