package models

import "testing"

func TestTransitionRole(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		role     Role
		ok       bool
	}{
		{BookingPending, BookingAccepted, RolePro, true},
		{BookingPending, BookingRejected, RolePro, true},
		{BookingAccepted, BookingPaid, RoleClient, true},
		{BookingPaid, BookingCompleted, RolePro, true},
		{BookingCompleted, BookingFinished, RoleClient, true},
		{BookingPending, BookingPaid, "", false},
		{BookingPending, BookingFinished, "", false},
		{BookingAccepted, BookingCompleted, "", false},
		{BookingRejected, BookingAccepted, "", false},
		{BookingFinished, BookingCompleted, "", false},
	}
	for _, tc := range cases {
		role, ok := TransitionRole(tc.from, tc.to)
		if ok != tc.ok || role != tc.role {
			t.Errorf("%s -> %s: got (%q, %v), want (%q, %v)", tc.from, tc.to, role, ok, tc.role, tc.ok)
		}
	}
}

func TestTerminal(t *testing.T) {
	for _, s := range []BookingStatus{BookingRejected, BookingFinished} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []BookingStatus{BookingPending, BookingAccepted, BookingPaid, BookingCompleted} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
