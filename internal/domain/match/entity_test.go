package match

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		// An external scheduler may expire a pending request directly.
		{StatusPending, StatusExpired, true},
		{StatusPending, StatusPending, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusAccepted, false},
		{StatusExpired, StatusAccepted, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.ok {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if s, ok := ParseStatus("ACCEPTED"); !ok || s != StatusAccepted {
		t.Fatalf("expected ACCEPTED to parse, got %q ok=%v", s, ok)
	}
	if _, ok := ParseStatus("accepted"); ok {
		t.Fatalf("status parsing must be case-sensitive")
	}
	if _, ok := ParseStatus("CANCELLED"); ok {
		t.Fatalf("unknown status must not parse")
	}
}

func TestTerminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Fatalf("PENDING must not be terminal")
	}
	for _, s := range []Status{StatusAccepted, StatusRejected, StatusExpired} {
		if !s.Terminal() {
			t.Fatalf("%s must be terminal", s)
		}
	}
}
