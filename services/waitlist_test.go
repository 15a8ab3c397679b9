package services

import "testing"

func TestEstimateWaitlist(t *testing.T) {
	tests := []struct {
		position    int
		probability string
		status      string
	}{
		{1, "90%", HighChance},
		{10, "90%", HighChance},
		{11, "75%", HighChance},
		{15, "75%", HighChance},
		{20, "75%", HighChance},
		{21, "55%", HighChance},
		{40, "55%", HighChance},
		{41, "35%", LowChance},
		{60, "35%", LowChance},
		{61, "10%", LowChance},
		{70, "10%", LowChance},
	}
	for _, tt := range tests {
		got := EstimateWaitlist(tt.position)
		if got.Probability != tt.probability || got.Status != tt.status || got.Position != tt.position {
			t.Errorf("EstimateWaitlist(%d) = %+v, want %s %s", tt.position, got, tt.probability, tt.status)
		}
	}
}

func TestParseWaitlistQuery(t *testing.T) {
	tests := []struct {
		text       string
		position   int
		isWaitlist bool
		ok         bool
	}{
		{"My waitlist is 15, will it confirm?", 15, true, true},
		{"WL 42 chances?", 42, true, true},
		{"what about wl23", 23, true, true},
		{"I am waitlisted at 7", 7, true, true},
		{"Wait-list number 61", 61, true, true},
		{"train 12951 is on WL 5", 5, true, true},
		{"PNR 4512345678 waitlist 12", 12, true, true},
		{"is wl-3 ok for the 12309 Rajdhani?", 3, true, true},
		{"12309 on 2026-11-02, what does waitlist mean", 12309, true, true},
		{"what is my waitlist chance", 0, true, false},
		{"trains from delhi to patna on 12", 0, false, false},
		{"bowl of rice", 0, false, false},
	}
	for _, tt := range tests {
		position, isWaitlist, ok := ParseWaitlistQuery(tt.text)
		if position != tt.position || isWaitlist != tt.isWaitlist || ok != tt.ok {
			t.Errorf("ParseWaitlistQuery(%q) = (%d, %v, %v), want (%d, %v, %v)",
				tt.text, position, isWaitlist, ok, tt.position, tt.isWaitlist, tt.ok)
		}
	}
}

func TestWaitlistReply(t *testing.T) {
	msg, est := waitlistReply(15, true)
	if est == nil || est.Probability != "75%" || est.Status != HighChance {
		t.Fatalf("unexpected estimate %+v", est)
	}
	if msg == "" {
		t.Fatalf("expected a reply")
	}

	_, est = waitlistReply(0, false)
	if est != nil {
		t.Fatalf("no estimate expected without a number")
	}
}
