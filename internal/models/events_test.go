package models

import "testing"

func TestStatusOnBoundaries(t *testing.T) {
	today := "2026-08-30"

	cases := []struct {
		name string
		date string
		want EventStatus
	}{
		{"yesterday is completed", "2026-08-29", StatusCompleted},
		{"today is ongoing", "2026-08-30", StatusOngoing},
		{"tomorrow is upcoming", "2026-08-31", StatusUpcoming},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusOn(tc.date, today); got != tc.want {
				t.Errorf("StatusOn(%q, %q) = %q, want %q", tc.date, today, got, tc.want)
			}
		})
	}
}

func TestValidEventDate(t *testing.T) {
	valid := []string{"2026-01-01", "1999-12-31", "2099-02-28"}
	for _, d := range valid {
		if !ValidEventDate(d) {
			t.Errorf("ValidEventDate(%q) = false, want true", d)
		}
	}

	invalid := []string{
		"",
		"2026-1-2",     // not fixed width
		"26-01-02",     // short year
		"2026/01/02",   // wrong separator
		"2026-13-01",   // no such month
		"2026-02-30",   // no such day
		"2026-01-02 ",  // trailing space
		"2026-01-02T0", // extra characters
	}
	for _, d := range invalid {
		if ValidEventDate(d) {
			t.Errorf("ValidEventDate(%q) = true, want false", d)
		}
	}
}

func TestEventFilterMatches(t *testing.T) {
	ev := EventWithStatus{
		Event:  Event{Name: "Summer Launch", Venue: "Hall A"},
		Status: StatusUpcoming,
	}

	if !(EventFilter{}).Matches(ev) {
		t.Error("empty filter should match everything")
	}
	if !(EventFilter{Query: "LAUNCH"}).Matches(ev) {
		t.Error("query should match the name case-insensitively")
	}
	if !(EventFilter{Query: "hall"}).Matches(ev) {
		t.Error("query should match the venue case-insensitively")
	}
	if (EventFilter{Query: "winter"}).Matches(ev) {
		t.Error("query matching neither name nor venue should not match")
	}
	if !(EventFilter{Status: StatusUpcoming}).Matches(ev) {
		t.Error("matching status should pass")
	}
	if (EventFilter{Status: StatusCompleted}).Matches(ev) {
		t.Error("non-matching status should fail")
	}
	if (EventFilter{Query: "launch", Status: StatusCompleted}).Matches(ev) {
		t.Error("both conditions must hold")
	}
}
