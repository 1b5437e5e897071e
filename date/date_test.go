package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Date
	}{
		{"2024-01-15", New(2024, time.January, 15)},
		{"2024-1-5", New(2024, time.January, 5)},
		{"2023-12-31", New(2023, time.December, 31)},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned an unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := Parse("15/01/2024"); err == nil {
		t.Error("Parse accepted a non ISO date")
	}
	if _, err := Parse("not-a-date"); err == nil {
		t.Error("Parse accepted garbage")
	}
}

func TestString_IsZeroPadded(t *testing.T) {
	d := New(2024, time.February, 3)
	if got, want := d.String(), "2024-02-03"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAdd_Normalizes(t *testing.T) {
	d := New(2024, time.January, 31).Add(1)
	if got, want := d.String(), "2024-02-01"; got != want {
		t.Errorf("Add(1) = %q, want %q", got, want)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(MustParse("2024-01-01"), MustParse("2024-01-31"))

	for _, in := range []string{"2024-01-01", "2024-01-15", "2024-01-31"} {
		if !r.Contains(MustParse(in)) {
			t.Errorf("Contains(%s) = false, want true", in)
		}
	}
	for _, out := range []string{"2023-12-31", "2024-02-01"} {
		if r.Contains(MustParse(out)) {
			t.Errorf("Contains(%s) = true, want false", out)
		}
	}
}

func TestNewRange_SwapsReversedBounds(t *testing.T) {
	r := NewRange(MustParse("2024-01-31"), MustParse("2024-01-01"))
	if r.From.After(r.To) {
		t.Errorf("NewRange did not swap reversed bounds: %v", r)
	}
}
