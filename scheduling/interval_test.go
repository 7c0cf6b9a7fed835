package scheduling

import "testing"

func mustClock(t *testing.T, s string) int {
	t.Helper()
	m, err := ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", s, err)
	}
	return m
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"touching is not overlapping", "09:00", "10:00", "10:00", "11:00", false},
		{"touching reversed", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "09:00", "10:00", "11:00", "12:00", false},
		{"strict containment", "09:00", "12:00", "10:00", "11:00", true},
		{"strict containment reversed", "10:00", "11:00", "09:00", "12:00", true},
		{"partial overlap", "09:00", "10:30", "10:00", "11:00", true},
		{"partial overlap mirrored", "10:00", "11:00", "09:00", "10:30", true},
		{"identical intervals", "09:00", "10:00", "09:00", "10:00", true},
		{"one minute shared", "09:00", "10:01", "10:00", "11:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a1 := mustClock(t, tt.aStart)
			a2 := mustClock(t, tt.aEnd)
			b1 := mustClock(t, tt.bStart)
			b2 := mustClock(t, tt.bEnd)

			if got := Overlaps(a1, a2, b1, b2); got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}

// The predicate must be symmetric and must agree with the verbose
// three-clause form (starts-during, ends-during, contains) it replaces.
// Exercised over a grid of every interval with 30-minute endpoints in a
// working day.
func TestOverlapsProperties(t *testing.T) {
	threeClause := func(a1, a2, b1, b2 int) bool {
		startsDuring := b1 >= a1 && b1 < a2
		endsDuring := b2 > a1 && b2 <= a2
		contains := b1 <= a1 && b2 >= a2
		return startsDuring || endsDuring || contains
	}

	var points []int
	for m := 8 * 60; m <= 18*60; m += 30 {
		points = append(points, m)
	}

	for _, a1 := range points {
		for _, a2 := range points {
			if a2 <= a1 {
				continue
			}
			for _, b1 := range points {
				for _, b2 := range points {
					if b2 <= b1 {
						continue
					}
					got := Overlaps(a1, a2, b1, b2)
					if mirrored := Overlaps(b1, b2, a1, a2); got != mirrored {
						t.Fatalf("symmetry violated for [%d,%d) vs [%d,%d): %v vs %v",
							a1, a2, b1, b2, got, mirrored)
					}
					if want := threeClause(a1, a2, b1, b2); got != want {
						t.Fatalf("disagrees with three-clause form for [%d,%d) vs [%d,%d): got %v, want %v",
							a1, a2, b1, b2, got, want)
					}
				}
			}
		}
	}
}
