package scheduling

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"9:30", 570, false},
		{"9:5", 545, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"12", 0, true},
		{"12:00:00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) = %d, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// Zero-padded and bare forms of the same clock time must normalize to the
// same minute offset, so ordering can never depend on string comparison.
func TestParseClockNormalizesPadding(t *testing.T) {
	padded, err := ParseClock("09:05")
	if err != nil {
		t.Fatal(err)
	}
	bare, err := ParseClock("9:5")
	if err != nil {
		t.Fatal(err)
	}
	if padded != bare {
		t.Errorf("padded %d != bare %d", padded, bare)
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for m := 0; m < minutesPerDay; m += 7 {
		back, err := ParseClock(FormatClock(m))
		if err != nil {
			t.Fatalf("round trip of %d: %v", m, err)
		}
		if back != m {
			t.Fatalf("round trip of %d gave %d", m, back)
		}
	}
}

func TestValidateInterval(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		end      int
		wantErr  bool
	}{
		{"valid", 540, 600, false},
		{"full day", 0, minutesPerDay, false},
		{"empty", 600, 600, true},
		{"inverted", 660, 600, true},
		{"negative start", -10, 60, true},
		{"past midnight", 1400, minutesPerDay + 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInterval(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInterval(%d, %d) error = %v, wantErr %v",
					tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}
