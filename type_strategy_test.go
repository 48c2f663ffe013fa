package fintrack

import "testing"

func TestStrategy_Rate(t *testing.T) {
	tests := []struct {
		s    Strategy
		want Percent
	}{
		{Conservative, 0.5},
		{Balanced, 1.0},
		{Aggressive, 1.5},
	}
	for _, tt := range tests {
		if got := tt.s.Rate(); !got.Equal(tt.want) {
			t.Errorf("%s.Rate() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{Conservative, Balanced, Aggressive} {
		got, err := ParseStrategy(s.String())
		if err != nil {
			t.Errorf("ParseStrategy(%q) error: %v", s, err)
		}
		if got != s {
			t.Errorf("ParseStrategy(%q) = %v, want %v", s, got, s)
		}
	}
	if _, err := ParseStrategy("yolo"); err == nil {
		t.Error(`ParseStrategy("yolo") = nil error, want an error`)
	}
}
