package fintrack

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSimulate_ZeroCycles(t *testing.T) {
	if got := Simulate(dec(1000), 1.0, 0); len(got) != 0 {
		t.Errorf("Simulate() with 0 cycles = %d points, want empty", len(got))
	}
	if got := Simulate(dec(1000), 1.0, -3); len(got) != 0 {
		t.Errorf("Simulate() with negative cycles = %d points, want empty", len(got))
	}
}

func TestSimulate_Length(t *testing.T) {
	for _, cycles := range []int{1, 2, 12, 60} {
		got := Simulate(dec(100), 0.5, cycles)
		if len(got) != cycles*StepsPerCycle {
			t.Errorf("Simulate() with %d cycles = %d points, want %d", cycles, len(got), cycles*StepsPerCycle)
		}
	}
}

func TestSimulate_AllZero(t *testing.T) {
	points := Simulate(decimal.Zero, 0, 3)
	if len(points) != 3*StepsPerCycle {
		t.Fatalf("Simulate(0, 0, 3) = %d points, want %d", len(points), 3*StepsPerCycle)
	}
	for _, p := range points {
		if !p.Balance.IsZero() {
			t.Fatalf("Simulate(0, 0, 3) step %d = %s, want 0", p.Step, p.Balance)
		}
	}
}

func TestSimulate_FirstStep(t *testing.T) {
	points := Simulate(dec(1_000_000), 1.0, 1)
	want := decimal.NewFromInt(1_010_000)
	if !points[0].Balance.Equal(want) {
		t.Errorf("Simulate(1M, 1%%, 1) step 1 = %s, want %s", points[0].Balance, want)
	}
}

func TestSimulate_SingleContributionPerCycle(t *testing.T) {
	// Within one cycle the contribution lands on step 1 only; every later
	// step is the previous balance times the growth factor.
	points := Simulate(dec(1_000_000), 1.0, 1)
	growth := decimal.NewFromFloat(1.01)

	for i := 1; i < len(points); i++ {
		want := points[i-1].Balance.Mul(growth)
		if !points[i].Balance.Equal(want) {
			t.Fatalf("step %d = %s, want %s (previous * 1.01)", points[i].Step, points[i].Balance, want)
		}
	}

	// Step 20 is the single contribution compounded 20 times.
	want := decimal.NewFromInt(1_000_000).Mul(growth.Pow(decimal.NewFromInt(20)))
	if !points[19].Balance.Equal(want) {
		t.Errorf("step 20 = %s, want %s", points[19].Balance, want)
	}
}

func TestSimulate_NonDecreasing(t *testing.T) {
	tests := []struct {
		name         string
		contribution decimal.Decimal
		rate         Percent
		cycles       int
	}{
		{"flat", dec(500_000), 0, 6},
		{"balanced", dec(1_000_000), 1.0, 12},
		{"aggressive small", dec(1), 1.5, 3},
		{"no contribution", decimal.Zero, 2.0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Simulate(tt.contribution, tt.rate, tt.cycles)
			prev := decimal.Zero
			for _, p := range points {
				if p.Balance.LessThan(prev) {
					t.Fatalf("step %d = %s is below previous %s", p.Step, p.Balance, prev)
				}
				prev = p.Balance
			}
		})
	}
}

func TestSimulate_ZeroRateSumsContributions(t *testing.T) {
	points := Simulate(dec(100), 0, 2)
	// steps 1..20 hold one contribution, steps 21..40 hold two.
	if !points[0].Balance.Equal(dec(100)) {
		t.Errorf("step 1 = %s, want 100", points[0].Balance)
	}
	if !points[19].Balance.Equal(dec(100)) {
		t.Errorf("step 20 = %s, want 100", points[19].Balance)
	}
	if !points[20].Balance.Equal(dec(200)) {
		t.Errorf("step 21 = %s, want 200", points[20].Balance)
	}
	if !points[39].Balance.Equal(dec(200)) {
		t.Errorf("step 40 = %s, want 200", points[39].Balance)
	}
}

func TestSimulate_NegativeContribution(t *testing.T) {
	points := Simulate(dec(-100), 0, 2)
	if !points[19].Balance.Equal(dec(-100)) {
		t.Errorf("step 20 = %s, want -100", points[19].Balance)
	}
	if !points[39].Balance.Equal(dec(-200)) {
		t.Errorf("step 40 = %s, want -200", points[39].Balance)
	}
}

func TestFinalBalance(t *testing.T) {
	if _, ok := FinalBalance(nil); ok {
		t.Error("FinalBalance(nil) ok = true, want false")
	}

	points := Simulate(dec(1_000_000), 1.0, 1)
	got, ok := FinalBalance(points)
	if !ok {
		t.Fatal("FinalBalance() ok = false, want true")
	}
	if !got.Equal(points[19].Balance) {
		t.Errorf("FinalBalance() = %s, want %s", got, points[19].Balance)
	}
}
