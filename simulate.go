package fintrack

import "github.com/shopspring/decimal"

// StepsPerCycle is the number of elementary compounding steps in one
// contribution cycle, nominally the trading days of a month.
const StepsPerCycle = 20

// SimulationPoint is one step of a simulated balance trajectory.
type SimulationPoint struct {
	Step    int             // Step is the 1-based step index.
	Balance decimal.Decimal // Balance is the value after this step's growth.
}

// Simulate projects a compound-growth trajectory.
//
// The balance starts at zero. On the first step of every cycle the periodic
// contribution is added, then every step multiplies the balance by
// 1 + rate/100. The output holds one point per step, cycles*StepsPerCycle in
// total, and is fully determined by the inputs.
//
// A non-positive number of cycles yields an empty trajectory; reading a final
// balance out of it is the caller's concern, see [FinalBalance]. A zero rate
// accumulates contributions without compounding. A negative contribution is
// permitted and debits the cycle-start steps only.
func Simulate(contribution decimal.Decimal, rate Percent, cycles int) []SimulationPoint {
	if cycles <= 0 {
		return nil
	}

	total := cycles * StepsPerCycle
	growth := decimal.NewFromInt(1).Add(decimal.NewFromFloat(float64(rate)).Div(decimal.NewFromInt(100)))

	points := make([]SimulationPoint, 0, total)
	balance := decimal.Zero
	for i := 1; i <= total; i++ {
		if (i-1)%StepsPerCycle == 0 {
			balance = balance.Add(contribution)
		}
		balance = balance.Mul(growth)
		points = append(points, SimulationPoint{Step: i, Balance: balance})
	}
	return points
}

// FinalBalance returns the last balance of a trajectory, or false when the
// trajectory is empty.
func FinalBalance(points []SimulationPoint) (decimal.Decimal, bool) {
	if len(points) == 0 {
		return decimal.Zero, false
	}
	return points[len(points)-1].Balance, true
}
