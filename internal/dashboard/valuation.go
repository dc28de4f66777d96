package dashboard

// Valuation is the derived profit/loss figure. OK is false when no
// figure is defined (nothing selected, or the buy-price field does not
// hold a finite number); ProfitLoss is meaningful only when OK.
type Valuation struct {
	ProfitLoss float64
	OK         bool
}

// Outcome classifies a defined valuation for display.
type Outcome int

const (
	OutcomeProfit Outcome = iota
	OutcomeLoss
	OutcomeNoChange
)

// Outcome maps the sign of the figure to its display class: positive
// is profit, negative is loss, exactly zero is no change. Meaningful
// only when v.OK.
func (v Valuation) Outcome() Outcome {
	switch {
	case v.ProfitLoss > 0:
		return OutcomeProfit
	case v.ProfitLoss < 0:
		return OutcomeLoss
	default:
		return OutcomeNoChange
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeProfit:
		return "Profit"
	case OutcomeLoss:
		return "Loss"
	default:
		return "No Change"
	}
}
