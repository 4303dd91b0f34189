package cashier

import "github.com/shopspring/decimal"

type Reconciliation struct {
	Expected   decimal.Decimal
	Difference decimal.Decimal
	Verdict    Verdict
}

// ExpectedAmount is the single definition of what the drawer should hold:
// starting float plus cash sales minus cash expenses. Mid-day reports and the
// closing reconciliation must agree on it.
func ExpectedAmount(startAmount, cashSales, cashExpenses decimal.Decimal) decimal.Decimal {
	return startAmount.Add(cashSales).Sub(cashExpenses)
}

// Reconcile computes the expected drawer amount and the signed variance
// against the counted amount. A negative expected amount is surfaced as-is:
// it signals a bookkeeping problem upstream and must not be clamped here.
func Reconcile(startAmount, cashSales, cashExpenses, countedAmount decimal.Decimal) Reconciliation {
	expected := ExpectedAmount(startAmount, cashSales, cashExpenses)
	difference := countedAmount.Sub(expected)

	verdict := VerdictBalanced
	switch {
	case difference.IsPositive():
		verdict = VerdictSurplus
	case difference.IsNegative():
		verdict = VerdictShortfall
	}

	return Reconciliation{
		Expected:   expected,
		Difference: difference,
		Verdict:    verdict,
	}
}
