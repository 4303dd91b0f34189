package cashier

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed:
		return true
	default:
		return false
	}
}

// Verdict classifies the counted-vs-expected difference. Presentation only:
// no adjustment or forced re-count follows from it.
type Verdict string

const (
	VerdictBalanced  Verdict = "balanced"
	VerdictSurplus   Verdict = "surplus"
	VerdictShortfall Verdict = "shortfall"
)

func (v Verdict) String() string {
	return string(v)
}
