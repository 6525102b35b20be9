package reconcile

import "fmt"

// Basis selects which reported figure the selection total is compared to.
type Basis string

const (
	// BasisGross compares against the gross period points. The source
	// computes pick points before transfer hits, so this is the default.
	BasisGross Basis = "gross"
	BasisNet   Basis = "net"
)

func ParseBasis(v string) (Basis, error) {
	switch Basis(v) {
	case BasisGross, BasisNet:
		return Basis(v), nil
	case "":
		return BasisGross, nil
	default:
		return "", fmt.Errorf("unknown consistency basis %q", v)
	}
}

// Discrepancy is a team-period where the reported total differs from the
// sum of points earned by its picks.
type Discrepancy struct {
	EntryID     int64
	ManagerName string
	TeamName    string
	Period      int
	Reported    int
	Observed    int
}

type PeriodSummary struct {
	Period  int
	Checked int
	Errors  int
}

// Report is the advisory result of the consistency check.
type Report struct {
	Basis         Basis
	Periods       []PeriodSummary
	Discrepancies []Discrepancy
	TotalErrors   int
}

func (r Report) Consistent() bool {
	return r.TotalErrors == 0
}
