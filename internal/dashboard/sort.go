package dashboard

import (
	"sort"
	"strconv"
	"strings"
)

// SortField selects the column a row set is ordered by.
type SortField int

const (
	// SortNone keeps rows in configured order.
	SortNone SortField = iota
	SortAddress
	SortStake
	SortService
)

// SortRows orders rows in place. Stake sorts numerically; rows whose stake
// cell is an error placeholder sort after all numeric rows regardless of
// direction. The sort is stable so equal keys keep configured order.
func SortRows(rows []Row, field SortField, desc bool) {
	if field == SortNone {
		return
	}

	less := func(i, j int) bool {
		switch field {
		case SortAddress:
			return compareStrings(rows[i].Address, rows[j].Address, desc)
		case SortService:
			return compareStrings(rows[i].Service, rows[j].Service, desc)
		case SortStake:
			return compareStakes(rows[i].Stake, rows[j].Stake, desc)
		}
		return false
	}
	sort.SliceStable(rows, less)
}

func compareStrings(a, b string, desc bool) bool {
	if desc {
		return strings.ToLower(a) > strings.ToLower(b)
	}
	return strings.ToLower(a) < strings.ToLower(b)
}

func compareStakes(a, b string, desc bool) bool {
	av, aerr := strconv.ParseFloat(a, 64)
	bv, berr := strconv.ParseFloat(b, 64)

	// Error placeholders always sink to the bottom.
	if aerr != nil && berr != nil {
		return false
	}
	if aerr != nil {
		return false
	}
	if berr != nil {
		return true
	}

	if desc {
		return av > bv
	}
	return av < bv
}
