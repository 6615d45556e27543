// Package dashboard derives display rows from application query results.
// It is shared by the TUI refresh path and the --no-tui one-shot mode.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/math"

	"pocketdash/internal/pocket"
	"pocketdash/pkg/logging"
)

const (
	// ErrorCell marks a row whose query invocation failed outright.
	ErrorCell = "Error"
	// EmptyCell fills columns that have no meaningful value for the row.
	EmptyCell = "-"
	// parseErrPrefix prefixes the underlying failure description when a
	// record was returned but could not be mapped.
	parseErrPrefix = "ParseErr: "

	// upoktPerPokt converts the base denomination to display units.
	upoktPerPokt = 1_000_000
)

// Row is one rendered table line. All cells are display-ready strings.
type Row struct {
	Address string
	Stake   string
	Service string
	Gateway string
}

// Failed reports whether the row carries an error placeholder instead of a
// stake value.
func (r Row) Failed() bool {
	return r.Stake == ErrorCell || strings.HasPrefix(r.Stake, parseErrPrefix)
}

// Querier is the slice of the pocket client the refresh loop needs.
type Querier interface {
	ShowApplication(ctx context.Context, address string) (pocket.Application, error)
}

// BuildRow maps one query outcome to exactly one Row. Failures never
// propagate: any query failure yields the fixed error token, a derivation
// failure on a returned record yields a ParseErr cell embedding the failure
// description.
func BuildRow(address, gateway string, app pocket.Application, err error) Row {
	if err != nil {
		return Row{Address: address, Stake: ErrorCell, Service: EmptyCell, Gateway: EmptyCell}
	}

	stake, perr := FormatStake(app.Stake.Amount)
	if perr != nil {
		return Row{Address: address, Stake: parseErrPrefix + perr.Error(), Service: EmptyCell, Gateway: EmptyCell}
	}

	service := EmptyCell
	if len(app.ServiceConfigs) > 0 {
		service = app.ServiceConfigs[0].ServiceID
	}

	return Row{Address: address, Stake: stake, Service: service, Gateway: gateway}
}

// FormatStake converts a string-encoded upokt amount to POKT, formatted to
// exactly two decimal places. The whole computation stays in arbitrary
// precision, since on-chain stakes can exceed what float64 represents.
func FormatStake(amount string) (string, error) {
	amt, ok := math.NewIntFromString(amount)
	if !ok || amt.IsNegative() {
		return "", fmt.Errorf("malformed stake amount %q", amount)
	}
	// Round to hundredths of a POKT, then split into whole and fractional
	// parts for display.
	centi := math.LegacyNewDecFromInt(amt).QuoInt64(upoktPerPokt).MulInt64(100).RoundInt()
	return fmt.Sprintf("%s.%02d", centi.QuoRaw(100), centi.ModRaw(100).Int64()), nil
}

// Refresh queries each address in order, one at a time, and returns exactly
// one Row per address regardless of individual outcomes. There is no
// parallel fan-out and no retry; a failed query becomes an error row.
func Refresh(ctx context.Context, q Querier, addresses []string, gateway string) []Row {
	rows := make([]Row, 0, len(addresses))
	for _, addr := range addresses {
		app, err := q.ShowApplication(ctx, addr)
		if err != nil {
			if kind, ok := pocket.KindOf(err); ok {
				logging.Warn("refresh", "query for %s failed (%s)", addr, kind)
			} else {
				logging.Warn("refresh", "query for %s failed: %v", addr, err)
			}
		}
		rows = append(rows, BuildRow(addr, gateway, app, err))
	}
	return rows
}
