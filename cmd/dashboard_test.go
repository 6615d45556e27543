package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"pocketdash/internal/dashboard"
)

func TestNewDashboardCmd(t *testing.T) {
	dashboardCmd := newDashboardCmd()

	if dashboardCmd.Use != "dashboard" {
		t.Errorf("Expected Use to be 'dashboard', got %s", dashboardCmd.Use)
	}

	if dashboardCmd.Flags().Lookup("config") == nil {
		t.Error("Expected --config flag to be defined")
	}

	if dashboardCmd.Flags().Lookup("no-tui") == nil {
		t.Error("Expected --no-tui flag to be defined")
	}
}

func TestDashboard_MissingConfigFails(t *testing.T) {
	dashboardCmd := newDashboardCmd()
	dashboardCmd.SetOut(&bytes.Buffer{})
	dashboardCmd.SetErr(&bytes.Buffer{})
	dashboardCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})

	err := dashboardCmd.Execute()
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("Expected config read error, got: %v", err)
	}
}

func TestPrintRows(t *testing.T) {
	rows := []dashboard.Row{
		{Address: "pokt1app1", Stake: "2.50", Service: "eth-mainnet", Gateway: "pokt1gw1"},
		{Address: "pokt1app2", Stake: "Error", Service: "-", Gateway: "-"},
	}

	var buf bytes.Buffer
	if err := printRows(&buf, rows); err != nil {
		t.Fatalf("printRows failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"APP ADDRESS", "STAKE (POKT)", "pokt1app1", "2.50", "eth-mainnet", "Error"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q. Got:\n%s", want, out)
		}
	}

	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("Expected header plus 2 rows (3 lines), got %d", got)
	}
}
