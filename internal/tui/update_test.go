package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketdash/internal/config"
	"pocketdash/internal/dashboard"
	"pocketdash/internal/pocket"
)

// fakeQuerier serves canned results for the dashboard under test.
type fakeQuerier struct {
	apps     map[string]pocket.Application
	errs     map[string]error
	balances map[string][]pocket.Coin
}

func (f *fakeQuerier) ShowApplication(_ context.Context, address string) (pocket.Application, error) {
	if err, ok := f.errs[address]; ok {
		return pocket.Application{}, err
	}
	return f.apps[address], nil
}

func (f *fakeQuerier) BankBalance(_ context.Context, address string) ([]pocket.Coin, error) {
	return f.balances[address], nil
}

func testConfig() config.Config {
	return config.Config{
		RPCEndpoint:  "https://node.example",
		Gateways:     []string{"pokt1gw1", "pokt1gw2"},
		Applications: []string{"pokt1a", "pokt1b"},
	}
}

func testQuerier() *fakeQuerier {
	return &fakeQuerier{
		apps: map[string]pocket.Application{
			"pokt1a": {
				Address:        "pokt1a",
				Stake:          pocket.Coin{Denom: "upokt", Amount: "2500000"},
				ServiceConfigs: []pocket.ServiceConfig{{ServiceID: "eth-mainnet"}},
			},
			"pokt1b": {
				Address: "pokt1b",
				Stake:   pocket.Coin{Denom: "upokt", Amount: "1000000"},
			},
		},
		balances: map[string][]pocket.Coin{
			"pokt1a": {{Denom: "upokt", Amount: "5000000"}},
		},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(testConfig(), testQuerier(), nil)
}

// pressKey feeds a single key press through Update.
func pressKey(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// typeText feeds text rune by rune.
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = pressKey(t, m, string(r))
	}
	return m
}

// completeRefresh runs the model's refresh command synchronously and applies
// its message.
func completeRefresh(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.refreshCmd()()
	done, ok := msg.(refreshDoneMsg)
	require.True(t, ok)
	updated, _ := m.Update(done)
	return updated.(Model)
}

func TestNew_StartsBooting(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, modeBooting, m.mode)
	assert.True(t, m.refreshing)
	assert.NotNil(t, m.Init())
}

func TestBoot_FirstRefreshRemovesSplash(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	assert.Equal(t, modeReady, m.mode)
	assert.False(t, m.refreshing)
	require.Len(t, m.Rows(), 2)
	assert.Equal(t, "2.50", m.Rows()[0].Stake)
	assert.Equal(t, "eth-mainnet", m.Rows()[0].Service)
	assert.Equal(t, "pokt1gw1", m.Rows()[0].Gateway)
	assert.Equal(t, "-", m.Rows()[1].Service)
}

func TestRefresh_OneRowPerConfiguredAddress(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	require.Len(t, m.Rows(), len(testConfig().Applications))
	assert.Equal(t, "pokt1a", m.Rows()[0].Address)
	assert.Equal(t, "pokt1b", m.Rows()[1].Address)
}

func TestRefresh_ErrorRowDoesNotAffectOthers(t *testing.T) {
	q := testQuerier()
	q.errs = map[string]error{
		"pokt1a": &pocket.QueryError{Kind: pocket.ErrInvocation, Address: "pokt1a", Detail: "exit status 1"},
	}
	m := New(testConfig(), q, nil)
	m = completeRefresh(t, m)

	require.Len(t, m.Rows(), 2)
	assert.Equal(t, "Error", m.Rows()[0].Stake)
	assert.Equal(t, "-", m.Rows()[0].Service)
	assert.Equal(t, "1.00", m.Rows()[1].Stake)
	assert.Equal(t, "1 of 2 queries failed", m.status)
}

func TestRefreshKey_StartsRefresh(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, cmd := pressKey(t, m, "r")
	assert.True(t, m.refreshing)
	assert.NotNil(t, cmd)
}

func TestRefreshKey_IgnoredWhileInFlight(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, "r")
	require.True(t, m.refreshing)

	// Second trigger while in flight: ignored, only a status notice.
	m, _ = pressKey(t, m, "r")
	assert.True(t, m.refreshing)
	assert.Equal(t, "Refresh already in progress", m.status)
}

func TestRefresh_TableReflectsLatestCompletedRefresh(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	first := refreshDoneMsg{rows: []dashboard.Row{{Address: "pokt1a", Stake: "1.00", Service: "-", Gateway: "pokt1gw1"}}}
	second := refreshDoneMsg{rows: []dashboard.Row{
		{Address: "pokt1a", Stake: "9.99", Service: "eth-mainnet", Gateway: "pokt1gw1"},
		{Address: "pokt1b", Stake: "1.00", Service: "-", Gateway: "pokt1gw1"},
	}}

	updated, _ := m.Update(first)
	updated, _ = updated.(Model).Update(second)
	m = updated.(Model)

	require.Len(t, m.Rows(), 2)
	assert.Equal(t, "9.99", m.Rows()[0].Stake)
}

func TestCommand_QuitToken(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, ":")
	require.Equal(t, modeCommand, m.mode)

	m = typeText(t, m, "q")
	m, cmd := pressKey(t, m, "enter")

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCommand_QuitTokenWithWhitespace(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, ":")
	m = typeText(t, m, "  q  ")
	m, cmd := pressKey(t, m, "enter")

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCommand_UnknownTextReturnsToReady(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, ":")
	m = typeText(t, m, "bogus")
	m, cmd := pressKey(t, m, "enter")

	assert.Equal(t, modeReady, m.mode)
	assert.Nil(t, cmd)
	assert.Len(t, m.Rows(), 2)
}

func TestCommand_EmptySubmitReturnsToReady(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, ":")
	m, cmd := pressKey(t, m, "enter")

	assert.Equal(t, modeReady, m.mode)
	assert.Nil(t, cmd)
}

func TestCommand_EscCancelsWithoutAction(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, ":")
	m = typeText(t, m, "q")
	m, cmd := pressKey(t, m, "esc")

	assert.Equal(t, modeReady, m.mode)
	assert.Nil(t, cmd)
}

func TestCommand_GatewaySelect(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, ":")
	m = typeText(t, m, "g 2")
	m, _ = pressKey(t, m, "enter")

	assert.Equal(t, "pokt1gw2", m.Gateway())

	// The new gateway lands in rows on the next refresh.
	m = completeRefresh(t, m)
	assert.Equal(t, "pokt1gw2", m.Rows()[0].Gateway)
}

func TestCommand_GatewaySelectOutOfRange(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, ":")
	m = typeText(t, m, "g 7")
	m, _ = pressKey(t, m, "enter")

	assert.Equal(t, "pokt1gw1", m.Gateway())
	assert.Contains(t, m.status, "Gateway index")
}

func TestCommand_SortByStake(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, ":")
	m = typeText(t, m, "sp")
	m, _ = pressKey(t, m, "enter")

	require.Len(t, m.Rows(), 2)
	assert.Equal(t, "1.00", m.Rows()[0].Stake)

	m, _ = pressKey(t, m, ":")
	m = typeText(t, m, "desc")
	m, _ = pressKey(t, m, "enter")
	assert.Equal(t, "2.50", m.Rows()[0].Stake)
}

func TestQuitKey_InReady(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	_, cmd := pressKey(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSearch_MovesCursorToMatch(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, "/")
	require.Equal(t, modeSearch, m.mode)

	m = typeText(t, m, "pokt1b")
	m, _ = pressKey(t, m, "enter")

	assert.Equal(t, modeReady, m.mode)
	assert.Equal(t, 1, m.table.Cursor())
}

func TestSearch_NoMatchShowsStatus(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, "/")
	m = typeText(t, m, "zzz")
	m, _ = pressKey(t, m, "enter")

	assert.Contains(t, m.status, "No match")
}

func TestDetails_OpenAndClose(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, cmd := pressKey(t, m, "enter")
	require.Equal(t, modeDetails, m.mode)
	require.NotNil(t, cmd)

	// Run the batched commands to find the details result.
	msg := findDetailsMsg(t, cmd)
	updated, _ := m.Update(msg)
	m = updated.(Model)

	assert.Equal(t, "pokt1a", m.detailsAddr)
	assert.Contains(t, m.detailsContent, "2.50 POKT")
	assert.Contains(t, m.detailsContent, "eth-mainnet")
	assert.Contains(t, m.detailsContent, "5.00 POKT")

	m, _ = pressKey(t, m, "esc")
	assert.Equal(t, modeReady, m.mode)
}

func TestHelp_OpenAndClose(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m, _ = pressKey(t, m, "?")
	assert.Equal(t, modeHelp, m.mode)

	m, _ = pressKey(t, m, "esc")
	assert.Equal(t, modeReady, m.mode)
}

func TestBooting_IgnoresKeysExceptInterrupt(t *testing.T) {
	m := newTestModel(t)

	m, cmd := pressKey(t, m, "r")
	assert.Equal(t, modeBooting, m.mode)
	assert.Nil(t, cmd)

	_, cmd = pressKey(t, m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestClearStatus_OnlyExpiresMatchingSequence(t *testing.T) {
	m := newTestModel(t)
	m = completeRefresh(t, m)

	m.setStatusMessage("first", 0, 0)
	m.setStatusMessage("second", 0, 0)

	updated, _ := m.Update(clearStatusMsg{seq: 1})
	m = updated.(Model)
	assert.Equal(t, "second", m.status)

	updated, _ = m.Update(clearStatusMsg{seq: 2})
	m = updated.(Model)
	assert.Equal(t, "", m.status)
}

// findDetailsMsg executes a (possibly batched) command tree until it yields
// a detailsDoneMsg.
func findDetailsMsg(t *testing.T, cmd tea.Cmd) detailsDoneMsg {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case detailsDoneMsg:
			return msg
		case tea.BatchMsg:
			queue = append(queue, msg...)
		}
	}
	require.Fail(t, "no detailsDoneMsg produced")
	return detailsDoneMsg{}
}
