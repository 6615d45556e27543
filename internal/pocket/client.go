package pocket

import (
	"context"
	"encoding/json"
)

// DefaultBinary is the pocketd executable looked up on PATH.
const DefaultBinary = "pocketd"

// Client issues read-only pocketd queries against a single node endpoint.
// Calls are synchronous and perform no retries; a failed attempt surfaces as
// a single QueryError.
type Client struct {
	binary string
	node   string
	runner CommandRunner
}

// Option customizes a Client.
type Option func(*Client)

// WithBinary overrides the pocketd executable name or path.
func WithBinary(binary string) Option {
	return func(c *Client) {
		c.binary = binary
	}
}

// NewClient returns a Client that queries the given node endpoint through
// the given runner.
func NewClient(node string, runner CommandRunner, opts ...Option) *Client {
	c := &Client{
		binary: DefaultBinary,
		node:   node,
		runner: runner,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ShowApplication fetches the on-chain application record for address.
// Failures are returned as *QueryError, classified by kind.
func (c *Client) ShowApplication(ctx context.Context, address string) (Application, error) {
	out, err := c.runner.Run(ctx,
		c.binary, "query", "application", "show-application", address,
		"--node", c.node, "--output", "json")
	if err != nil {
		return Application{}, &QueryError{Kind: ErrInvocation, Address: address, Detail: err.Error()}
	}

	var resp struct {
		Application *Application `json:"application"`
	}
	if err := json.Unmarshal(out, &resp); err != nil {
		return Application{}, &QueryError{Kind: ErrParse, Address: address, Detail: err.Error()}
	}
	if resp.Application == nil {
		return Application{}, &QueryError{Kind: ErrMissingField, Address: address, Detail: `output has no "application" key`}
	}
	return *resp.Application, nil
}

// BankBalance fetches the bank balances held by address. Used by the details
// overlay; balances are read-only and never cached.
func (c *Client) BankBalance(ctx context.Context, address string) ([]Coin, error) {
	out, err := c.runner.Run(ctx,
		c.binary, "query", "bank", "balances", address,
		"--node", c.node, "--output", "json")
	if err != nil {
		return nil, &QueryError{Kind: ErrInvocation, Address: address, Detail: err.Error()}
	}

	var resp struct {
		Balances []Coin `json:"balances"`
	}
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, &QueryError{Kind: ErrParse, Address: address, Detail: err.Error()}
	}
	return resp.Balances, nil
}
