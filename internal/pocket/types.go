package pocket

// Coin is an amount in a base denomination, as pocketd emits it. Amounts are
// string-encoded integers and may exceed int64 range.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// ServiceConfig associates an application with a service it is staked for.
type ServiceConfig struct {
	ServiceID string `json:"service_id"`
}

// Application is the on-chain application record returned by
// `pocketd query application show-application`.
type Application struct {
	Address                   string          `json:"address"`
	Stake                     Coin            `json:"stake"`
	ServiceConfigs            []ServiceConfig `json:"service_configs"`
	DelegateeGatewayAddresses []string        `json:"delegatee_gateway_addresses"`
}
