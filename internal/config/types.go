package config

// Config is the in-memory configuration for pocketdash. It is loaded once
// at startup and treated as read-only afterwards.
type Config struct {
	// RPCEndpoint is the network address of the pocketd node to query.
	RPCEndpoint string `yaml:"rpc_endpoint"`
	// Gateways is the ordered list of gateway addresses. The first entry is
	// the one displayed alongside each application row.
	Gateways []string `yaml:"gateways"`
	// Applications is the ordered list of application addresses shown on
	// the dashboard. Row order follows this list.
	Applications []string `yaml:"applications"`
}

// file mirrors the on-disk document, which nests everything under a
// top-level "config" key.
type file struct {
	Config *Config `yaml:"config"`
}

// DefaultGateway returns the gateway displayed in application rows.
func (c Config) DefaultGateway() string {
	if len(c.Gateways) == 0 {
		return ""
	}
	return c.Gateways[0]
}
