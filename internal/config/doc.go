// Package config defines the pocketdash configuration structure and its
// YAML loader. The config file names the pocketd node endpoint, the gateway
// addresses, and the application addresses the dashboard displays.
package config
