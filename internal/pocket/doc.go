// Package pocket wraps the pocketd command-line client. It runs read-only
// queries against a node endpoint, parses the JSON output, and classifies
// failures so callers can render them per row instead of aborting.
package pocket
