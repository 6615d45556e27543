package components

import "github.com/mattn/go-runewidth"

// TruncateString truncates s to the given display width, appending an
// ellipsis when anything was cut.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// TruncateAddress shortens a bech32 address to fit width, keeping the
// readable prefix and checksum tail (pokt1abc…wxyz style). Slicing is
// rune-safe so unexpected non-ASCII input never yields broken UTF-8.
func TruncateAddress(addr string, width int) string {
	if runewidth.StringWidth(addr) <= width {
		return addr
	}
	if width < 12 {
		return TruncateString(addr, width)
	}
	const tail = 4
	runes := []rune(addr)
	head := runewidth.Truncate(addr, width-tail-1, "")
	return head + "…" + string(runes[len(runes)-tail:])
}
