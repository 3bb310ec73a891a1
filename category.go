package logfan

import "strings"

// Category groups log statements by subsystem. Categories are independent
// of severity; any string is a valid category and call sites share them
// freely.
type Category string

// General is the category applied when a caller does not specify one.
const General Category = "General"

// Tag returns the bracketed, upper-cased form used by the default sinks:
// Category("Network").Tag() == "[NETWORK]". An empty category tags as
// General.
func (c Category) Tag() string {
	if c == "" {
		c = General
	}
	return "[" + strings.ToUpper(string(c)) + "]"
}
