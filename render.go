package logfan

import "fmt"

// Render substitutes args into a printf-style format string. It is the
// formatting half of the logging contract, split out from dispatch so it
// can be tested on its own.
//
// Render never panics. With no arguments the template is returned
// verbatim, so messages containing stray '%' characters pass through
// untouched. An argument mismatch degrades rather than failing: fmt's
// "%!"-style markers are kept where substitution got that far, and if
// formatting fails outright the raw template is returned.
func Render(format string, args ...interface{}) (msg string) {
	if len(args) == 0 {
		return format
	}
	defer func() {
		if recover() != nil {
			msg = format
		}
	}()
	return fmt.Sprintf(format, args...)
}
