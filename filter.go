package logfan

// NewFilterSink wraps next with severity and category filtering. With no
// options every statement passes through. Different sinks have different
// tolerances, and the dispatcher itself never filters; compose this around
// any sink to give it one.
func NewFilterSink(next Sink, options ...FilterOption) Sink {
	f := &filterSink{next: next, min: Debug}
	for _, option := range options {
		option(f)
	}
	return f
}

// FilterOption sets a parameter for NewFilterSink.
type FilterOption func(*filterSink)

// MinSeverity admits only statements of severity min or above.
func MinSeverity(min Severity) FilterOption {
	return func(f *filterSink) { f.min = min }
}

// AllowCategories admits only statements whose category is among cats.
// Matching is exact and case-sensitive. Multiple AllowCategories options
// accumulate.
func AllowCategories(cats ...Category) FilterOption {
	return func(f *filterSink) {
		if f.allowed == nil {
			f.allowed = make(map[Category]bool, len(cats))
		}
		for _, c := range cats {
			f.allowed[c] = true
		}
	}
}

type filterSink struct {
	next    Sink
	min     Severity
	allowed map[Category]bool // nil admits all categories
}

func (f *filterSink) Log(st Statement) error {
	if st.Severity < f.min {
		return nil
	}
	if f.allowed != nil && !f.allowed[st.Category] {
		return nil
	}
	return f.next.Log(st)
}
