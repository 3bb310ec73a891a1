package logfan

// A Statement is one dispatched log event. Statements are built once per
// log call, delivered to every registered sink, then discarded; sinks must
// not mutate them.
type Statement struct {
	Severity Severity
	Category Category
	Site     CallSite
	Message  string
}

// Line returns the default rendered form used by the writer and terminal
// sinks: "[TAG] function(line) message". Sinks may ignore it and format
// statements their own way.
func (s Statement) Line() string {
	return s.Category.Tag() + " " + s.Site.String() + " " + s.Message
}
