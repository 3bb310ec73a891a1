package logfan

// Debugf logs a debug statement against the General category, capturing
// the caller's call site.
func (d *Dispatcher) Debugf(format string, args ...interface{}) {
	d.Logf(Debug, General, Caller(1), format, args...)
}

// Infof logs an info statement against the General category, capturing the
// caller's call site.
func (d *Dispatcher) Infof(format string, args ...interface{}) {
	d.Logf(Info, General, Caller(1), format, args...)
}

// Warningf logs a warning statement against the General category,
// capturing the caller's call site.
func (d *Dispatcher) Warningf(format string, args ...interface{}) {
	d.Logf(Warning, General, Caller(1), format, args...)
}

// Errorf logs an error statement against the General category, capturing
// the caller's call site.
func (d *Dispatcher) Errorf(format string, args ...interface{}) {
	d.Logf(Error, General, Caller(1), format, args...)
}

// For returns a view of the dispatcher bound to category. The view shares
// the dispatcher's registry; it only fixes the category applied by its
// severity helpers. An empty category binds to General.
func (d *Dispatcher) For(category Category) *CategoryLogger {
	if category == "" {
		category = General
	}
	return &CategoryLogger{d: d, category: category}
}

// CategoryLogger is a Dispatcher view with a fixed category. Values are
// cheap and may be created per call or held by a subsystem.
type CategoryLogger struct {
	d        *Dispatcher
	category Category
}

// Debugf logs a debug statement against the bound category.
func (c *CategoryLogger) Debugf(format string, args ...interface{}) {
	c.d.Logf(Debug, c.category, Caller(1), format, args...)
}

// Infof logs an info statement against the bound category.
func (c *CategoryLogger) Infof(format string, args ...interface{}) {
	c.d.Logf(Info, c.category, Caller(1), format, args...)
}

// Warningf logs a warning statement against the bound category.
func (c *CategoryLogger) Warningf(format string, args ...interface{}) {
	c.d.Logf(Warning, c.category, Caller(1), format, args...)
}

// Errorf logs an error statement against the bound category.
func (c *CategoryLogger) Errorf(format string, args ...interface{}) {
	c.d.Logf(Error, c.category, Caller(1), format, args...)
}
