package pantone

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithTable replaces the built-in reference table. Entries are copied and
// scanned in the given order.
func WithTable(table []Color) Option {
	return func(m *Matcher) {
		m.source = table
		m.custom = true
	}
}
