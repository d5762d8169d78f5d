package cache

// reportKeyVersion is bumped whenever the report layout changes so that old
// entries stop matching.
const reportKeyVersion = 1

// Keyer builds cache keys.
type Keyer interface {
	// ReportKey identifies the finished report for an alphabet size.
	ReportKey(symbols int) string
}

// DefaultKeyer is the unscoped Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the unscoped Keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ReportKey implements Keyer.
func (DefaultKeyer) ReportKey(symbols int) string {
	return hashKey("report", reportKeyVersion, symbols)
}

// ScopedKeyer wraps a Keyer with a prefix, e.g. to keep reports produced by
// different builds apart.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.Version+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ReportKey implements Keyer.
func (k *ScopedKeyer) ReportKey(symbols int) string {
	return k.prefix + k.inner.ReportKey(symbols)
}
