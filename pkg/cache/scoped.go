package cache

// ScopedKeyer prefixes every key of an inner Keyer. Calendars fetched with a
// token include the viewer's private contributions, so they are scoped by a
// hash of the token and never served to another viewer.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default scheme when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ViewerScope returns a prefix derived from an API token, or "" for
// anonymous access.
func ViewerScope(token string) string {
	if token == "" {
		return ""
	}
	return "viewer:" + Hash([]byte(token))[:12] + ":"
}

func (k *ScopedKeyer) CalendarKey(login string) string {
	return k.prefix + k.inner.CalendarKey(login)
}

func (k *ScopedKeyer) RenderKey(login string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(login, opts)
}
