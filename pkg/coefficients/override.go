package coefficients

// LabelOverride carries user-supplied display labels for either
// predictor rows or model columns. Exactly one of the two forms is
// populated: a positional list assigned by row order, or a keyed map
// matched by coefficient identity.
type LabelOverride struct {
	positional []string
	keyed      map[string]string
}

// Positional creates a positional label override. The list length
// must equal the number of displayed rows after term filtering, or
// reconciliation fails with a configuration error.
func Positional(labels ...string) *LabelOverride {
	return &LabelOverride{positional: labels}
}

// Keyed creates a keyed label override. A superset of keys is
// allowed; unmatched keys are silently ignored and order is
// irrelevant.
func Keyed(labels map[string]string) *LabelOverride {
	keyed := make(map[string]string, len(labels))
	for k, v := range labels {
		keyed[k] = v
	}
	return &LabelOverride{keyed: keyed}
}

// IsPositional reports whether the override assigns labels by position.
func (o *LabelOverride) IsPositional() bool {
	return o != nil && o.positional != nil
}

// IsKeyed reports whether the override matches labels by identity.
func (o *LabelOverride) IsKeyed() bool {
	return o != nil && o.keyed != nil
}

// Len returns the number of labels in a positional override.
func (o *LabelOverride) Len() int {
	if o == nil {
		return 0
	}
	return len(o.positional)
}

// At returns the i-th positional label.
func (o *LabelOverride) At(i int) string {
	return o.positional[i]
}

// Lookup returns the keyed label for the given identity.
func (o *LabelOverride) Lookup(term string) (string, bool) {
	if o == nil || o.keyed == nil {
		return "", false
	}
	label, ok := o.keyed[term]
	return label, ok
}

// TermFilter restricts the unified row set to an explicit keep-set or
// excludes an explicit remove-set. The two forms are mutually
// exclusive; supplying both is a configuration error.
type TermFilter struct {
	keep   []string
	remove []string
}

// Keep creates a filter restricting rows to exactly the given
// identities, in their original relative order.
func Keep(terms ...string) *TermFilter {
	return &TermFilter{keep: terms}
}

// Remove creates a filter excluding the given identities.
func Remove(terms ...string) *TermFilter {
	return &TermFilter{remove: terms}
}

// HasKeep reports whether a keep-set is present.
func (f *TermFilter) HasKeep() bool {
	return f != nil && f.keep != nil
}

// HasRemove reports whether a remove-set is present.
func (f *TermFilter) HasRemove() bool {
	return f != nil && f.remove != nil
}

// Keeps reports whether the given term survives the filter.
func (f *TermFilter) Keeps(term string) bool {
	if f == nil {
		return true
	}
	if f.keep != nil {
		for _, t := range f.keep {
			if t == term {
				return true
			}
		}
		return false
	}
	for _, t := range f.remove {
		if t == term {
			return false
		}
	}
	return true
}

// WithKeep sets the keep-set on an existing filter. Used by callers
// that build filters incrementally from configuration.
func (f *TermFilter) WithKeep(terms ...string) *TermFilter {
	f.keep = terms
	return f
}

// WithRemove sets the remove-set on an existing filter.
func (f *TermFilter) WithRemove(terms ...string) *TermFilter {
	f.remove = terms
	return f
}
