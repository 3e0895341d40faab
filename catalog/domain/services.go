package domain

// MergeServiceRefs deduplicates refs by (id, version). The first occurrence
// of each key wins and the original order is preserved; later duplicates are
// silently dropped.
func MergeServiceRefs(refs []ServiceRef) []ServiceRef {
	if len(refs) == 0 {
		return refs
	}
	seen := make(map[string]bool, len(refs))
	out := make([]ServiceRef, 0, len(refs))
	for _, ref := range refs {
		key := ref.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ref)
	}
	return out
}

// AddServiceRef appends ref to existing unless an entry with the same
// (id, version) is already present, in which case the list is returned
// unchanged.
func AddServiceRef(existing []ServiceRef, ref ServiceRef) []ServiceRef {
	for _, e := range existing {
		if e.Key() == ref.Key() {
			return existing
		}
	}
	return append(existing, ref)
}
