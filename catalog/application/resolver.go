package application

import "github.com/XaaXaaX/sdk/catalog/domain"

// ResolvedLocation identifies which stored snapshot satisfies a version
// request. Version is the stored version string that matched; Historical is
// true when the match lives under the versioned directory rather than at the
// current location.
type ResolvedLocation struct {
	Version    string
	Historical bool
}

// Resolve decides which stored snapshot satisfies the requested version
// token. currentVersion is empty when no current document exists.
//
// An empty or "latest" token resolves to the current location only; a
// resource that exists purely as historical snapshots does not satisfy
// "latest". Exact tokens match current first, then historical. Range tokens
// ("0.0.x", "1.x", "*", partial prefixes) match current first, otherwise the
// highest-precedence satisfying historical version. Tokens that are neither
// a numeric version nor a range never resolve.
//
// Resolve is a pure lookup: the second return is false on no match, never an
// error.
func Resolve(requested, currentVersion string, historical []string) (ResolvedLocation, bool) {
	if requested == "" || requested == "latest" {
		if currentVersion == "" {
			return ResolvedLocation{}, false
		}
		return ResolvedLocation{Version: currentVersion}, true
	}

	// Range tokens never take the exact-match path: CompareVersions
	// zero-fills non-numeric segments, so "1.x" would otherwise collide
	// with any stored version that zero-fills to the same triple instead
	// of preferring the highest-precedence range match.
	if domain.IsRangeToken(requested) {
		if currentVersion != "" && domain.MatchesRange(currentVersion, requested) {
			return ResolvedLocation{Version: currentVersion}, true
		}
		best := ""
		for _, v := range historical {
			if !domain.MatchesRange(v, requested) {
				continue
			}
			if best == "" || domain.CompareVersions(v, best) > 0 {
				best = v
			}
		}
		if best != "" {
			return ResolvedLocation{Version: best, Historical: true}, true
		}
		return ResolvedLocation{}, false
	}

	if !domain.IsVersion(requested) {
		return ResolvedLocation{}, false
	}
	if currentVersion != "" && domain.CompareVersions(currentVersion, requested) == 0 {
		return ResolvedLocation{Version: currentVersion}, true
	}
	for _, v := range historical {
		if domain.CompareVersions(v, requested) == 0 {
			return ResolvedLocation{Version: v, Historical: true}, true
		}
	}

	return ResolvedLocation{}, false
}
