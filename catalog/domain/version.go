package domain

import (
	"strconv"
	"strings"
)

// CompareVersions compares two semver-formatted strings numerically,
// segment by segment. Returns -1 if a < b, 0 if equal, 1 if a > b.
// A leading "v" is ignored and missing segments are treated as 0, so
// "0.30" equals "0.30.0" and "v1.0.0" equals "1.0.0".
func CompareVersions(a, b string) int {
	as := versionSegments(a)
	bs := versionSegments(b)
	for i := 0; i < 3; i++ {
		if as[i] < bs[i] {
			return -1
		}
		if as[i] > bs[i] {
			return 1
		}
	}
	return 0
}

// IsVersion reports whether s is a purely numeric version like "1", "0.30"
// or "1.2.3", with an optional leading "v".
func IsVersion(s string) bool {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) > 3 {
		return false
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return false
		}
	}
	return true
}

// IsRangeToken reports whether token is a semver-range request rather than an
// exact version: it contains wildcard segments ("0.0.x", "1.*"), is a bare
// wildcard ("*"), or is a partial version ("0.0").
func IsRangeToken(token string) bool {
	parts := strings.Split(strings.TrimPrefix(token, "v"), ".")
	if len(parts) < 3 {
		return true
	}
	for _, p := range parts {
		if isWildcard(p) {
			return true
		}
	}
	return false
}

// MatchesRange reports whether version satisfies the range token. Wildcard
// segments match any value; omitted trailing segments are wildcards, so
// "0.0" behaves as "0.0.x" and "1" as "1.x.x".
func MatchesRange(version, token string) bool {
	vs := versionSegments(version)
	parts := strings.Split(strings.TrimPrefix(token, "v"), ".")
	for i := 0; i < 3; i++ {
		if i >= len(parts) || isWildcard(parts[i]) {
			continue
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil || n != vs[i] {
			return false
		}
	}
	return true
}

func isWildcard(segment string) bool {
	return segment == "x" || segment == "X" || segment == "*"
}

// versionSegments parses up to three numeric segments, treating missing or
// malformed ones as 0.
func versionSegments(v string) [3]int {
	var out [3]int
	parts := strings.SplitN(strings.TrimPrefix(strings.TrimSpace(v), "v"), ".", 3)
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		out[i] = n
	}
	return out
}
