// Package release contains the pure domain logic for resolving which CI
// workflow run built the native artifacts for a release version: candidate
// branch generation and run matching. No I/O happens here.
package release

import (
	"regexp"
	"strings"
)

// semverLike matches version strings that follow a semantic-version shape,
// with or without a leading "v" (e.g. "1.2.3", "v1.2.3-alpha.1").
var semverLike = regexp.MustCompile(`^v?\d+\.\d+\.\d+.*$`)

// branchPrefixes are the historical release-branch prefixes accumulated
// across workflow migrations, most likely first.
var branchPrefixes = []string{
	"rust",
	"release",
	"rust-release",
	"rust-nse",
	"first-release",
}

// CandidateBranches generates the ordered, deduplicated list of branch names
// to probe for a release version. Generation is pure and deterministic: the
// same version always yields the same list. An empty version yields nil.
//
// Channel-qualified versions ("rust-nse@0.1.0" or "rust-nse:0.1.0") emit
// channel-prefixed candidates before anything else; semver-like versions
// without a leading "v" are also expanded in their "v"-prefixed form, after
// all candidates of the bare form.
func CandidateBranches(version string) []string {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil
	}

	var candidates []string

	bare := version
	if channel, rest, ok := splitChannel(version); ok {
		bare = rest
		candidates = append(candidates,
			channel+"-v"+rest,
			channel+"/v"+rest,
			channel+"-"+rest,
		)
	}

	bases := []string{bare}
	if semverLike.MatchString(bare) && !strings.HasPrefix(bare, "v") {
		bases = append(bases, "v"+bare)
	}

	for _, base := range bases {
		candidates = append(candidates, base)
		candidates = append(candidates, strings.ReplaceAll(base, "-", "/"))
		if hasReservedPrefix(base) {
			continue
		}
		for _, prefix := range branchPrefixes {
			for _, sep := range []string{"-", "/"} {
				candidates = append(candidates, prefix+sep+base)
			}
		}
	}

	return dedupe(candidates)
}

// ExpandTemplates substitutes the version into descriptor branch templates.
// Empty templates (fallback-search-only markers) are skipped. The result is
// deduplicated preserving order.
func ExpandTemplates(templates []string, version string) []string {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil
	}
	var expanded []string
	for _, tmpl := range templates {
		if tmpl == "" {
			continue
		}
		expanded = append(expanded, strings.ReplaceAll(tmpl, "{version}", version))
	}
	return dedupe(expanded)
}

// splitChannel detects a channel qualifier ("channel@version" or
// "channel:version") and splits it. Both halves must be non-empty.
func splitChannel(version string) (channel, bare string, ok bool) {
	idx := strings.IndexAny(version, "@:")
	if idx <= 0 || idx == len(version)-1 {
		return "", "", false
	}
	return version[:idx], version[idx+1:], true
}

// hasReservedPrefix reports whether the base string already starts with one
// of the known release-branch prefixes, in which case templated forms would
// only produce doubled prefixes.
func hasReservedPrefix(base string) bool {
	for _, prefix := range branchPrefixes {
		if strings.HasPrefix(base, prefix+"-") || strings.HasPrefix(base, prefix+"/") {
			return true
		}
	}
	return false
}

func dedupe(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	deduped := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		deduped = append(deduped, candidate)
	}
	return deduped
}
