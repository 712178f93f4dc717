package release

import "strings"

// Run is a single CI workflow run as reported by the provider.
type Run struct {
	ID        int64
	Branch    string
	CommitSHA string
	Title     string
	URL       string
}

// MatchTier identifies which matching policy tier selected a run. Lower
// tiers are more trustworthy; the tier is surfaced to operators so fallback
// hits can be audited.
type MatchTier int

const (
	// TierExact means a candidate branch equalled the run's branch.
	TierExact MatchTier = iota
	// TierSuffix means the run's branch ended with "/{candidate}".
	TierSuffix
	// TierSubstring means the raw version appeared in the run's branch or
	// display title (case-insensitive).
	TierSubstring
)

// String returns the tier name used in logs and receipts.
func (t MatchTier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierSuffix:
		return "suffix"
	case TierSubstring:
		return "substring"
	default:
		return "unknown"
	}
}

// Match is a selected run plus how it was selected.
type Match struct {
	Run       Run
	Tier      MatchTier
	Candidate string // the candidate that matched; the raw version for TierSubstring
}

// NormalizeRef strips a "refs/heads/" or "refs/tags/" prefix from a ref.
func NormalizeRef(ref string) string {
	ref = strings.TrimSpace(ref)
	for _, prefix := range []string{"refs/heads/", "refs/tags/"} {
		if strings.HasPrefix(ref, prefix) {
			return ref[len(prefix):]
		}
	}
	return ref
}

// FindMatch selects a run from the provider's result set. Tiers are applied
// strictly in order: every candidate is tried for an exact branch match
// before any suffix matching happens, and substring fallback runs only when
// both structured tiers are exhausted. Within a tier, candidate order wins.
func FindMatch(runs []Run, candidates []string, version string) (*Match, bool) {
	if len(runs) == 0 {
		return nil, false
	}

	for _, candidate := range candidates {
		norm := NormalizeRef(candidate)
		for _, run := range runs {
			branch := NormalizeRef(run.Branch)
			if branch == "" {
				continue
			}
			if branch == norm {
				return &Match{Run: run, Tier: TierExact, Candidate: candidate}, true
			}
		}
	}

	for _, candidate := range candidates {
		norm := NormalizeRef(candidate)
		for _, run := range runs {
			branch := NormalizeRef(run.Branch)
			if branch == "" {
				continue
			}
			if strings.HasSuffix(branch, "/"+norm) {
				return &Match{Run: run, Tier: TierSuffix, Candidate: candidate}, true
			}
		}
	}

	lower := strings.ToLower(strings.TrimSpace(version))
	if lower == "" {
		return nil, false
	}
	for _, run := range runs {
		branch := strings.ToLower(NormalizeRef(run.Branch))
		title := strings.ToLower(run.Title)
		if strings.Contains(branch, lower) || strings.Contains(title, lower) {
			return &Match{Run: run, Tier: TierSubstring, Candidate: version}, true
		}
	}

	return nil, false
}
