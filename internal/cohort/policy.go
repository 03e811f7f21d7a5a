package cohort

import (
	"strings"

	"github.com/alexanderramin/atlas/internal/domain"
)

// SkewRule maps a class of courses to the range the male fraction of the
// roster is sampled from.
type SkewRule struct {
	Name  string
	Match func(domain.Course) bool
	Min   float64
	Max   float64
}

// SkewPolicy is an ordered rule table. The first matching rule wins; the
// last rule should match everything.
type SkewPolicy []SkewRule

// Resolve returns the first rule matching c. If nothing matches, the
// balanced default is returned.
func (p SkewPolicy) Resolve(c domain.Course) SkewRule {
	for _, r := range p {
		if r.Match == nil || r.Match(c) {
			return r
		}
	}
	return balancedRule
}

var balancedRule = SkewRule{Name: "balanced", Min: 0.40, Max: 0.60}

// DefaultSkewPolicy returns the three-branch policy: advanced STEM sections
// skew male, gender- and queer-themed sections skew female/non-binary, and
// everything else is balanced.
func DefaultSkewPolicy() SkewPolicy {
	return SkewPolicy{
		{Name: "advanced_stem", Match: isAdvancedSTEM, Min: 0.60, Max: 0.85},
		{Name: "gender_themed", Match: isGenderThemed, Min: 0.10, Max: 0.30},
		balancedRule,
	}
}

func isAdvancedSTEM(c domain.Course) bool {
	return c.Department.IsSTEM() && c.Type == domain.TypeAdvanced
}

var genderTags = map[string]bool{"Gender": true, "LGBTQ+": true}

func isGenderThemed(c domain.Course) bool {
	return strings.Contains(c.Name, "Women") ||
		strings.Contains(c.Name, "Queer") ||
		genderTags[c.Tag]
}

// VocabularyRule selects the word set used to synthesize comments.
type VocabularyRule struct {
	Name  string
	Match func(domain.Course) bool
	Words []string
}

// VocabularyPolicy is an ordered rule table, first match wins.
type VocabularyPolicy []VocabularyRule

// Resolve returns the first rule matching c, falling back to the standard
// vocabulary.
func (p VocabularyPolicy) Resolve(c domain.Course) VocabularyRule {
	for _, r := range p {
		if r.Match == nil || r.Match(c) {
			return r
		}
	}
	return standardRule()
}

// DefaultVocabularyPolicy returns rigor words for advanced non-History
// courses, inclusive words for high-focus courses, and the standard set
// otherwise. The specialised sets always include the standard words.
func DefaultVocabularyPolicy() VocabularyPolicy {
	return VocabularyPolicy{
		{Name: "rigor", Match: isAdvancedNonHistory, Words: union(RigorWords, StandardWords)},
		{Name: "inclusive", Match: isHighFocus, Words: union(InclusiveWords, StandardWords)},
		standardRule(),
	}
}

func standardRule() VocabularyRule {
	return VocabularyRule{Name: "standard", Words: union(StandardWords)}
}

func isAdvancedNonHistory(c domain.Course) bool {
	return c.Type == domain.TypeAdvanced && c.Department != domain.DeptHistory
}

func isHighFocus(c domain.Course) bool {
	return c.Focus == domain.FocusHigh
}

func union(sets ...[]string) []string {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for _, s := range sets {
		for _, w := range s {
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	return out
}
