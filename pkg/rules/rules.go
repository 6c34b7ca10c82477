package rules

import (
	"strings"
)

// Rule is a single literal substitution: every occurrence of From in a
// file's content is replaced with To. From is an exact substring, never
// a pattern language.
type Rule struct {
	From string // Literal text to search for
	To   string // Literal text to substitute
}

// Table is an ordered list of rules. Order matters: rules are applied
// sequentially, so text produced by an earlier rule's replacement can
// still be matched by a later rule (cascading). A table holds at most
// one rule per distinct From.
type Table []Rule

// New builds a table from rules in the given order. If the same From
// appears more than once, the earlier entry keeps its position but
// takes the later entry's To, so only one replacement per pattern is
// ever in force.
func New(entries ...Rule) Table {
	t := make(Table, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, r := range entries {
		if i, ok := index[r.From]; ok {
			t[i].To = r.To
			continue
		}
		index[r.From] = len(t)
		t = append(t, r)
	}
	return t
}

// Apply runs every rule against s in table order and returns the
// result. Each rule replaces all non-overlapping occurrences of its
// From, scanning left to right; regions written by a replacement are
// not rescanned within the same rule. The input is never mutated.
func (t Table) Apply(s string) string {
	out, _ := t.ApplyCount(s)
	return out
}

// ApplyCount is Apply plus the total number of occurrences replaced
// across all rules.
func (t Table) ApplyCount(s string) (string, int) {
	count := 0
	for _, r := range t {
		// Skip empty rules
		if r.From == "" {
			continue
		}
		if n := strings.Count(s, r.From); n > 0 {
			count += n
			s = strings.ReplaceAll(s, r.From, r.To)
		}
	}
	return s, count
}
