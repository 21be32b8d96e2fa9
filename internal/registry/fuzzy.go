package registry

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// setSource exposes command sets to the fuzzy matcher. Each set is matched
// on its name followed by its commands.
type setSource []CommandSet

func (s setSource) String(i int) string {
	return s[i].Name + " " + strings.Join(s[i].Commands, " ")
}

func (s setSource) Len() int { return len(s) }

// Search returns the command sets fuzzy-matching query, best match first.
// An empty query returns every set in stored order.
func (c *Config) Search(query string) []CommandSet {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]CommandSet, len(c.CommandSets))
		copy(out, c.CommandSets)
		return out
	}
	matches := fuzzy.FindFrom(query, setSource(c.CommandSets))
	out := make([]CommandSet, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.CommandSets[m.Index])
	}
	return out
}
