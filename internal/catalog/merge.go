package catalog

import (
	"regexp"
	"strings"

	"github.com/Zoli1212/awsflow/internal/entity"
)

// Key identifies one catalog row. Matches are exact, case-sensitive string
// comparisons on both parts.
type Key struct {
	Category string
	Task     string
}

// PriceMap maps catalog keys to their priced rows.
type PriceMap map[Key]entity.PriceEntry

// NewPriceMap indexes a list of entries by (category, task). Later entries
// with a duplicate key overwrite earlier ones.
func NewPriceMap(entries []entity.PriceEntry) PriceMap {
	m := make(PriceMap, len(entries))
	for _, e := range entries {
		m[Key{Category: e.Category, Task: e.Task}] = e
	}
	return m
}

// Merge layers the tenant catalog over the global one: a tenant row always
// replaces a global row sharing its key, wholesale, never field by field.
// Empty inputs yield an empty map.
func Merge(tenant, global []entity.PriceEntry) PriceMap {
	m := make(PriceMap, len(tenant)+len(global))
	for _, e := range global {
		m[Key{Category: e.Category, Task: e.Task}] = e
	}
	for _, e := range tenant {
		m[Key{Category: e.Category, Task: e.Task}] = e
	}
	return m
}

// Lookup returns the entry for (category, task), if any.
func (m PriceMap) Lookup(category, task string) (entity.PriceEntry, bool) {
	e, ok := m[Key{Category: category, Task: task}]
	return e, ok
}

var leadingMarkup = regexp.MustCompile(`^\*+\s*`)

// CleanTaskName strips leading asterisk markup and surrounding whitespace
// from a task name before catalog lookups.
func CleanTaskName(name string) string {
	return strings.TrimSpace(leadingMarkup.ReplaceAllString(name, ""))
}
