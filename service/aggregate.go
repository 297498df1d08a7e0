package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/AnTengye/accreditation/model"
)

// Selector extracts one facet value from a contract
type Selector func(model.Contract) string

// Field names a facet that can be grouped or counted over HTTP
type Field string

const (
	FieldUniversity Field = "university"
	FieldDepartment Field = "department"
	FieldDegree     Field = "degree"
	FieldProgram    Field = "program"
)

var ErrUnknownField = errors.New("unknown field")

var fieldSelectors = map[Field]Selector{
	FieldUniversity: func(c model.Contract) string { return c.University },
	FieldDepartment: func(c model.Contract) string { return c.Management },
	FieldDegree:     func(c model.Contract) string { return c.Degree },
	FieldProgram:    func(c model.Contract) string { return c.Program },
}

var fieldAliases = map[string]Field{
	"universities":    FieldUniversity,
	"departments":     FieldDepartment,
	"management":      FieldDepartment,
	"degrees":         FieldDegree,
	"programs":        FieldProgram,
	"specialization":  FieldProgram,
	"specializations": FieldProgram,
}

// ParseField resolves a field name or one of its aliases
func ParseField(s string) (Field, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if _, ok := fieldSelectors[Field(name)]; ok {
		return Field(name), nil
	}
	if f, ok := fieldAliases[name]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Selector returns the extractor for f. Unknown fields select the empty string.
func (f Field) Selector() Selector {
	if sel, ok := fieldSelectors[f]; ok {
		return sel
	}
	return func(model.Contract) string { return "" }
}

// FacetCount is one (value, count) row of a ranking
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetCounts holds the full value->count mapping and the ranking sorted by count
type FacetCounts struct {
	Counts map[string]int `json:"counts"`
	Ranked []FacetCount   `json:"ranked"`
}

// CountsByField counts contracts per facet value. Ranked is sorted by count
// descending, ties kept in discovery order. limit > 0 truncates Ranked only.
func CountsByField(contracts []model.Contract, sel Selector, limit int) FacetCounts {
	counts := make(map[string]int)
	ranked := make([]FacetCount, 0)
	pos := make(map[string]int)

	for _, c := range contracts {
		v := sel(c)
		counts[v]++
		if i, ok := pos[v]; ok {
			ranked[i].Count++
			continue
		}
		pos[v] = len(ranked)
		ranked = append(ranked, FacetCount{Value: v, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return FacetCounts{Counts: counts, Ranked: ranked}
}

// Group is every contract sharing one facet value, in original order
type Group struct {
	Key       string           `json:"key"`
	Contracts []model.Contract `json:"contracts"`
}

// Groups indexes contracts by key and lists the groups by member count descending
type Groups struct {
	Index   map[string][]model.Contract
	Ordered []Group
}

// GroupsByField groups full records by facet value. Every listing uses the same
// order: member count descending, ties in discovery order.
func GroupsByField(contracts []model.Contract, sel Selector) Groups {
	index := make(map[string][]model.Contract)
	var keys []string

	for _, c := range contracts {
		k := sel(c)
		if _, ok := index[k]; !ok {
			keys = append(keys, k)
		}
		index[k] = append(index[k], c)
	}

	ordered := make([]Group, 0, len(keys))
	for _, k := range keys {
		ordered = append(ordered, Group{Key: k, Contracts: index[k]})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Contracts) > len(ordered[j].Contracts)
	})

	return Groups{Index: index, Ordered: ordered}
}

// Lookup returns the members of one group; a miss is an empty slice
func (g Groups) Lookup(key string) []model.Contract {
	if members, ok := g.Index[key]; ok {
		return members
	}
	return []model.Contract{}
}

// DistinctValues returns the sorted set of facet values (filter options)
func DistinctValues(contracts []model.Contract, sel Selector) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, c := range contracts {
		v := sel(c)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// TimelineEntry lists the contracts ending on one date
type TimelineEntry struct {
	Date      string           `json:"date"`
	Bucket    model.Bucket     `json:"bucket"`
	Contracts []model.Contract `json:"contracts"`
}

// GroupByEndDate groups contracts by end date, ascending. Unknown dates come last,
// grouped by their raw text.
func GroupByEndDate(contracts []model.Contract) []TimelineEntry {
	groups := GroupsByField(contracts, func(c model.Contract) string { return c.EndDate.String() })

	entries := make([]TimelineEntry, 0, len(groups.Ordered))
	for _, g := range groups.Ordered {
		entries = append(entries, TimelineEntry{
			Date:      g.Key,
			Bucket:    ClassifyDateBucket(g.Contracts[0].EndDate),
			Contracts: g.Contracts,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ui, uj := entries[i].Bucket == model.BucketUnknown, entries[j].Bucket == model.BucketUnknown
		if ui != uj {
			return uj
		}
		return entries[i].Date < entries[j].Date
	})
	return entries
}
