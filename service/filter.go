package service

import (
	"strings"

	"github.com/AnTengye/accreditation/model"
)

// All is the facet filter value that matches every contract
const All = "all"

// ContractFilter selects the visible contracts of the contracts view.
// Empty facet values behave like All.
type ContractFilter struct {
	SearchText string `form:"search" json:"search"`
	University string `form:"university" json:"university"`
	Department string `form:"department" json:"department"`
	Degree     string `form:"degree" json:"degree"`
}

// Matches reports whether c passes the search text and every facet filter
func (f ContractFilter) Matches(c model.Contract) bool {
	if f.SearchText != "" {
		term := strings.ToLower(f.SearchText)
		if !strings.Contains(strings.ToLower(c.Program), term) &&
			!strings.Contains(strings.ToLower(c.University), term) {
			return false
		}
	}
	return facetMatches(f.University, c.University) &&
		facetMatches(f.Department, c.Management) &&
		facetMatches(f.Degree, c.Degree)
}

func facetMatches(want, got string) bool {
	return want == "" || want == All || want == got
}

// ApplyContractFilter returns the matching contracts in original order. It never
// mutates its input, so running it twice with the same arguments gives the same result.
func ApplyContractFilter(contracts []model.Contract, f ContractFilter) []model.Contract {
	matched := matchingIndexes(contracts, f)
	result := make([]model.Contract, 0, len(matched))
	for _, i := range matched {
		result = append(result, contracts[i])
	}
	return result
}

// matchingIndexes returns the positions of the contracts passing f, ascending
func matchingIndexes(contracts []model.Contract, f ContractFilter) []int {
	result := make([]int, 0, len(contracts))
	for i, c := range contracts {
		if f.Matches(c) {
			result = append(result, i)
		}
	}
	return result
}

// SearchGroups keeps the groups whose key contains text, case-insensitively
func SearchGroups(groups []Group, text string) []Group {
	if text == "" {
		return groups
	}
	term := strings.ToLower(text)
	result := make([]Group, 0, len(groups))
	for _, g := range groups {
		if strings.Contains(strings.ToLower(g.Key), term) {
			result = append(result, g)
		}
	}
	return result
}
