package service

import (
	"math"

	"github.com/AnTengye/accreditation/model"
)

// UniversitySummary is the card data of one university
type UniversitySummary struct {
	University string       `json:"university"`
	Count      int          `json:"count"`
	Degrees    []FacetCount `json:"degrees"`
}

// DepartmentSummary is the card data of one department
type DepartmentSummary struct {
	Department      string       `json:"department"`
	Count           int          `json:"count"`
	TopUniversities []FacetCount `json:"top_universities"`
}

// SpecializationSummary is the card data of one program. Degree and Management
// come from the first contract of the group.
type SpecializationSummary struct {
	Program      string `json:"program"`
	Count        int    `json:"count"`
	Universities int    `json:"universities"`
	Degree       string `json:"degree"`
	Management   string `json:"management"`
}

// Share is a ranking row with its percentage of the total, rounded to one decimal
type Share struct {
	FacetCount
	Percent float64 `json:"percent"`
}

func SummarizeUniversities(groups []Group) []UniversitySummary {
	degree := FieldDegree.Selector()
	result := make([]UniversitySummary, 0, len(groups))
	for _, g := range groups {
		result = append(result, UniversitySummary{
			University: g.Key,
			Count:      len(g.Contracts),
			Degrees:    CountsByField(g.Contracts, degree, 0).Ranked,
		})
	}
	return result
}

func SummarizeDepartments(groups []Group, topUniversities int) []DepartmentSummary {
	university := FieldUniversity.Selector()
	result := make([]DepartmentSummary, 0, len(groups))
	for _, g := range groups {
		result = append(result, DepartmentSummary{
			Department:      g.Key,
			Count:           len(g.Contracts),
			TopUniversities: CountsByField(g.Contracts, university, topUniversities).Ranked,
		})
	}
	return result
}

func SummarizeSpecializations(groups []Group) []SpecializationSummary {
	university := FieldUniversity.Selector()
	result := make([]SpecializationSummary, 0, len(groups))
	for _, g := range groups {
		if len(g.Contracts) == 0 {
			continue
		}
		first := g.Contracts[0]
		result = append(result, SpecializationSummary{
			Program:      g.Key,
			Count:        len(g.Contracts),
			Universities: len(CountsByField(g.Contracts, university, 0).Counts),
			Degree:       first.Degree,
			Management:   first.Management,
		})
	}
	return result
}

// FilterSpecializations keeps the cards owned by department; "" or All keeps every card
func FilterSpecializations(cards []SpecializationSummary, department string) []SpecializationSummary {
	if department == "" || department == All {
		return cards
	}
	result := make([]SpecializationSummary, 0, len(cards))
	for _, c := range cards {
		if c.Management == department {
			result = append(result, c)
		}
	}
	return result
}

// Shares converts a ranking into percentages of its own total
func Shares(ranked []FacetCount) []Share {
	total := 0
	for _, r := range ranked {
		total += r.Count
	}
	result := make([]Share, 0, len(ranked))
	for _, r := range ranked {
		var pct float64
		if total > 0 {
			pct = math.Round(float64(r.Count)/float64(total)*1000) / 10
		}
		result = append(result, Share{FacetCount: r, Percent: pct})
	}
	return result
}

// DatasetSummary is the overview printed after a data set is loaded or converted
type DatasetSummary struct {
	Total           int             `json:"total"`
	Universities    int             `json:"universities"`
	TopUniversities []FacetCount    `json:"top_universities"`
	Departments     []FacetCount    `json:"departments"`
	Degrees         []FacetCount    `json:"degrees"`
	Periods         TimePeriodStats `json:"periods"`
}

func Summarize(contracts []model.Contract, topUniversities int) DatasetSummary {
	unis := CountsByField(contracts, FieldUniversity.Selector(), topUniversities)
	return DatasetSummary{
		Total:           len(contracts),
		Universities:    len(unis.Counts),
		TopUniversities: unis.Ranked,
		Departments:     CountsByField(contracts, FieldDepartment.Selector(), 0).Ranked,
		Degrees:         CountsByField(contracts, FieldDegree.Selector(), 0).Ranked,
		Periods:         CalculateTimePeriodStats(contracts),
	}
}
