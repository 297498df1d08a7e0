package service

import (
	"testing"

	"github.com/AnTengye/accreditation/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyContractFilterScenario(t *testing.T) {
	contracts := []model.Contract{
		{University: "A", Program: "X", EndDate: model.ParseDate("2024-06-01")},
		{University: "B", Program: "Y", EndDate: model.ParseDate("2025-08-01")},
	}

	got := ApplyContractFilter(contracts, ContractFilter{
		SearchText: "x",
		University: All,
		Department: All,
		Degree:     All,
	})
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].University)
}

func TestApplyContractFilterIdentity(t *testing.T) {
	contracts := sampleContracts()

	for _, f := range []ContractFilter{
		{},
		{University: All, Department: All, Degree: All},
	} {
		assert.Equal(t, contracts, ApplyContractFilter(contracts, f))
	}
}

func TestApplyContractFilterIdempotent(t *testing.T) {
	contracts := sampleContracts()
	f := ContractFilter{SearchText: "engineering", Department: "Engineering"}

	first := ApplyContractFilter(contracts, f)
	second := ApplyContractFilter(contracts, f)
	again := ApplyContractFilter(first, f)

	assert.Equal(t, first, second)
	assert.Equal(t, first, again)
	assert.Len(t, contracts, 6, "input must not be modified")
}

func TestApplyContractFilterFacets(t *testing.T) {
	contracts := sampleContracts()

	tests := []struct {
		name     string
		filter   ContractFilter
		programs []string
	}{
		{
			name:     "search matches university case-insensitively",
			filter:   ContractFilter{SearchText: "QASSIM"},
			programs: []string{"Nursing", "Computer Engineering"},
		},
		{
			name:     "search matches program",
			filter:   ContractFilter{SearchText: "comp"},
			programs: []string{"Computer Science", "Computer Engineering"},
		},
		{
			name:     "university facet",
			filter:   ContractFilter{University: "King Saud University"},
			programs: []string{"Computer Science", "Pharmacy", "Civil Engineering"},
		},
		{
			name:     "department and degree",
			filter:   ContractFilter{Department: "Engineering", Degree: "Bachelor"},
			programs: []string{"Computer Science", "Civil Engineering"},
		},
		{
			name:     "facets are exact",
			filter:   ContractFilter{University: "king saud university"},
			programs: []string{},
		},
		{
			name:     "search combined with facets",
			filter:   ContractFilter{SearchText: "king", Degree: "Master"},
			programs: []string{"Pharmacy"},
		},
		{
			name:     "no match",
			filter:   ContractFilter{SearchText: "astronomy"},
			programs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyContractFilter(contracts, tt.filter)
			programs := make([]string, 0, len(got))
			for _, c := range got {
				programs = append(programs, c.Program)
			}
			assert.Equal(t, tt.programs, programs)
		})
	}
}

func TestApplyContractFilterArabicSearch(t *testing.T) {
	contracts := []model.Contract{
		{University: "جامعة الملك سعود", Program: "علوم الحاسب"},
		{University: "جامعة القصيم", Program: "التمريض"},
	}
	got := ApplyContractFilter(contracts, ContractFilter{SearchText: "القصيم"})
	require.Len(t, got, 1)
	assert.Equal(t, "التمريض", got[0].Program)
}

func TestSearchGroups(t *testing.T) {
	groups := GroupsByField(sampleContracts(), FieldUniversity.Selector()).Ordered

	assert.Len(t, SearchGroups(groups, ""), 3)

	found := SearchGroups(groups, "qassim")
	require.Len(t, found, 1)
	assert.Equal(t, "Qassim University", found[0].Key)

	assert.Empty(t, SearchGroups(groups, "harvard"))
}
