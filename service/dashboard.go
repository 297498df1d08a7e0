package service

import (
	"time"

	"github.com/AnTengye/accreditation/model"
)

// Dashboard answers every view query from the immutable store. It keeps no
// derived state: each call recomputes from the full set.
type Dashboard struct {
	store                     *ContractStore
	now                       func() time.Time
	topUniversities           int
	topDepartmentUniversities int
}

type Option func(*Dashboard)

// WithClock sets the reference time used for remaining-days status
func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

// WithLimits sets the chart and department card caps
func WithLimits(topUniversities, topDepartmentUniversities int) Option {
	return func(d *Dashboard) {
		d.topUniversities = topUniversities
		d.topDepartmentUniversities = topDepartmentUniversities
	}
}

func NewDashboard(store *ContractStore, opts ...Option) (*Dashboard, error) {
	if store == nil {
		return nil, ErrMissingData
	}
	d := &Dashboard{
		store:                     store,
		now:                       time.Now,
		topUniversities:           15,
		topDepartmentUniversities: 5,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *Dashboard) Now() time.Time {
	return d.now()
}

func (d *Dashboard) Count() int {
	return d.store.Count()
}

// Stats returns the bucket counts shown on the dashboard
func (d *Dashboard) Stats() TimePeriodStats {
	return CalculateTimePeriodStats(d.store.view())
}

func (d *Dashboard) Counts(field Field, limit int) FacetCounts {
	return CountsByField(d.store.view(), field.Selector(), limit)
}

func (d *Dashboard) Groups(field Field) Groups {
	return GroupsByField(d.store.view(), field.Selector())
}

// Charts holds the three rankings of the dashboard view
type Charts struct {
	Universities []FacetCount `json:"universities"`
	Departments  []Share      `json:"departments"`
	Degrees      []FacetCount `json:"degrees"`
}

func (d *Dashboard) Charts() Charts {
	contracts := d.store.view()
	return Charts{
		Universities: CountsByField(contracts, FieldUniversity.Selector(), d.topUniversities).Ranked,
		Departments:  Shares(CountsByField(contracts, FieldDepartment.Selector(), 0).Ranked),
		Degrees:      CountsByField(contracts, FieldDegree.Selector(), 0).Ranked,
	}
}

func (d *Dashboard) Universities(search string) []UniversitySummary {
	return SummarizeUniversities(SearchGroups(d.Groups(FieldUniversity).Ordered, search))
}

func (d *Dashboard) Departments(search string) []DepartmentSummary {
	return SummarizeDepartments(SearchGroups(d.Groups(FieldDepartment).Ordered, search), d.topDepartmentUniversities)
}

func (d *Dashboard) Specializations(search, department string) []SpecializationSummary {
	cards := SummarizeSpecializations(SearchGroups(d.Groups(FieldProgram).Ordered, search))
	return FilterSpecializations(cards, department)
}

// ContractRow is one contract of a view with its derived status
type ContractRow struct {
	Index int `json:"index"`
	model.Contract
	Bucket        model.Bucket `json:"bucket"`
	StatusClass   string       `json:"status_class"`
	StatusLabel   string       `json:"status_label"`
	DaysRemaining *int         `json:"days_remaining"`
}

// ContractView is a snapshot of the filtered contracts view
type ContractView struct {
	Filter ContractFilter `json:"filter"`
	Total  int            `json:"total"`
	Count  int            `json:"count"`
	Rows   []ContractRow  `json:"rows"`
}

func (d *Dashboard) row(i int, c model.Contract, now time.Time) ContractRow {
	r := ContractRow{
		Index:       i,
		Contract:    c,
		Bucket:      ClassifyDateBucket(c.EndDate),
		StatusClass: ClassifyStatus(c.EndDate, now),
		StatusLabel: StatusLabel(c.EndDate, now),
	}
	if days, ok := DaysRemaining(c.EndDate, now); ok {
		r.DaysRemaining = &days
	}
	return r
}

// Contracts applies f to the full set. Rows keep their index in the full set.
func (d *Dashboard) Contracts(f ContractFilter) ContractView {
	now := d.now()
	all := d.store.view()
	matched := matchingIndexes(all, f)
	rows := make([]ContractRow, 0, len(matched))
	for _, i := range matched {
		rows = append(rows, d.row(i, all[i], now))
	}
	return ContractView{Filter: f, Total: len(all), Count: len(rows), Rows: rows}
}

// Contract returns the detail row of the contract at index i of the full set
func (d *Dashboard) Contract(i int) (ContractRow, bool) {
	c, ok := d.store.Get(i)
	if !ok {
		return ContractRow{}, false
	}
	return d.row(i, c, d.now()), true
}

// TimelineView is a snapshot of the timeline view
type TimelineView struct {
	Filter  TimelineFilter  `json:"filter"`
	Count   int             `json:"count"`
	Entries []TimelineEntry `json:"entries"`
}

func (d *Dashboard) Timeline(f TimelineFilter) TimelineView {
	contracts := FilterTimeline(d.store.view(), f)
	return TimelineView{Filter: f, Count: len(contracts), Entries: GroupByEndDate(contracts)}
}

// Facets are the options of the contract filter selects
type Facets struct {
	Universities []string `json:"universities"`
	Departments  []string `json:"departments"`
	Degrees      []string `json:"degrees"`
}

func (d *Dashboard) Facets() Facets {
	contracts := d.store.view()
	return Facets{
		Universities: DistinctValues(contracts, FieldUniversity.Selector()),
		Departments:  DistinctValues(contracts, FieldDepartment.Selector()),
		Degrees:      DistinctValues(contracts, FieldDegree.Selector()),
	}
}
