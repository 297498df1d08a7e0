package model

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by the data set
const DateLayout = "2006-01-02"

// Date is a calendar date read from the data set.
// Valid is false when the source value was empty or could not be parsed;
// Raw keeps the original text either way.
type Date struct {
	Time  time.Time
	Raw   string
	Valid bool
}

// ParseDate parses an ISO calendar date. Failures yield an invalid Date, never an error.
func ParseDate(s string) Date {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Date{}
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Date{Raw: raw}
	}
	return Date{Time: t, Raw: raw, Valid: true}
}

// String returns the ISO date, the raw text for unparseable values, or "" when absent
func (d Date) String() string {
	if d.Valid {
		return d.Time.Format(DateLayout)
	}
	return d.Raw
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Non-string values are kept as raw text and treated as unparseable
		*d = Date{Raw: string(data)}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

// Contract represents one accreditation contract record
type Contract struct {
	University string `json:"university" validate:"required"`
	Management string `json:"management" validate:"required"` // department
	Program    string `json:"program" validate:"required"`    // specialization
	Degree     string `json:"degree"`
	StartDate  Date   `json:"startDate"`
	EndDate    Date   `json:"endDate"`

	// Display-only fields
	Progress           string `json:"progress,omitempty"`
	Status             string `json:"status,omitempty"`
	DocReceived        string `json:"docReceived,omitempty"`
	DocDate            Date   `json:"docDate"`
	UpdatedDocReceived string `json:"updatedDocReceived,omitempty"`
	UpdatedDocDate     Date   `json:"updatedDocDate"`
	VisitScheduled     string `json:"visitScheduled,omitempty"`
	VisitDate          Date   `json:"visitDate"`
}

// Bucket is an expiration time window of a contract
type Bucket string

const (
	BucketEnded      Bucket = "ended"
	BucketH1_2025    Bucket = "h1_2025"
	BucketH2_2025    Bucket = "h2_2025"
	BucketFuture2026 Bucket = "future_2026"
	BucketUnknown    Bucket = "unknown"
)

// Buckets lists every bucket in timeline order
var Buckets = []Bucket{BucketEnded, BucketH1_2025, BucketH2_2025, BucketFuture2026, BucketUnknown}

// ContractStatus constants
const (
	StatusExpired = "expired"
	StatusWarning = "warning"
	StatusActive  = "active"
	StatusUnknown = "unknown"
)
