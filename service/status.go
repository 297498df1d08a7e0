package service

import (
	"fmt"
	"math"
	"time"

	"github.com/AnTengye/accreditation/model"
)

const (
	// WarningDays is shared by ClassifyStatus and StatusLabel
	WarningDays = 180
	labelDays   = 30
)

// UnknownPlaceholder is shown in place of values derived from a missing date
const UnknownPlaceholder = "-"

// DaysRemaining returns floor((end - now) / 24h). ok is false for an unknown end date.
func DaysRemaining(end model.Date, now time.Time) (days int, ok bool) {
	if !end.Valid {
		return 0, false
	}
	d := end.Time.Sub(now).Hours() / 24
	return int(math.Floor(d)), true
}

// ClassifyStatus returns expired, warning, active, or unknown for a missing date
func ClassifyStatus(end model.Date, now time.Time) string {
	days, ok := DaysRemaining(end, now)
	switch {
	case !ok:
		return model.StatusUnknown
	case days < 0:
		return model.StatusExpired
	case days < WarningDays:
		return model.StatusWarning
	default:
		return model.StatusActive
	}
}

// StatusLabel is the human readable counterpart of ClassifyStatus
func StatusLabel(end model.Date, now time.Time) string {
	days, ok := DaysRemaining(end, now)
	switch {
	case !ok:
		return UnknownPlaceholder
	case days < 0:
		return "expired"
	case days < labelDays:
		return fmt.Sprintf("%d days remaining", days)
	case days < WarningDays:
		return fmt.Sprintf("%d months remaining", days/labelDays)
	default:
		return "active"
	}
}
