package discount

import (
	"strings"
	"time"
)

// Reason strings shown to office staff. The summary joins them with
// newlines in a fixed order: activity, dates, limits.
const (
	ReasonValid        = "Discount is currently valid"
	ReasonInactive     = "Discount is currently inactive"
	ReasonTooEarly     = "It's too early to use this promotion"
	ReasonExpired      = "Discount has expired"
	ReasonLimitReached = "Discount's limit has been reached"
)

// Evaluate checks whether the discount is usable on the given day and
// returns the verdict with the reasons it fails, in fixed order.
func Evaluate(d *Discount, today time.Time) (bool, []string) {
	var reasons []string

	if ok, reason := checkIfActive(d); !ok {
		reasons = append(reasons, reason)
	}
	if ok, reason := checkValidationDate(d, today); !ok {
		reasons = append(reasons, reason)
	}
	if ok, reason := checkLimits(d); !ok {
		reasons = append(reasons, reason)
	}

	return len(reasons) == 0, reasons
}

// Refresh recomputes the cached validity flag and the summary.
// Called on every save, before the row is written.
func Refresh(d *Discount, today time.Time) {
	valid, reasons := Evaluate(d, today)
	d.IsCurrentlyValid = valid
	if valid {
		d.WhyInvalidSummary = ReasonValid
	} else {
		d.WhyInvalidSummary = strings.Join(reasons, "\n")
	}
}

// checkIfActive checks the manual on/off switch.
func checkIfActive(d *Discount) (bool, string) {
	if !d.IsActive {
		return false, ReasonInactive
	}
	return true, ""
}

// checkValidationDate checks if the discount is up to date.
// A window can fail for at most one reason: either it has not opened
// yet or it has already closed.
func checkValidationDate(d *Discount, today time.Time) (bool, string) {
	day := truncateToDay(today)

	if d.ValidSince != nil && day.Before(truncateToDay(*d.ValidSince)) {
		return false, ReasonTooEarly
	}
	if d.ValidTo != nil && day.After(truncateToDay(*d.ValidTo)) {
		return false, ReasonExpired
	}
	return true, ""
}

// checkLimits checks if the discount has any uses left.
// An absent limit on a limited discount means a cap of 0.
func checkLimits(d *Discount) (bool, string) {
	if d.IsLimited && d.EffectiveLimit() <= d.UsedCounter {
		return false, ReasonLimitReached
	}
	return true, ""
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
