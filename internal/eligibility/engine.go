// Package eligibility implements the single shared eligibility engine used by
// every read path. It is a pure function over (student profile, drive
// criteria): no storage access, deterministic, safe for concurrent use.
package eligibility

import (
	"errors"
	"fmt"

	"github.com/smarthire/placement-api/internal/models"
)

// Criterion names, also the keys of Result.Checks. FailedCriteria preserves
// this order.
const (
	CheckCGPA              = "cgpa"
	CheckLastSemGPA        = "lastSemGpa"
	CheckArrears           = "arrears"
	CheckTenthPercentage   = "tenthPercentage"
	CheckTwelfthPercentage = "twelfthPercentage"
	CheckAge               = "age"
	CheckHigherStudies     = "higherStudies"
	CheckInternship        = "internship"
)

var checkOrder = []string{
	CheckCGPA,
	CheckLastSemGPA,
	CheckArrears,
	CheckTenthPercentage,
	CheckTwelfthPercentage,
	CheckAge,
	CheckHigherStudies,
	CheckInternship,
}

// ErrInvalidCriteria flags a criteria set that cannot be evaluated.
var ErrInvalidCriteria = errors.New("invalid eligibility criteria")

// Result is the verdict for one (student, criteria) pair.
type Result struct {
	IsEligible     bool            `json:"isEligible"`
	Checks         map[string]bool `json:"checks"`
	FailedCriteria []string        `json:"failedCriteria"`
}

// Evaluate runs all eight checks independently and AND-combines them.
//
// Unset numeric fields resolve to zero on both sides, so an absent minimum
// does not constrain. That convention is deliberate and load-bearing: it
// cannot distinguish "no minimum intended" from "threshold not entered yet",
// and callers must not tighten it.
func Evaluate(student models.Student, criteria models.EligibilityCriteria) Result {
	maxAge := criteria.MaxAge
	if maxAge == 0 {
		maxAge = 100
	}
	// An unset student age passes the upper bound, matching the historical
	// behaviour of treating missing age as 100 there and 0 on the lower bound.
	ageForUpper := student.Age
	if ageForUpper == 0 {
		ageForUpper = 100
	}

	checks := map[string]bool{
		CheckCGPA:              student.CGPA >= criteria.MinCGPA,
		CheckLastSemGPA:        student.LastSemesterGPA() >= criteria.MinLastSemGPA,
		CheckArrears:           student.Arrears <= criteria.MaxArrears,
		CheckTenthPercentage:   student.TenthPercentage >= criteria.MinTenthPercentage,
		CheckTwelfthPercentage: student.TwelfthPercentage >= criteria.MinTwelfthPercentage,
		CheckAge:               student.Age >= criteria.MinAge && ageForUpper <= maxAge,
		CheckHigherStudies:     criteria.AllowHigherStudies || !student.HigherStudies,
		CheckInternship:        !criteria.RequireInternship || student.Internship,
	}

	result := Result{IsEligible: true, Checks: checks}
	for _, name := range checkOrder {
		if !checks[name] {
			result.IsEligible = false
			result.FailedCriteria = append(result.FailedCriteria, name)
		}
	}

	return result
}

// ValidateCriteria rejects criteria sets a drive must never carry. It guards
// admin input at posting time; Evaluate itself assumes valid criteria.
func ValidateCriteria(c models.EligibilityCriteria) error {
	if c.MinCGPA < 0 || c.MinCGPA > 10 {
		return fmt.Errorf("%w: minCgpa must be within [0,10]", ErrInvalidCriteria)
	}
	if c.MinLastSemGPA < 0 || c.MinLastSemGPA > 10 {
		return fmt.Errorf("%w: minLastSemGpa must be within [0,10]", ErrInvalidCriteria)
	}
	if c.MaxArrears < 0 {
		return fmt.Errorf("%w: maxArrears must not be negative", ErrInvalidCriteria)
	}
	if c.MinTenthPercentage < 0 || c.MinTenthPercentage > 100 {
		return fmt.Errorf("%w: minTenthPercentage must be within [0,100]", ErrInvalidCriteria)
	}
	if c.MinTwelfthPercentage < 0 || c.MinTwelfthPercentage > 100 {
		return fmt.Errorf("%w: minTwelfthPercentage must be within [0,100]", ErrInvalidCriteria)
	}
	if c.MinAge < 0 || c.MaxAge < 0 {
		return fmt.Errorf("%w: age bounds must not be negative", ErrInvalidCriteria)
	}
	if c.MaxAge != 0 && c.MaxAge < c.MinAge {
		return fmt.Errorf("%w: maxAge must not be below minAge", ErrInvalidCriteria)
	}
	return nil
}
