package dto

import "github.com/smarthire/placement-api/internal/eligibility"

// CompanyEligibility pairs a drive with the verdict for one student.
type CompanyEligibility struct {
	Company        CompanyResponse `json:"company"`
	IsEligible     bool            `json:"isEligible"`
	Checks         map[string]bool `json:"checks"`
	FailedCriteria []string        `json:"failedCriteria"`
}

// NewCompanyEligibility pairs a projected drive with an engine verdict.
func NewCompanyEligibility(company CompanyResponse, result eligibility.Result) CompanyEligibility {
	return CompanyEligibility{
		Company:        company,
		IsEligible:     result.IsEligible,
		Checks:         result.Checks,
		FailedCriteria: result.FailedCriteria,
	}
}

// EligibilitySummary aggregates verdicts across all open drives.
type EligibilitySummary struct {
	TotalCompanies        int `json:"total_companies"`
	EligibleCount         int `json:"eligible_count"`
	NotEligibleCount      int `json:"not_eligible_count"`
	EligibilityPercentage int `json:"eligibility_percentage"`
}

// EligibilityReportResponse is the per-student eligibility breakdown across
// every open drive.
type EligibilityReportResponse struct {
	Student     StudentSummary       `json:"student"`
	Summary     EligibilitySummary   `json:"summary"`
	Eligible    []CompanyEligibility `json:"eligible"`
	NotEligible []CompanyEligibility `json:"not_eligible"`
}
