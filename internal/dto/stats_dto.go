package dto

// RegistrationStatusCounts breaks a student's registrations down by status.
type RegistrationStatusCounts struct {
	Registered int `json:"registered"`
	Selected   int `json:"selected"`
	Rejected   int `json:"rejected"`
}

// CompanyTypeCounts breaks registrations down by drive tier.
type CompanyTypeCounts struct {
	General    int `json:"general"`
	Dream      int `json:"dream"`
	SuperDream int `json:"super_dream"`
}

// PlacementStatsResponse is the student-facing registration summary.
type PlacementStatsResponse struct {
	TotalRegistrations int                      `json:"total_registrations"`
	ByStatus           RegistrationStatusCounts `json:"by_status"`
	ByCompanyType      CompanyTypeCounts        `json:"by_company_type"`
	PlacementStatus    string                   `json:"placement_status"`
}

// AdminDashboardStatsResponse aggregates portal-wide counters for the admin
// landing page.
type AdminDashboardStatsResponse struct {
	TotalStudents       int64            `json:"total_students"`
	PlacedStudents      int64            `json:"placed_students"`
	ActiveCompanies     int64            `json:"active_companies"`
	StudentsWithArrears int64            `json:"students_with_arrears"`
	AverageCGPA         float64          `json:"average_cgpa"`
	PlacementPercentage float64          `json:"placement_percentage"`
	PlacementBreakdown  map[string]int64 `json:"placement_breakdown"`
}
