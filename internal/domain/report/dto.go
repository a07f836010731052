package report

// GapHistogramEntry buckets one competency's ledger rows by gap. Only gaps
// of exactly 1, 2 or 3 are counted; everything else (met, exceeded, or a
// gap of 4+) stays out of every bucket.
type GapHistogramEntry struct {
	CompetencyCode    string `json:"competencyCode"`
	CompetencyName    string `json:"competencyName"`
	Gap1              int    `json:"gap1"`
	Gap2              int    `json:"gap2"`
	Gap3              int    `json:"gap3"`
	TotalGapEmployees int    `json:"totalGapEmployees"`
}

// DetailEntry is one row of the flat employee x competency export feed.
type DetailEntry struct {
	EmployeeNumber        string `json:"employeeNumber"`
	EmployeeName          string `json:"employeeName"`
	CompetencyCode        string `json:"competencyCode"`
	CompetencyName        string `json:"competencyName"`
	CompetencyDescription string `json:"competencyDescription"`
	RequiredScore         int    `json:"requiredScore"`
	ActualScore           int    `json:"actualScore"`
}

type GapRankEntry struct {
	EmployeeNumber string `json:"employeeNumber"`
	EmployeeName   string `json:"employeeName"`
	RequiredScore  int    `json:"requiredScore"`
	ActualScore    int    `json:"actualScore"`
	Gap            int    `json:"gap"`
}

type CompetencyPerformance struct {
	CompetencyCode           string  `json:"competency_code"`
	CompetencyName           string  `json:"competency_name"`
	Description              string  `json:"description"`
	RequiredScore            int     `json:"required_score"`
	AverageScore             float64 `json:"average_score"`
	FulfillmentRate          float64 `json:"fulfillment_rate"`
	EmployeesEvaluated       int     `json:"employees_evaluated"`
	EmployeesMeetingRequired int     `json:"employees_meeting_required"`
	Rank                     int     `json:"rank"`
}

type DepartmentPerformance struct {
	DepartmentCode         string                  `json:"department_code"`
	DepartmentName         string                  `json:"department_name"`
	OverallAverageScore    float64                 `json:"overall_average_score"`
	OverallFulfillmentRate float64                 `json:"overall_fulfillment_rate"`
	Competencies           []CompetencyPerformance `json:"competencies"`
}

type OverallCompetencyPerformance struct {
	Rank                     int     `json:"rank"`
	CompetencyCode           string  `json:"competency_code"`
	CompetencyName           string  `json:"competency_name"`
	Description              string  `json:"description"`
	RequiredScore            int     `json:"required_score"`
	AverageScore             float64 `json:"average_score"`
	FulfillmentRate          float64 `json:"fulfillment_rate"`
	TotalEvaluations         int     `json:"total_evaluations"`
	EmployeesMeetingRequired int     `json:"employees_meeting_required"`
	PerformanceGap           float64 `json:"performance_gap"`
}
