package dto

// CalculateGpaRequest carries parallel grade/credit lists. Input checks
// live in the calculator itself so the saved-course path gets them too.
type CalculateGpaRequest struct {
	Grades  []string  `json:"grades"`
	Credits []float64 `json:"credits"`
}

type CalculateGpaResponse struct {
	Success        bool    `json:"success"`
	Gpa            float64 `json:"gpa"`
	TotalCredits   float64 `json:"total_credits"`
	TotalPoints    float64 `json:"total_points"`
	Classification string  `json:"classification"`
	GradesCount    int     `json:"grades_count"`
}
