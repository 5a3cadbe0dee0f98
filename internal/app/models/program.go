package models

// Program represents a degree program offered by a college
type Program struct {
	Code        string `json:"program_code" db:"program_code"`
	Name        string `json:"program_name" db:"program_name"`
	CollegeCode string `json:"college_code" db:"college_code"`
}
