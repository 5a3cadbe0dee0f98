package models

// Student represents an enrolled student
type Student struct {
	StudentID   string  `json:"student_id" db:"student_id"`
	FirstName   string  `json:"first_name" db:"first_name"`
	LastName    string  `json:"last_name" db:"last_name"`
	YearLevel   int     `json:"year_level" db:"year_level"`
	Gender      string  `json:"gender" db:"gender"`
	ProgramCode string  `json:"program_code" db:"program_code"`
	PhotoURL    *string `json:"photo_url" db:"photo_url"`
}
