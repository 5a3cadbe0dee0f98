package models

// College represents a college identified by its code
type College struct {
	Code string `json:"college_code" db:"college_code"`
	Name string `json:"college_name" db:"college_name"`
}
