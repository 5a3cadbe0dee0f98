package dto

// CreateProgramRequest represents program creation data
type CreateProgramRequest struct {
	ProgramCode string `json:"program_code" binding:"required"`
	ProgramName string `json:"program_name" binding:"required"`
	CollegeCode string `json:"college_code" binding:"required"`
}

// UpdateProgramRequest represents program update data. ProgramCode, when
// set, renames the program; student rows follow via the database.
type UpdateProgramRequest struct {
	ProgramName string `json:"program_name" binding:"required"`
	CollegeCode string `json:"college_code" binding:"required"`
	ProgramCode string `json:"program_code"`
}
