package dto

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	YearLevel   int    `json:"year_level" binding:"required,gte=1,lte=6"`
	Gender      string `json:"gender"`
	ProgramCode string `json:"program_code" binding:"required"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	YearLevel   int    `json:"year_level" binding:"required,gte=1,lte=6"`
	Gender      string `json:"gender"`
	ProgramCode string `json:"program_code" binding:"required"`
}

// PhotoUploadResponse is returned after a successful student photo upload
type PhotoUploadResponse struct {
	Message  string `json:"message"`
	PhotoURL string `json:"photo_url"`
}
