package dto

// CreateCollegeRequest represents college creation data
type CreateCollegeRequest struct {
	CollegeCode string `json:"college_code" binding:"required"`
	CollegeName string `json:"college_name" binding:"required"`
}

// UpdateCollegeRequest represents college update data. CollegeCode, when
// set, renames the college; dependent program rows follow via the database.
type UpdateCollegeRequest struct {
	CollegeName string `json:"college_name" binding:"required"`
	CollegeCode string `json:"college_code"`
}
