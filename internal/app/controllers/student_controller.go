package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/app/models/dto"
	"github.com/campusops/ssis/internal/app/repositories"
	"github.com/campusops/ssis/internal/app/services"
	"github.com/campusops/ssis/internal/middleware"
	"github.com/campusops/ssis/internal/pkg/helpers"
)

// StudentController handles student-related endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents returns a paginated student listing. Repeated year_level and
// gender parameters act as OR filters; program_code narrows to one program.
func (c *StudentController) ListStudents(ctx *gin.Context) {
	page, perPage := helpers.ParsePaginationParams(ctx)

	var yearLevels []int
	for _, raw := range ctx.QueryArray("year_level") {
		level, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("year_level must be an integer"))
			return
		}
		yearLevels = append(yearLevels, level)
	}

	params := repositories.StudentListParams{
		ListParams: repositories.ListParams{
			Page:    page,
			PerPage: perPage,
			Search:  ctx.Query("search"),
			SortBy:  ctx.Query("sort_by"),
			Order:   ctx.Query("order"),
		},
		ProgramCode: ctx.Query("program_code"),
		YearLevels:  yearLevels,
		Genders:     ctx.QueryArray("gender"),
	}

	students, total, err := c.studentService.ListStudents(ctx.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Data:       students,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: helpers.TotalPages(total, params.PerPage),
	})
}

// GetStudent returns a single student by ID
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// CreateStudent creates a new student
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("student_id, first_name, last_name, year_level and program_code are required"))
		return
	}

	student := &models.Student{
		StudentID:   req.StudentID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		YearLevel:   req.YearLevel,
		Gender:      req.Gender,
		ProgramCode: req.ProgramCode,
	}
	if err := c.studentService.CreateStudent(ctx.Request.Context(), student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// UpdateStudent updates a student's editable fields
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("first_name, last_name, year_level and program_code are required"))
		return
	}

	id := ctx.Param("id")
	student := &models.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		YearLevel:   req.YearLevel,
		Gender:      req.Gender,
		ProgramCode: req.ProgramCode,
	}
	if err := c.studentService.UpdateStudent(ctx.Request.Context(), id, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "student updated"})
}

// DeleteStudent deletes a student by ID
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "student deleted"})
}

// UploadPhoto stores a profile photo for a student
func (c *StudentController) UploadPhoto(ctx *gin.Context) {
	file, err := ctx.FormFile("photo")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("photo file is required"))
		return
	}

	photoURL, err := c.studentService.UploadPhoto(ctx.Request.Context(), ctx.Param("id"), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PhotoUploadResponse{
		Message:  "photo uploaded",
		PhotoURL: photoURL,
	})
}
