package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/app/models/dto"
	"github.com/campusops/ssis/internal/app/repositories"
	"github.com/campusops/ssis/internal/app/services"
	"github.com/campusops/ssis/internal/middleware"
	"github.com/campusops/ssis/internal/pkg/helpers"
)

// ProgramController handles program-related endpoints
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

// ListPrograms returns a paginated program listing, optionally filtered by
// college_code. With only_codes=true it returns just the code list.
func (c *ProgramController) ListPrograms(ctx *gin.Context) {
	if isTruthy(ctx.Query("only_codes")) {
		codes, err := c.programService.ListProgramCodes(ctx.Request.Context())
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.CodeListResponse{Data: codes})
		return
	}

	page, perPage := helpers.ParsePaginationParams(ctx)
	params := repositories.ProgramListParams{
		ListParams: repositories.ListParams{
			Page:    page,
			PerPage: perPage,
			Search:  ctx.Query("search"),
			SortBy:  ctx.Query("sort_by"),
			Order:   ctx.Query("order"),
		},
		CollegeCode: ctx.Query("college_code"),
	}

	programs, total, err := c.programService.ListPrograms(ctx.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Data:       programs,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: helpers.TotalPages(total, params.PerPage),
	})
}

// GetProgram returns a single program by code
func (c *ProgramController) GetProgram(ctx *gin.Context) {
	program, err := c.programService.GetProgram(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, program)
}

// CreateProgram creates a new program
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("program_code, program_name and college_code are required"))
		return
	}

	program := &models.Program{
		Code:        req.ProgramCode,
		Name:        req.ProgramName,
		CollegeCode: req.CollegeCode,
	}
	if err := c.programService.CreateProgram(ctx.Request.Context(), program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, program)
}

// UpdateProgram updates a program, optionally renaming its code
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	var req dto.UpdateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("program_name and college_code are required"))
		return
	}

	code := ctx.Param("code")
	program := &models.Program{
		Code:        req.ProgramCode,
		Name:        req.ProgramName,
		CollegeCode: req.CollegeCode,
	}
	if err := c.programService.UpdateProgram(ctx.Request.Context(), code, program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "program updated"})
}

// DeleteProgram deletes a program by code
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	if err := c.programService.DeleteProgram(ctx.Request.Context(), ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "program deleted"})
}
