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

// CollegeController handles college-related endpoints
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// ListColleges returns a paginated college listing. With only_codes=true it
// returns just the code list, skipping pagination entirely.
func (c *CollegeController) ListColleges(ctx *gin.Context) {
	if isTruthy(ctx.Query("only_codes")) {
		codes, err := c.collegeService.ListCollegeCodes(ctx.Request.Context())
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.CodeListResponse{Data: codes})
		return
	}

	page, perPage := helpers.ParsePaginationParams(ctx)
	params := repositories.ListParams{
		Page:    page,
		PerPage: perPage,
		Search:  ctx.Query("search"),
		SortBy:  ctx.Query("sort_by"),
		Order:   ctx.Query("order"),
	}

	colleges, total, err := c.collegeService.ListColleges(ctx.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Data:       colleges,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: helpers.TotalPages(total, params.PerPage),
	})
}

// GetCollege returns a single college by code
func (c *CollegeController) GetCollege(ctx *gin.Context) {
	college, err := c.collegeService.GetCollege(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, college)
}

// CreateCollege creates a new college
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("college_code and college_name are required"))
		return
	}

	college := &models.College{
		Code: req.CollegeCode,
		Name: req.CollegeName,
	}
	if err := c.collegeService.CreateCollege(ctx.Request.Context(), college); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, college)
}

// UpdateCollege updates a college, optionally renaming its code
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	var req dto.UpdateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("college_name is required"))
		return
	}

	code := ctx.Param("code")
	college := &models.College{
		Code: req.CollegeCode,
		Name: req.CollegeName,
	}
	if err := c.collegeService.UpdateCollege(ctx.Request.Context(), code, college); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "college updated"})
}

// DeleteCollege deletes a college by code
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	if err := c.collegeService.DeleteCollege(ctx.Request.Context(), ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "college deleted"})
}
