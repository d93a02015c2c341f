// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/backend/internal/application/usecase/dashboard"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles analytics endpoints.
type DashboardController struct {
	getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase) *DashboardController {
	return &DashboardController{
		getCategoryBreakdownUseCase: getCategoryBreakdownUseCase,
	}
}

// GetCategoryBreakdown handles GET /analytics/categories requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	input := dashboard.GetCategoryBreakdownInput{
		Period:   dashboard.Period(strings.ToUpper(ctx.Query("period"))),
		Currency: entity.Currency(strings.ToUpper(ctx.Query("currency"))),
	}

	if monthStr := ctx.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "month must be a number",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		input.Month = month
	}

	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "year must be a number",
				Code:  string(domainerror.ErrCodeInvalidYear),
			})
			return
		}
		input.Year = year
	}

	output, err := c.getCategoryBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}
