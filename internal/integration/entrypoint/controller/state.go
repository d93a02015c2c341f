// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/integration/entrypoint/dto"
)

// StateController exposes the whole ledger.
type StateController struct {
	store *state.Store
}

// NewStateController creates a new state controller instance.
func NewStateController(store *state.Store) *StateController {
	return &StateController{
		store: store,
	}
}

// Get handles GET /state requests.
func (c *StateController) Get(ctx *gin.Context) {
	bundle, err := c.store.Snapshot(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStateResponse(bundle))
}
