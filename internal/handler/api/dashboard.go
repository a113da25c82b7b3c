package api

import (
	"net/http"

	"resqcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Dashboard statistics
// @Description Totals, distributions and six-month trends for the admin dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardView
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	view, err := h.q.Stats(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
