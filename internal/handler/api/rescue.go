package api

import (
	"net/http"

	reqdto "resqcart/internal/handler/dto/request"
	resdto "resqcart/internal/handler/dto/response"
	"resqcart/internal/handler/httperr"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase/commands"
	"resqcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

var errInvalidIdempotencyKey = errs.New("invalid idempotency key")

type RescueHandler struct {
	cmds      commands.RescueCommands
	cascade   commands.CascadeCommands
	q         queries.RescueRequestQueries
	foodBanks queries.FoodBankQueries
}

func NewRescueHandler(
	cmds commands.RescueCommands,
	cascade commands.CascadeCommands,
	q queries.RescueRequestQueries,
	foodBanks queries.FoodBankQueries,
) *RescueHandler {
	return &RescueHandler{cmds: cmds, cascade: cascade, q: q, foodBanks: foodBanks}
}

// @Summary List rescue requests
// @Description Newest first, optionally filtered by status
// @Tags rescue
// @Produce json
// @Param status query string false "pending|accepted|in-progress|completed|cancelled"
// @Success 200 {array} queries.RescueRequestView
// @Failure 400 {object} httperr.Response
// @Router /rescue [get]
func (h *RescueHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilRequests(items))
}

// @Summary Get rescue request
// @Tags rescue
// @Produce json
// @Param id path string true "Rescue request ID"
// @Success 200 {object} queries.RescueRequestView
// @Failure 404 {object} httperr.Response
// @Router /rescue/{id} [get]
func (h *RescueHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List rescue requests for a store
// @Tags rescue
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} queries.RescueRequestView
// @Router /rescue/store/{storeId} [get]
func (h *RescueHandler) ListByStore(c *gin.Context) {
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}
	items, err := h.q.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilRequests(items))
}

// @Summary List rescue requests claimed by a food bank
// @Tags rescue
// @Produce json
// @Param foodBankId path string true "Food bank ID"
// @Success 200 {array} queries.RescueRequestView
// @Router /rescue/foodbank/{foodBankId} [get]
func (h *RescueHandler) ListByFoodBank(c *gin.Context) {
	foodBankID, ok := parseIDParam(c, "foodBankId")
	if !ok {
		return
	}
	items, err := h.q.ListByFoodBank(c.Request.Context(), foodBankID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilRequests(items))
}

// @Summary Create rescue request
// @Description Manually create a rescue request for one or more products
// @Tags rescue
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRescueRequestRequest true "Create rescue request"
// @Param Idempotency-Key header string false "UUID identifying this request for safe retries"
// @Success 201 {object} queries.RescueRequestView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rescue [post]
func (h *RescueHandler) Create(c *gin.Context) {
	var req reqdto.CreateRescueRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if raw := c.GetHeader(idempotencyKeyHeader); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidIdempotencyKey), "Invalid Idempotency-Key", nil)
			return
		}
		req.IdempotencyKey = &key
	}
	id, err := h.cmds.CreateRequest(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/rescue/"+id.String())
	c.JSON(http.StatusCreated, view)
}

// @Summary Update rescue request status
// @Tags rescue
// @Accept json
// @Produce json
// @Param id path string true "Rescue request ID"
// @Param request body reqdto.UpdateRescueStatusRequest true "Status change"
// @Success 200 {object} queries.RescueRequestView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rescue/{id}/status [patch]
func (h *RescueHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateRescueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), id, req); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Run rescue cascade
// @Description Classify every eligible product and apply its rescue stage
// @Tags rescue
// @Accept json
// @Produce json
// @Param request body reqdto.RunCascadeRequest false "Optional store scope"
// @Success 200 {object} resdto.CascadeResponse
// @Failure 500 {object} httperr.Response
// @Router /rescue/cascade [post]
func (h *RescueHandler) RunCascade(c *gin.Context) {
	var req reqdto.RunCascadeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithBindError(c, err)
			return
		}
	}
	result, err := h.cascade.Run(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCascadeResult(result))
}

// @Summary Nearby food banks
// @Description Verified food banks within radius miles, closest first
// @Tags rescue
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in miles (default 25)"
// @Success 200 {array} queries.NearbyFoodBankView
// @Failure 400 {object} httperr.Response
// @Router /rescue/nearby-foodbanks [get]
func (h *RescueHandler) NearbyFoodBanks(c *gin.Context) {
	var req reqdto.NearbyFoodBanksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	items, err := h.foodBanks.Nearby(c.Request.Context(), *req.Lat, *req.Lng, req.Radius)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if items == nil {
		items = []*queries.NearbyFoodBankView{}
	}
	c.JSON(http.StatusOK, items)
}

func nonNilRequests(items []*queries.RescueRequestView) []*queries.RescueRequestView {
	if items == nil {
		return []*queries.RescueRequestView{}
	}
	return items
}
