package api

import (
	"net/http"

	reqdto "resqcart/internal/handler/dto/request"
	resdto "resqcart/internal/handler/dto/response"
	"resqcart/internal/usecase/commands"
	"resqcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FoodBankHandler struct {
	cmds commands.FoodBankCommands
	q    queries.FoodBankQueries
}

func NewFoodBankHandler(cmds commands.FoodBankCommands, q queries.FoodBankQueries) *FoodBankHandler {
	return &FoodBankHandler{cmds: cmds, q: q}
}

// @Summary Register food bank
// @Description New food banks start in pending verification
// @Tags foodbanks
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterFoodBankRequest true "Registration"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /foodbanks [post]
func (h *FoodBankHandler) Register(c *gin.Context) {
	var req reqdto.RegisterFoodBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	id, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/foodbanks/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List food banks
// @Tags foodbanks
// @Produce json
// @Param status query string false "pending|verified|rejected"
// @Success 200 {array} queries.FoodBankView
// @Failure 400 {object} httperr.Response
// @Router /foodbanks [get]
func (h *FoodBankHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if items == nil {
		items = []*queries.FoodBankView{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get food bank
// @Tags foodbanks
// @Produce json
// @Param id path string true "Food bank ID"
// @Success 200 {object} queries.FoodBankView
// @Failure 404 {object} httperr.Response
// @Router /foodbanks/{id} [get]
func (h *FoodBankHandler) Get(c *gin.Context) {
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

// @Summary Update food bank verification
// @Tags foodbanks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food bank ID"
// @Param request body reqdto.UpdateVerificationRequest true "Verification status"
// @Success 200 {object} queries.FoodBankView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /foodbanks/{id}/verification [patch]
func (h *FoodBankHandler) UpdateVerification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := h.cmds.UpdateVerification(c.Request.Context(), id, req); err != nil {
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
