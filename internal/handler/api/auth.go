package api

import (
	"net/http"

	reqdto "resqcart/internal/handler/dto/request"
	resdto "resqcart/internal/handler/dto/response"
	"resqcart/internal/handler/httperr"
	"resqcart/internal/handler/middleware"
	"resqcart/internal/pkg/config"
	"resqcart/internal/pkg/cookie"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/pkg/jwt"
	"resqcart/internal/usecase/commands"
	"resqcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNotAuthenticated = errs.New("admin not authenticated")

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.AdminQueries
	cookieCfg  config.CookieConfig
	jwtService *jwt.Service
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.AdminQueries, cfg config.Config, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		q:          q,
		cookieCfg:  cfg.Cookie,
		jwtService: jwtService,
	}
}

// @Summary Admin login
// @Description Login with email and password; also sets the access_token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		Admin:       result.Admin,
	})
}

// @Summary Admin logout
// @Description Clears the access_token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current admin
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AdminView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "Admin not authenticated", nil)
		return
	}

	view, err := h.q.GetCurrentAdmin(c.Request.Context(), adminID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
