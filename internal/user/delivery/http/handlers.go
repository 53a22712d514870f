package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmint/internal/middleware"
	"taskmint/pkg/response"
)

// Test godoc
// @Summary     Auth router liveness
// @Tags        Auth
// @Produce     plain
// @Success     200 {string} string "auth api is working"
// @Router      /api/v1/auth/test [GET]
func (h *handler) Test(c *gin.Context) {
	c.String(http.StatusOK, "auth api is working")
}

// Register godoc
// @Summary     Register a user
// @Description Creates a password account. Email and username must be unused.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     201 {object} registerResp
// @Failure     400 {object} response.Resp "All fields are required / User already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err, msgRegisterFailed))
		return
	}

	response.Created(c, h.newRegisterResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Checks email or username plus password, sets the accessToken and refreshToken cookies.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "All fields are required"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     404 {object} response.Resp "Email not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err, msgLoginFailed))
		return
	}

	h.setAuthCookies(c, output.AccessToken, output.RefreshToken)
	response.OK(c, h.newAuthResp("User logged in successfully", output))
}

// Gmail godoc
// @Summary     Sign in with Google
// @Description Resolves the Google account behind the OAuth access token and signs it in, creating it on first use.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body gmailReq true "Google OAuth access token"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Gmail token is required"
// @Failure     401 {object} response.Resp "Invalid Gmail token"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/gmail [POST]
func (h *handler) Gmail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGmailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Gmail(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Gmail: %v", err)
		response.Error(c, h.mapError(err, msgGmailFailed))
		return
	}

	h.setAuthCookies(c, output.AccessToken, output.RefreshToken)
	response.OK(c, h.newAuthResp("Gmail authentication successful", output))
}

// Logout godoc
// @Summary     Log out
// @Description Revokes the stored refresh token and clears both auth cookies.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/logout [GET]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err, msgLogoutFailed))
		return
	}

	h.clearAuthCookies(c)
	response.OK(c, response.NewOKResp("User logged out successfully"))
}
