package handler

import (
	"net/http"

	"insygth/internal/dto"
	"insygth/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Signup godoc
// @Summary      Create an account
// @Description  Registers an owner (active immediately) or a staff member (pending owner approval).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.SignupRequest true "Account details"
// @Success      201  {object} dto.SignupResponse
// @Failure      409  {object} apierror.APIError
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Signup(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// OwnerSignin godoc
// @Summary      Owner sign-in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.SigninRequest true "Credentials"
// @Success      200  {object} dto.SigninResponse
// @Failure      401  {object} apierror.APIError
// @Router       /api/auth/owner-signin [post]
func (h *AuthHandler) OwnerSignin(c *gin.Context) {
	h.signin(c, "owner")
}

// StaffSignin godoc
// @Summary      Staff sign-in
// @Description  Staff accounts sign in here once approved; pending accounts get 403.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.SigninRequest true "Credentials"
// @Success      200  {object} dto.SigninResponse
// @Failure      401  {object} apierror.APIError
// @Failure      403  {object} apierror.APIError
// @Router       /api/auth/staff-signin [post]
func (h *AuthHandler) StaffSignin(c *gin.Context) {
	h.signin(c, "staff")
}

func (h *AuthHandler) signin(c *gin.Context, role string) {
	var req dto.SigninRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Signin(c.Request.Context(), req, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary      Refresh the token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RefreshRequest true "Refresh token"
// @Success      200  {object} dto.SigninResponse
// @Failure      401  {object} apierror.APIError
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
