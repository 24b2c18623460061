package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revana/cmd/api/dto"
	"revana/cmd/api/middleware"
	"revana/cmd/api/services"
)

// SigninHandler godoc
// @Summary      Sign in
// @Description  Upsert the account and issue a bearer token for it
// @Tags         users
// @Param        body  body  dto.SigninRequestDTO  true  "Profile from the identity provider"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.SigninResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /auth/signin [post]
func SigninHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SigninRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body"})
			return
		}

		resp, err := svc.Signin(c.Request.Context(), req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ProfileHandler godoc
// @Summary      Get profile
// @Description  Return the account of the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserProfileDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /users/profile [get]
func ProfileHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.ContextKeyUserEmail)
		profile, err := svc.Profile(c.Request.Context(), email)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
