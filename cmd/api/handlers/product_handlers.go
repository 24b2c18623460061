package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revana/cmd/api/dto"
	"revana/cmd/api/middleware"
	"revana/cmd/api/services"
)

// GetProductReviewsHandler godoc
// @Summary      Analyze product reviews
// @Description  Fetch and classify the platform reviews of a product, merge locally stored ones and return the scored collection with tally and summary
// @Tags         products
// @Param        asin  path  string  true  "Product ASIN"
// @Produce      json
// @Success      200  {object}  dto.AnalysisResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /reviews/{asin} [get]
func GetProductReviewsHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.GetReviews(c.Request.Context(), c.Param("asin"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// AddProductReviewHandler godoc
// @Summary      Add a review
// @Description  Persist a review with a star rating for the authenticated user
// @Tags         products
// @Param        asin  path  string                   true  "Product ASIN"
// @Param        body  body  dto.AddReviewRequestDTO  true  "Review"
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /reviews/{asin} [post]
func AddProductReviewHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AddReviewRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body"})
			return
		}

		email := c.GetString(middleware.ContextKeyUserEmail)
		if _, err := svc.AddReview(c.Request.Context(), c.Param("asin"), email, req.Review, req.Rating); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "review added successfully"})
	}
}
