package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revana/cmd/api/dto"
	"revana/cmd/api/middleware"
	"revana/cmd/api/services"
)

// SearchVideosHandler godoc
// @Summary      Search videos
// @Description  Search the platform for videos matching the query
// @Tags         videos
// @Param        query  query  string  true  "Search query"
// @Produce      json
// @Success      200  {array}   dto.SearchResultDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /search [get]
func SearchVideosHandler(svc *services.VideoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := svc.Search(c.Request.Context(), c.Query("query"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

// GetVideoCommentsHandler godoc
// @Summary      Analyze video comments
// @Description  Fetch, filter and classify the comments of a video, merge locally stored ones and return the scored collection with tally and summary
// @Tags         videos
// @Param        videoId    path   string  true   "Video id or URL"
// @Param        userEmail  query  string  false  "Restrict stored comments to this author"
// @Produce      json
// @Success      200  {object}  dto.AnalysisResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /comments/{videoId} [get]
func GetVideoCommentsHandler(svc *services.VideoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.GetComments(c.Request.Context(), c.Param("videoId"), c.Query("userEmail"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// AddVideoCommentHandler godoc
// @Summary      Add a comment
// @Description  Persist a comment on a video for the authenticated user
// @Tags         videos
// @Param        videoId  path  string                   true  "Video id or URL"
// @Param        body     body  dto.AddCommentRequestDTO  true  "Comment"
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /comments/{videoId} [post]
func AddVideoCommentHandler(svc *services.VideoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AddCommentRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body"})
			return
		}

		email := c.GetString(middleware.ContextKeyUserEmail)
		if _, err := svc.AddComment(c.Request.Context(), c.Param("videoId"), email, req.Comment); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "comment added successfully"})
	}
}

// GetVideoDetailHandler godoc
// @Summary      Get video detail
// @Description  Fetch snippet metadata for one video
// @Tags         videos
// @Param        videoId  query  string  true  "Video id or URL"
// @Produce      json
// @Success      200  {object}  dto.VideoDetailDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /videos/detail [get]
func GetVideoDetailHandler(svc *services.VideoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.GetDetail(c.Request.Context(), c.Query("videoId"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}
