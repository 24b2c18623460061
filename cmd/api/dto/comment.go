package dto

// AddCommentRequestDTO is the body of POST /api/v1/comments/:videoId.
type AddCommentRequestDTO struct {
	Comment string `json:"comment" binding:"required" example:"Loved the editing on this one."`
}

// AddReviewRequestDTO is the body of POST /api/v1/reviews/:asin.
type AddReviewRequestDTO struct {
	Review string `json:"review" binding:"required" example:"Battery drains in two hours."`
	Rating int    `json:"rating" binding:"required,min=1,max=5" example:"2"`
}
