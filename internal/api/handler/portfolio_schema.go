package handler

type createPortfolioRequest struct {
	Title       string  `json:"title" validate:"required,max=150"`
	Description *string `json:"description"`
	Link        *string `json:"link" validate:"omitempty,url"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}

// updatePortfolioRequest is a partial update; absent fields stay unchanged.
type updatePortfolioRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=150"`
	Description *string `json:"description"`
	Link        *string `json:"link" validate:"omitempty,url"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}
