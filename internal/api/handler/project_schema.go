package handler

type createProjectRequest struct {
	Title             string   `json:"title" validate:"required,max=150"`
	Description       *string  `json:"description"`
	Budget            *float64 `json:"budget" validate:"omitempty,gt=0"`
	SkillRequirements []string `json:"skillRequirements"`
	Constraints       *string  `json:"constraints"`
}

// updateProjectRequest is a partial update; absent fields stay unchanged.
// Status transitions are free-form within the enum; the service validates
// the value.
type updateProjectRequest struct {
	Title             *string  `json:"title" validate:"omitempty,max=150"`
	Description       *string  `json:"description"`
	Budget            *float64 `json:"budget" validate:"omitempty,gt=0"`
	SkillRequirements []string `json:"skillRequirements"`
	Constraints       *string  `json:"constraints"`
	Status            *string  `json:"status" validate:"omitempty,oneof=pending accepted rejected done"`
}

type paginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}
