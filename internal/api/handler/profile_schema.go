package handler

// createProfileRequest is the payload for POST /profile. The whatsapp number
// is normalized server-side; validation happens after normalization.
type createProfileRequest struct {
	Name     string   `json:"name" validate:"required,max=100"`
	Bio      *string  `json:"bio"`
	Location *string  `json:"location"`
	Whatsapp *string  `json:"whatsapp"`
	PhotoURL *string  `json:"photoUrl" validate:"omitempty,url"`
	Skills   []string `json:"skills"`
}

// updateProfileRequest is a partial update; absent fields stay unchanged.
type updateProfileRequest struct {
	Name     *string  `json:"name" validate:"omitempty,max=100"`
	Bio      *string  `json:"bio"`
	Location *string  `json:"location"`
	Whatsapp *string  `json:"whatsapp"`
	PhotoURL *string  `json:"photoUrl" validate:"omitempty,url"`
	Skills   []string `json:"skills"`
}
