package handler

// registerRequest is the payload for POST /auth/register. Role is optional;
// most accounts pick one later via set-role.
type registerRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=developer client"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=developer client"`
}
