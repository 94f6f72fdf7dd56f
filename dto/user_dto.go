package dto

// UserCreateRequest carries the fields accepted when creating a dashboard
// account. Username, Password and Name are required; Role defaults to
// editor.
type UserCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UserUpdateRequest is a merge patch over an existing account. A submitted
// Password is rehashed before storage.
type UserUpdateRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
}
