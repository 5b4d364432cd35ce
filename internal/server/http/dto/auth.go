package dto

// AuthRequest describes username/password payload.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse confirms a completed registration.
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries a freshly issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// ProtectedResponse echoes the identity bound to a validated token.
type ProtectedResponse struct {
	Username string `json:"username"`
}

// ErrorResponse describes a failed operation.
type ErrorResponse struct {
	Error string `json:"error"`
}
