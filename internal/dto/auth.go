package dto

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=120"`
	Password string `json:"password" binding:"required,min=1"`
}

// TokenResponse is returned on successful login or registration.
type TokenResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}

// ValidateTokenRequest is the JSON body for POST /auth/validate-token.
// Token is not bound as required: an empty token gets its own error body.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateTokenResponse is the answer other services act on.
type ValidateTokenResponse struct {
	Valid    bool   `json:"valid"`
	UserID   int64  `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}
