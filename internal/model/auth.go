package model

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// TokenClaims is the payload carried inside an access token.
type TokenClaims struct {
	UserID int  `json:"userId"`
	Role   Role `json:"role"`
}
