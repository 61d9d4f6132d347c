package request

// GoogleLoginRequest carries the ID token the Google sign-in button posts
type GoogleLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// SetPinRequest represents the one-time PIN setup
type SetPinRequest struct {
	Pin string `json:"pin" binding:"required,min=4,max=8"`
}

// VerifyPinRequest represents the PIN step after sign-in
type VerifyPinRequest struct {
	Pin string `json:"pin" binding:"required"`
}
