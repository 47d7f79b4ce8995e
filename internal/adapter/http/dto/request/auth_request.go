package request

// SigninRequest completes the OAuth consent flow with the authorization code
// returned by Google on the redirect.
type SigninRequest struct {
	Code string `json:"code" binding:"required"`
}
