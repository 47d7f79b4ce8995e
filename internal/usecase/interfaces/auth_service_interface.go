package interfaces

import "context"

// Profile is the basic identity returned by the external consent flow.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
}

// IAuthService is the third-party identity boundary: it only answers
// signed-in/signed-out and hands out the basic profile.
type IAuthService interface {
	SignedIn() bool
	Profile(ctx context.Context) (Profile, error)
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) error
	SignOut() error
}
