package response

import "oficina_facil/internal/usecase/interfaces"

type AuthURLResponse struct {
	URL string `json:"url"`
}

type ProfileResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
}

type AuthStatusResponse struct {
	SignedIn bool             `json:"signedIn"`
	Profile  *ProfileResponse `json:"profile,omitempty"`
}

func FromProfile(p interfaces.Profile) *ProfileResponse {
	return &ProfileResponse{ID: p.ID, Name: p.Name, Email: p.Email, ImageURL: p.ImageURL}
}
