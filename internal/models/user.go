package models

// User is the authenticated admin profile stored alongside the bearer token.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is the payload returned by the backend auth endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user,omitempty"`
}

// Dashboard is the admin landing payload.
type Dashboard struct {
	Message string `json:"message"`
	Blogs   []Blog `json:"blogs"`
}
