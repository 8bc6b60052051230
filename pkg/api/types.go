package api

// Credentials is the login/registration request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the account object embedded in auth responses.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned by the login, registration and refresh endpoints.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// UserInfo is the profile payload from GET /me.
type UserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type favoriteRequest struct {
	Ticker string `json:"ticker"`
}
