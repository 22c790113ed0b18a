package models

// User is an account as the server returns it
type User struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"nama"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

// AuthData is the payload of login and register responses.
// Token is nil when the server rejects the credentials with a 2xx status.
type AuthData struct {
	Token *string `json:"token"`
	User  *User   `json:"user"`
}

// AuthResult is what a registration hands back to the caller.
// Session is nil when the server did not issue a token on registration.
type AuthResult struct {
	User    *User
	Session *Session
}
