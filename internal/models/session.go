package models

// Session is the client-side credential pair kept between invocations.
// It is never sent to the server as a whole; only Token travels, as a bearer header.
type Session struct {
	Token  string `yaml:"user_token" json:"token"`
	UserID string `yaml:"user_id" json:"user_id"`
}

// Valid reports whether the session carries a token
func (s *Session) Valid() bool {
	return s != nil && s.Token != ""
}
