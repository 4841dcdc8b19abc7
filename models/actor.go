package models

// Actor is the authenticated caller as supplied by the identity provider.
// The platform never authenticates users itself; it only consumes the ID,
// email and admin flag carried by the token.
type Actor struct {
	UserID  string
	Email   string
	IsAdmin bool
}
