package models

// User is an account in the local credential store. PasswordRecord is the
// opaque salt-plus-digest blob produced by cryptox.HashPassword; nothing
// outside cryptox inspects its layout.
type User struct {
	ID             int64
	Username       string
	PasswordRecord []byte
}
