// Package auth issues and verifies bearer tokens and describes the
// authenticated principal that is passed explicitly through the call chain.
package auth

// Principal is the identity resolved from a request's credentials.
type Principal struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
