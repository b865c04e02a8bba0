package model

// User is a latent identity record carried over from the original data
// model. No storefront flow reads it yet.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}
