package entity

// User is an internal account. Accounts are created through the seed
// path only; there is no public signup or login endpoint.
//
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// UserInsert is the shape for creating an internal account.
// Password is the plain text credential; it is hashed before storage.
type UserInsert struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
