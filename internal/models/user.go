package models

// User is a row of the users table. Password holds the bcrypt hash,
// never plaintext. This service only ever reads users.
type User struct {
	ID       int64
	Email    string
	Password string
}

// LoginResult is the login endpoint's response body. All outcomes are
// reported with HTTP 200 and distinguished by the Success flag.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id,omitempty"`
}

const (
	MsgLoginSuccessful = "Login successful"
	MsgIncorrectPass   = "Incorrect password"
	MsgUserNotFound    = "User not found"
	MsgMissingLogin    = "Missing email or password"
)
