package user

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the hashing cost for new passwords
const DefaultBcryptCost = bcrypt.DefaultCost

// Error message constants
const (
	ErrMsgCreateUserFailed      = "failed to create user"
	ErrMsgGetUserFailed         = "failed to get user"
	ErrMsgHashPasswordFailed    = "failed to hash password"
	ErrMsgCreateCharacterFailed = "failed to create character"
	ErrMsgGetCharacterFailed    = "failed to get character"
	ErrMsgListCharactersFailed  = "failed to list characters"
	ErrMsgListProfessionsFailed = "failed to list professions"
)

// Log message constants
const (
	LogMsgUserCreated      = "User created"
	LogMsgLoginFailed      = "Login failed"
	LogMsgCharacterCreated = "Character created"
)
