package models

import (
	"strings"

	"github.com/wellux/bloglist-backend/internal/apperr"
)

type User struct {
	ID           string    `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	Name         string    `json:"name" bson:"name"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Blogs        []BlogRef `json:"blogs" bson:"-"`
}

// ValidateNewUser checks the creation payload before any hashing or write.
func ValidateNewUser(username, password string) error {
	if len(strings.TrimSpace(username)) < 3 || len(password) < 3 {
		return apperr.Validation("invalid username or password. Length must be at least 3")
	}
	return nil
}
