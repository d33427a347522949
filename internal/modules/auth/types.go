package auth

import "errors"

var (
	errDuplicateUsername  = errors.New("username already exists")
	errInvalidCredentials = errors.New("invalid credentials")
)

type credentialsDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}
