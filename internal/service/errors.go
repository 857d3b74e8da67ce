package service

import "errors"

var (
	ErrEmailAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("incorrect email or password")
	ErrInvalidToken        = errors.New("could not validate credentials")
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
