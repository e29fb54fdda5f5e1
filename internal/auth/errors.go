package auth

import "errors"

var ErrRefreshTokenNotFound = errors.New("refresh token not found")
