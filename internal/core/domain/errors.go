package domain

import "errors"

var ErrTokenMissing = errors.New("no stored token")
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenExpired = errors.New("token expired")
var ErrSessionNotValid = errors.New("session not valid")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrProfileFetchFailed = errors.New("profile fetch failed")
var ErrRoleUnrecognized = errors.New("role has no permission entry")
var ErrPathNotPermitted = errors.New("path not permitted for role")
var ErrBackendUnavailable = errors.New("backend unavailable")
