package services

import (
	"errors"

	"work_exchange/internal/db/repositories"
)

var (
	ErrNotFound          = repositories.ErrNotFound
	ErrDuplicate         = repositories.ErrDuplicate
	ErrNotAllowed        = errors.New("action is not allowed")
	ErrAlreadyDecided    = errors.New("decision already made")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRoleLocked        = errors.New("role can not be changed once a profile exists")
	ErrProfilePending    = errors.New("profile is waiting for moderation")
	ErrProfileInactive   = errors.New("profile is not approved")
)
