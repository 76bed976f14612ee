package domain

import "errors"

var (
	// Trade lifecycle errors
	ErrInvalidExchange   = errors.New("invalid exchange")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrTradeNotFound     = errors.New("trade request not found")

	// Matching errors
	ErrMatchingUnavailable = errors.New("matching unavailable")
	ErrNoSkillsToCompare   = errors.New("no skills to compare")
	ErrCannotMatchSelf     = errors.New("cannot match against yourself")

	// Skill errors
	ErrSkillNotFound = errors.New("skill not found")
	ErrSkillInTrade  = errors.New("skill is referenced by an active trade")

	// User/auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyTaken  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)
