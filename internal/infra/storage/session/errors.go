package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrCapacityExceeded возвращается, когда достигнут лимит активных сессий
	ErrCapacityExceeded = errors.New("session.store: capacity exceeded")
)
