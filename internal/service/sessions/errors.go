package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается по неизвестному или уже уничтоженному токену
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrSessionExpired возвращается, когда срок жизни сессии истёк
	ErrSessionExpired = errors.New("sessions: session expired")
)
