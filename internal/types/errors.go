package types

import "fmt"

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Wager errors
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrInvalidSelection  ErrorCode = "INVALID_SELECTION"
	ErrRoundInProgress   ErrorCode = "ROUND_IN_PROGRESS"
	ErrNoActiveRound     ErrorCode = "NO_ACTIVE_ROUND"

	// Game state errors
	ErrGameNotFound  ErrorCode = "GAME_NOT_FOUND"
	ErrInvalidState  ErrorCode = "INVALID_STATE"
	ErrNotPlayerTurn ErrorCode = "NOT_PLAYER_TURN"

	// Session errors
	ErrSessionNotFound  ErrorCode = "SESSION_NOT_FOUND"
	ErrPermissionDenied ErrorCode = "PERMISSION_DENIED"

	// System errors
	ErrExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	ErrInternalError   ErrorCode = "INTERNAL_ERROR"
)

// GameError represents a game-related error
type GameError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GameError) Unwrap() error {
	return e.Err
}

// NewGameError creates a new GameError
func NewGameError(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a GameError
func WrapError(code ErrorCode, message string, err error) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsGameError checks if an error is a GameError and has a specific code
func IsGameError(err error, code ErrorCode) bool {
	var gameErr *GameError
	if err == nil {
		return false
	}
	if ok := As(err, &gameErr); !ok {
		return false
	}
	return gameErr.Code == code
}

// As is a helper function to safely type assert an error to a GameError
func As(err error, target **GameError) bool {
	if target == nil {
		return false
	}
	if gameErr, ok := err.(*GameError); ok {
		*target = gameErr
		return true
	}
	return false
}
