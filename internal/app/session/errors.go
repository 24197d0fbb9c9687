package session

import "errors"

var (
	ErrSpinInProgress      = errors.New("spin_in_progress")
	ErrInvalidBet          = errors.New("invalid_bet")
	ErrInvalidChoice       = errors.New("invalid_choice")
	ErrInsufficientBalance = errors.New("insufficient_balance")
	ErrUnknownItem         = errors.New("unknown_item")
	ErrClosed              = errors.New("session_closed")
)
