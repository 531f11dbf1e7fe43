package card

import (
	"errors"
	"fmt"
)

// Error represents a card generation failure
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *Error) Unwrap() error {
	return e.Err
}

const (
	ErrCodeUnknownCardType     = "UNKNOWN_CARD_TYPE"
	ErrCodeInvalidCardTypeSpec = "INVALID_CARD_TYPE_SPEC"
	ErrCodeInvalidDigitString  = "INVALID_DIGIT_STRING"
)

var (
	ErrUnknownCardType     = errors.New("unknown card type")
	ErrInvalidCardTypeSpec = errors.New("invalid card type spec")
	ErrInvalidDigitString  = errors.New("invalid digit string")
)

func NewUnknownCardTypeError(cardType CardType) *Error {
	return &Error{
		Code:    ErrCodeUnknownCardType,
		Message: fmt.Sprintf("card type %q is not in the catalog", string(cardType)),
		Err:     ErrUnknownCardType,
	}
}

func NewInvalidCardTypeSpecError(reason string) *Error {
	return &Error{
		Code:    ErrCodeInvalidCardTypeSpec,
		Message: reason,
		Err:     ErrInvalidCardTypeSpec,
	}
}

func NewInvalidDigitStringError(reason string) *Error {
	return &Error{
		Code:    ErrCodeInvalidDigitString,
		Message: reason,
		Err:     ErrInvalidDigitString,
	}
}

// IsErrorCode checks if an error is a card Error with a specific code
func IsErrorCode(err error, code string) bool {
	var cardErr *Error
	if errors.As(err, &cardErr) {
		return cardErr.Code == code
	}
	return false
}
