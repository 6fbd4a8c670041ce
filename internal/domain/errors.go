package domain

import "fmt"

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeForbidden  = "FORBIDDEN"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrValidation - некорректные входные данные
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "invalid input",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrForbidden - у пользователя нет доступа к ресурсу
	ErrForbidden = &DomainError{
		Code:    CodeForbidden,
		Message: "access denied",
	}
)

// NewValidationError создает ошибку VALIDATION_ERROR с конкретным сообщением
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewForbiddenError(message string) *DomainError {
	return &DomainError{
		Code:    CodeForbidden,
		Message: message,
	}
}
