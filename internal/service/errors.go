package service

import (
	"fmt"
	"net/http"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrValidation конструирует AppError для некорректного или неполного
// запроса клиента (пустые поля, нечитаемое тело, нечисловой id).
func ErrValidation(msg string) *AppError {
	return &AppError{
		Code:    "VALIDATION",
		Message: msg,
		Status:  http.StatusUnprocessableEntity,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов членства в ростере
// (например, ALREADY_ENROLLED, NOT_ENROLLED). Такие конфликты отдаются как 400.
func ErrDomain(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}
