package registry

import (
	"errors"
	"fmt"

	"github.com/Myudi422/backend-adsense/pkg/apiErrors"
)

// Erros específicos para o contexto de contas
var (
	ErrAccountKeyRequired   = errors.New("account key is required")
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidStatus        = errors.New("invalid account status")
	ErrStoreOperation       = errors.New("account store operation error")
	ErrBackupNotFound       = errors.New("backup not found")
)

// AccountError é um erro com contexto adicional para contas
type AccountError struct {
	Err        error
	Code       string
	AccountKey string
	Details    string
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewAccountErrorWithKey(err error, code string, accountKey string) *AccountError {
	return &AccountError{
		Err:        err,
		Code:       code,
		AccountKey: accountKey,
	}
}

// CodeFor mapeia um erro do serviço para o código da API
func CodeFor(err error) string {
	accErr := &AccountError{}
	if errors.As(err, &accErr) && accErr.Code != "" {
		return accErr.Code
	}

	switch {
	case errors.Is(err, ErrAccountNotFound):
		return apiErrors.ErrAccountNotFound
	case errors.Is(err, ErrAccountAlreadyExists):
		return apiErrors.ErrAccountAlreadyExists
	case errors.Is(err, ErrAccountKeyRequired), errors.Is(err, ErrInvalidStatus):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, ErrBackupNotFound):
		return apiErrors.ErrInvalidRequest
	default:
		return apiErrors.ErrRegistryOperation
	}
}
