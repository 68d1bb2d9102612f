package resolving

import (
	"fmt"
)

type ErrorKind string

const (
	KindUpstream ErrorKind = "UPSTREAM"
	KindTimeout  ErrorKind = "TIMEOUT"
)

// ResolutionError indica que a busca de receita de uma conta falhou
type ResolutionError struct {
	AccountKey string
	Kind       ErrorKind
	Err        error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolução de receita da conta %s falhou (%s): %v", e.AccountKey, e.Kind, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func (e *ResolutionError) IsTimeout() bool {
	return e.Kind == KindTimeout
}
