package reportsdomain

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound indica resposta fora da faixa 2xx (arquivo ainda não gerado)
	ErrResourceNotFound = errors.New("arquivo de relatório não encontrado")
	// ErrResourceFetch cobre falha de rede e JSON malformado
	ErrResourceFetch = errors.New("falha ao buscar arquivo de relatório")
)

// ResourceError carrega o diagnóstico exibido no alerta do painel
type ResourceError struct {
	File   string
	Status int
	Err    error
	Cause  error
}

func (e *ResourceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %v (status %d)", e.File, e.Err, e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v: %v", e.File, e.Err, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

// Unwrap expõe tanto o erro sentinela quanto a causa original para errors.Is
func (e *ResourceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// IsNotFound é verdadeiro apenas para arquivos inexistentes
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}
