package annotating

import "errors"

var (
	ErrUnknownKind   = errors.New("tipo de anotação desconhecido")
	ErrMissingItemID = errors.New("identificador do item é obrigatório")
	ErrCorruptValue  = errors.New("valor de anotação corrompido")
)
