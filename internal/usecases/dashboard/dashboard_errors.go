package dashboard

import "errors"

var (
	// ErrDataUnavailable indica que nem o painel acumulado nem o fallback carregaram
	ErrDataUnavailable = errors.New("dados do período indisponíveis")
	// ErrSuperseded indica que outra seleção de período chegou antes desta carga terminar
	ErrSuperseded = errors.New("seleção de período substituída por outra mais recente")
	// ErrNoActivePeriod indica que nenhum período foi selecionado ainda
	ErrNoActivePeriod = errors.New("nenhum período selecionado")
	// ErrLoadInProgress indica que a recarga foi pulada porque uma seleção ainda está carregando
	ErrLoadInProgress = errors.New("carga do período em andamento")
)
