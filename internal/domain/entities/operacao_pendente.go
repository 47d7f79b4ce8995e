package entities

import (
	"encoding/json"
	"time"
)

// TipoOperacao identifies a queued write intent.
type TipoOperacao string

const (
	TipoAddCliente        TipoOperacao = "addCliente"
	TipoAddVeiculo        TipoOperacao = "addVeiculo"
	TipoAddOrdemServico   TipoOperacao = "addOrdemServico"
	TipoAtualizarStatusOS TipoOperacao = "atualizarStatusOS"
)

// OperacaoPendente is one not-yet-applied write, persisted in FIFO order
// while the application is offline and replayed on sync.
//
// Dados is opaque to the queue; each kind owns its payload shape.
type OperacaoPendente struct {
	ID       string          `json:"id"`
	Tipo     TipoOperacao    `json:"tipo"`
	Dados    json.RawMessage `json:"dados"`
	CriadaEm time.Time       `json:"criadaEm"`
}

// ResultadoSync is the aggregate outcome of one queue drain.
type ResultadoSync struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Sincronizadas int    `json:"sincronizadas"`
	Pendentes     int    `json:"pendentes"`
}
