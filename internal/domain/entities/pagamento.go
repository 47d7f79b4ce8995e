package entities

import (
	"encoding/json"
	"time"
)

// PagamentoStatus represents the payment processing outcome.
type PagamentoStatus string

const (
	PagamentoStatusPendente PagamentoStatus = "pendente"
	PagamentoStatusAprovado PagamentoStatus = "aprovado"
	PagamentoStatusNegado   PagamentoStatus = "negado"
)

// Pagamento records a payment registered for a service order when it is
// marked as Paga.
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for debugging.
type Pagamento struct {
	ID     string          `json:"id"`
	OSID   string          `json:"os_id"`
	Date   time.Time       `json:"date"`
	Status PagamentoStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
