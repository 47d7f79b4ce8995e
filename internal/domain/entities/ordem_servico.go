package entities

import "math"

// OSStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - Observed transitions are Aberta -> Finalizada -> Paga.
//   - The mechanism itself does not guard transitions; an order may be moved
//     to any status. Side effects in the Financeiro sheet only fire on the
//     transition *into* Finalizada and on the transition to Paga.

type OSStatus string

const (
	OSStatusAberta     OSStatus = "Aberta"
	OSStatusFinalizada OSStatus = "Finalizada"
	OSStatusPaga       OSStatus = "Paga"
)

// Peca is one part used in a service order. The parts list is serialized as
// JSON into a single cell of the "Ordens de Serviço" sheet.
type Peca struct {
	Nome  string  `json:"nome"`
	Valor float64 `json:"valor"`
}

// OrdemServico is the service order as persisted in the shared
// "Ordens de Serviço" sheet (columns A through K).
//
// Cliente holds the customer's display name, not an id: the sheet layout is
// denormalized and the owner is resolved back by name when needed.
type OrdemServico struct {
	ID                 string   `json:"id"`
	Cliente            string   `json:"cliente"`
	Veiculo            string   `json:"veiculo"`
	DataEntrada        string   `json:"dataEntrada"`
	DescricaoProblema  string   `json:"descricaoProblema"`
	ServicosRealizados string   `json:"servicosRealizados"`
	PecasUtilizadas    []Peca   `json:"pecasUtilizadas"`
	ValorMaoObra       float64  `json:"valorMaoObra"`
	ValorTotal         float64  `json:"valorTotal"`
	Status             OSStatus `json:"status"`
	UltimaAtualizacao  string   `json:"ultimaAtualizacao"`

	Pendente bool `json:"pendente,omitempty"`
}

// CalcularValorTotal returns the invariant total: sum of part values plus
// labor, rounded to cents.
func CalcularValorTotal(pecas []Peca, valorMaoObra float64) float64 {
	total := valorMaoObra
	for _, p := range pecas {
		total += p.Valor
	}
	return math.Round(total*100) / 100
}
