package request

import "oficina_facil/internal/domain/entities"

type PecaRequest struct {
	Nome  string  `json:"nome" binding:"required"`
	Valor float64 `json:"valor"`
}

// OrdemServicoCreateRequest opens a service order. The total is never
// accepted from the caller; it is always recomputed from parts plus labor.
type OrdemServicoCreateRequest struct {
	Cliente            string        `json:"cliente" binding:"required"`
	Veiculo            string        `json:"veiculo"`
	DataEntrada        string        `json:"dataEntrada"`
	DescricaoProblema  string        `json:"descricaoProblema"`
	ServicosRealizados string        `json:"servicosRealizados"`
	PecasUtilizadas    []PecaRequest `json:"pecasUtilizadas"`
	ValorMaoObra       float64       `json:"valorMaoObra"`
	Status             string        `json:"status"`
}

func (r OrdemServicoCreateRequest) ToEntity() entities.OrdemServico {
	pecas := make([]entities.Peca, 0, len(r.PecasUtilizadas))
	for _, p := range r.PecasUtilizadas {
		pecas = append(pecas, entities.Peca{Nome: p.Nome, Valor: p.Valor})
	}
	return entities.OrdemServico{
		Cliente:            r.Cliente,
		Veiculo:            r.Veiculo,
		DataEntrada:        r.DataEntrada,
		DescricaoProblema:  r.DescricaoProblema,
		ServicosRealizados: r.ServicosRealizados,
		PecasUtilizadas:    pecas,
		ValorMaoObra:       r.ValorMaoObra,
		Status:             entities.OSStatus(r.Status),
	}
}

// StatusUpdateRequest moves a service order to another status.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
