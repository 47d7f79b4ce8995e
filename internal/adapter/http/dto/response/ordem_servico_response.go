package response

import "oficina_facil/internal/domain/entities"

type PecaResponse struct {
	Nome  string  `json:"nome"`
	Valor float64 `json:"valor"`
}

type OrdemServicoResponse struct {
	ID                 string         `json:"id"`
	Cliente            string         `json:"cliente"`
	Veiculo            string         `json:"veiculo"`
	DataEntrada        string         `json:"dataEntrada"`
	DescricaoProblema  string         `json:"descricaoProblema"`
	ServicosRealizados string         `json:"servicosRealizados"`
	PecasUtilizadas    []PecaResponse `json:"pecasUtilizadas"`
	ValorMaoObra       float64        `json:"valorMaoObra"`
	ValorTotal         float64        `json:"valorTotal"`
	Status             string         `json:"status"`
	UltimaAtualizacao  string         `json:"ultimaAtualizacao"`
	Pendente           bool           `json:"pendente,omitempty"`
}

func FromOrdemServico(os entities.OrdemServico) OrdemServicoResponse {
	pecas := make([]PecaResponse, 0, len(os.PecasUtilizadas))
	for _, p := range os.PecasUtilizadas {
		pecas = append(pecas, PecaResponse{Nome: p.Nome, Valor: p.Valor})
	}
	return OrdemServicoResponse{
		ID:                 os.ID,
		Cliente:            os.Cliente,
		Veiculo:            os.Veiculo,
		DataEntrada:        os.DataEntrada,
		DescricaoProblema:  os.DescricaoProblema,
		ServicosRealizados: os.ServicosRealizados,
		PecasUtilizadas:    pecas,
		ValorMaoObra:       os.ValorMaoObra,
		ValorTotal:         os.ValorTotal,
		Status:             string(os.Status),
		UltimaAtualizacao:  os.UltimaAtualizacao,
		Pendente:           os.Pendente,
	}
}

func FromOrdensServico(list []entities.OrdemServico) []OrdemServicoResponse {
	out := make([]OrdemServicoResponse, 0, len(list))
	for _, os := range list {
		out = append(out, FromOrdemServico(os))
	}
	return out
}
