package response

import "oficina_facil/internal/domain/entities"

type ResumoFinanceiroResponse struct {
	TotalOSAberto          float64 `json:"totalOSAberto"`
	TotalOSFinalizada      float64 `json:"totalOSFinalizada"`
	FaturamentoMesAtual    float64 `json:"faturamentoMesAtual"`
	FaturamentoMesAnterior float64 `json:"faturamentoMesAnterior"`
}

type OSPendenteResponse struct {
	ID      string  `json:"id"`
	Cliente string  `json:"cliente"`
	Data    string  `json:"data"`
	Valor   float64 `json:"valor"`
}

type FinanceiroResponse struct {
	Resumo      ResumoFinanceiroResponse `json:"resumo"`
	OSPendentes []OSPendenteResponse     `json:"osPendentes"`
}

func FromFinanceiro(f entities.Financeiro) FinanceiroResponse {
	pendentes := make([]OSPendenteResponse, 0, len(f.OSPendentes))
	for _, p := range f.OSPendentes {
		pendentes = append(pendentes, OSPendenteResponse{ID: p.ID, Cliente: p.Cliente, Data: p.Data, Valor: p.Valor})
	}
	return FinanceiroResponse{
		Resumo: ResumoFinanceiroResponse{
			TotalOSAberto:          f.Resumo.TotalOSAberto,
			TotalOSFinalizada:      f.Resumo.TotalOSFinalizada,
			FaturamentoMesAtual:    f.Resumo.FaturamentoMesAtual,
			FaturamentoMesAnterior: f.Resumo.FaturamentoMesAnterior,
		},
		OSPendentes: pendentes,
	}
}
