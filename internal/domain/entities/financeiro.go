package entities

// ResumoFinanceiro mirrors the four summary cells of the Financeiro sheet
// (A3:B6). The cell values are maintained by spreadsheet formulas, outside
// this system's write path; we only read them back.
type ResumoFinanceiro struct {
	TotalOSAberto          float64 `json:"totalOSAberto"`
	TotalOSFinalizada      float64 `json:"totalOSFinalizada"`
	FaturamentoMesAtual    float64 `json:"faturamentoMesAtual"`
	FaturamentoMesAnterior float64 `json:"faturamentoMesAnterior"`
}

// OSPendente is one row of the pending-payment table (Financeiro, rows 10+).
type OSPendente struct {
	ID      string  `json:"id"`
	Cliente string  `json:"cliente"`
	Data    string  `json:"data"`
	Valor   float64 `json:"valor"`
}

// Financeiro bundles the summary with the pending-payment entries.
type Financeiro struct {
	Resumo      ResumoFinanceiro `json:"resumo"`
	OSPendentes []OSPendente     `json:"osPendentes"`
}
