package response

import "oficina_facil/internal/domain/entities"

type VeiculoResponse struct {
	ID           string `json:"id"`
	Marca        string `json:"marca"`
	Modelo       string `json:"modelo"`
	Ano          string `json:"ano"`
	Placa        string `json:"placa"`
	DataCadastro string `json:"dataCadastro"`
	Pendente     bool   `json:"pendente,omitempty"`
}

func FromVeiculo(v entities.Veiculo) VeiculoResponse {
	return VeiculoResponse{
		ID:           v.ID,
		Marca:        v.Marca,
		Modelo:       v.Modelo,
		Ano:          v.Ano,
		Placa:        v.Placa,
		DataCadastro: v.DataCadastro,
		Pendente:     v.Pendente,
	}
}

func FromVeiculos(vs []entities.Veiculo) []VeiculoResponse {
	out := make([]VeiculoResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVeiculo(v))
	}
	return out
}
