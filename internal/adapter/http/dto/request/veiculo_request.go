package request

import "oficina_facil/internal/domain/entities"

// VeiculoCreateRequest registers a vehicle under an existing customer. The
// customer is addressed by sheet title ("Cliente: <nome>"), the same handle
// returned on customer listing.
type VeiculoCreateRequest struct {
	ClienteSheetTitle string `json:"clienteSheetTitle" binding:"required"`
	Marca             string `json:"marca"`
	Modelo            string `json:"modelo"`
	Ano               string `json:"ano"`
	Placa             string `json:"placa" binding:"required"`
}

func (r VeiculoCreateRequest) ToEntity() entities.Veiculo {
	return entities.Veiculo{
		Marca:  r.Marca,
		Modelo: r.Modelo,
		Ano:    r.Ano,
		Placa:  r.Placa,
	}
}
