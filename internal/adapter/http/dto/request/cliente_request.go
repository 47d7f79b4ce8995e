package request

import "oficina_facil/internal/domain/entities"

// ClienteCreateRequest is the payload for customer registration. Only the
// name is mandatory; phone and plate are convenience fields shown on the
// customer's sheet.
type ClienteCreateRequest struct {
	Nome           string `json:"nome" binding:"required"`
	Telefone       string `json:"telefone"`
	PlacaPrincipal string `json:"placaPrincipal"`
}

func (r ClienteCreateRequest) ToEntity() entities.Cliente {
	return entities.Cliente{
		Nome:           r.Nome,
		Telefone:       r.Telefone,
		PlacaPrincipal: r.PlacaPrincipal,
	}
}
