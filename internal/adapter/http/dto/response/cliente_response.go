package response

import "oficina_facil/internal/domain/entities"

type ClienteResponse struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	Telefone       string `json:"telefone"`
	PlacaPrincipal string `json:"placaPrincipal"`
	DataCadastro   string `json:"dataCadastro"`
	SheetTitle     string `json:"sheetTitle"`
	Pendente       bool   `json:"pendente,omitempty"`
}

func FromCliente(c entities.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:             c.ID,
		Nome:           c.Nome,
		Telefone:       c.Telefone,
		PlacaPrincipal: c.PlacaPrincipal,
		DataCadastro:   c.DataCadastro,
		SheetTitle:     c.SheetTitle,
		Pendente:       c.Pendente,
	}
}

func FromClientes(cs []entities.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCliente(c))
	}
	return out
}
