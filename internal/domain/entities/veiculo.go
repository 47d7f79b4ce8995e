package entities

// Veiculo belongs to exactly one Cliente. It is recorded twice: one row in
// the owner's sheet and one denormalized row (with the owner's name) in the
// shared "Veículos" sheet. The two copies are kept in sync best-effort only.
type Veiculo struct {
	ID           string `json:"id"`
	ClienteID    string `json:"cliente_id,omitempty"`
	Marca        string `json:"marca"`
	Modelo       string `json:"modelo"`
	Ano          string `json:"ano"`
	Placa        string `json:"placa"`
	DataCadastro string `json:"dataCadastro"`

	Pendente bool `json:"pendente,omitempty"`
}
