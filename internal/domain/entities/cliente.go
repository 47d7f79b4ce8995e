package entities

// Cliente is the workshop customer record.
//
// Storage model (Google Sheets):
//   - each customer owns a dedicated sheet titled "Cliente: <nome>"
//   - the identity record lives at the fixed range A4:E4 of that sheet
//
// SheetTitle is a derived back-reference used only for addressing the
// customer's sheet; it never implies ownership of the sheet object.
type Cliente struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	Telefone       string `json:"telefone"`
	PlacaPrincipal string `json:"placaPrincipal"`
	DataCadastro   string `json:"dataCadastro"`
	SheetTitle     string `json:"sheetTitle,omitempty"`

	// Pendente marks a record created while offline and not yet confirmed
	// against the spreadsheet.
	Pendente bool `json:"pendente,omitempty"`
}
