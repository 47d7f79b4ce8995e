package response

type PlanilhaResponse struct {
	ID string `json:"id"`
}

type PermissaoResponse struct {
	TemPermissao bool `json:"temPermissao"`
}
