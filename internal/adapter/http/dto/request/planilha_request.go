package request

// PlanilhaCreateRequest creates and bootstraps a fresh workshop spreadsheet.
type PlanilhaCreateRequest struct {
	Nome string `json:"nome" binding:"required"`
}

// PlanilhaSetRequest repoints the application at an existing spreadsheet.
type PlanilhaSetRequest struct {
	ID string `json:"id" binding:"required"`
}
