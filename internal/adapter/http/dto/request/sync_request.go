package request

// ConectividadeRequest is pushed by the host environment when connectivity
// changes. Online is a pointer so "false" is distinguishable from "absent".
type ConectividadeRequest struct {
	Online *bool `json:"online" binding:"required"`
}
