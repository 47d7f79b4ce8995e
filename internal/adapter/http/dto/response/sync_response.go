package response

import "oficina_facil/internal/domain/entities"

type SyncResultResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Sincronizadas int    `json:"sincronizadas"`
	Pendentes     int    `json:"pendentes"`
}

func FromResultadoSync(r entities.ResultadoSync) SyncResultResponse {
	return SyncResultResponse{
		Success:       r.Success,
		Message:       r.Message,
		Sincronizadas: r.Sincronizadas,
		Pendentes:     r.Pendentes,
	}
}

type SyncStatusResponse struct {
	Online    bool   `json:"online"`
	Syncing   bool   `json:"syncing"`
	Pendentes int    `json:"pendentes"`
	Erro      string `json:"erro,omitempty"`
}
