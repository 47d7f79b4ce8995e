package interfaces

import (
	"context"

	"oficina_facil/internal/domain/entities"
)

// ApplyFunc applies one queued operation against the remote store.
type ApplyFunc func(ctx context.Context, op entities.OperacaoPendente) error

// DrainResult reports one drain pass over the queue.
type DrainResult struct {
	Succeeded int
	Remaining int
}

// IPendingQueue is the persisted FIFO of not-yet-applied writes.
//
// Drain attempts every queued entry exactly once, in enqueue order; entries
// whose apply fails are retained in their original relative order for a
// later drain. Nothing retries automatically between drains.
type IPendingQueue interface {
	Enqueue(tipo entities.TipoOperacao, dados any)
	Count() int
	Drain(ctx context.Context, apply ApplyFunc) DrainResult
}
