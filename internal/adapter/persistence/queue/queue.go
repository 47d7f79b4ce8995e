package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"oficina_facil/internal/domain/entities"
	"oficina_facil/internal/metrics"
	"oficina_facil/internal/usecase/interfaces"
)

const storageKey = "oficinafacil_operacoes_pendentes"

// Queue is the persisted FIFO of writes issued while offline. The whole
// list is serialized under a single local-store key; entries are removed
// only after a successful replay.
type Queue struct {
	local interfaces.ILocalStore
	now   func() time.Time
}

var _ interfaces.IPendingQueue = (*Queue)(nil)

func New(local interfaces.ILocalStore) *Queue {
	return &Queue{local: local, now: time.Now}
}

func (q *Queue) Enqueue(tipo entities.TipoOperacao, dados any) {
	raw, err := json.Marshal(dados)
	if err != nil {
		log.Printf("[queue] payload marshal failed tipo=%s err=%v", tipo, err)
		return
	}
	ops := q.load()
	ops = append(ops, entities.OperacaoPendente{
		ID:       uuid.NewString(),
		Tipo:     tipo,
		Dados:    raw,
		CriadaEm: q.now(),
	})
	q.save(ops)
	metrics.PendingOperations.Set(float64(len(ops)))
}

func (q *Queue) Count() int {
	return len(q.load())
}

// Drain applies every queued entry once, in FIFO order. Failed entries are
// retained in their original relative order; the pass never stops early on
// an individual failure.
func (q *Queue) Drain(ctx context.Context, apply interfaces.ApplyFunc) interfaces.DrainResult {
	ops := q.load()
	if len(ops) == 0 {
		return interfaces.DrainResult{}
	}

	remaining := make([]entities.OperacaoPendente, 0, len(ops))
	succeeded := 0
	for _, op := range ops {
		if err := apply(ctx, op); err != nil {
			log.Printf("[queue] replay failed tipo=%s id=%s err=%v", op.Tipo, op.ID, err)
			metrics.SyncOperationsTotal.WithLabelValues("failed").Inc()
			remaining = append(remaining, op)
			continue
		}
		metrics.SyncOperationsTotal.WithLabelValues("succeeded").Inc()
		succeeded++
	}

	q.save(remaining)
	metrics.PendingOperations.Set(float64(len(remaining)))
	return interfaces.DrainResult{Succeeded: succeeded, Remaining: len(remaining)}
}

func (q *Queue) load() []entities.OperacaoPendente {
	b, ok := q.local.Get(storageKey)
	if !ok {
		return nil
	}
	var ops []entities.OperacaoPendente
	if err := json.Unmarshal(b, &ops); err != nil {
		log.Printf("[queue] corrupt queue, starting empty err=%v", err)
		return nil
	}
	return ops
}

func (q *Queue) save(ops []entities.OperacaoPendente) {
	b, err := json.Marshal(ops)
	if err != nil {
		log.Printf("[queue] marshal failed err=%v", err)
		return
	}
	if err := q.local.Put(storageKey, b); err != nil {
		log.Printf("[queue] persist failed err=%v", err)
	}
}
