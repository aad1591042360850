package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueEmail = "jobs:email"

// enqueueTimeout bounds the detached LPUSH of a notification.
const enqueueTimeout = 5 * time.Second

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists and implements Notificador.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
	wg  sync.WaitGroup
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

var _ Notificador = (*Dispatcher)(nil)

// EnqueueEmail pushes an email job to Redis.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueEmail, encoded).Err()
}

func (d *Dispatcher) InscripcionCreada(ctx context.Context, p InscripcionEmail) {
	d.despachar(ctx, JobInscripcionCreada, p)
}

func (d *Dispatcher) EstadoActualizado(ctx context.Context, p InscripcionEmail) {
	d.despachar(ctx, JobEstadoActualizado, p)
}

// despachar enqueues from a goroutine detached from the request context, so
// neither a slow Redis nor a finished request affects the caller.
func (d *Dispatcher) despachar(ctx context.Context, jobType string, p InscripcionEmail) {
	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
		defer cancel()
		if err := d.EnqueueEmail(ctx, jobType, p); err != nil {
			log.Error().Err(err).
				Str("job_type", jobType).
				Str("inscripcion_id", p.InscripcionID.String()).
				Msg("dispatcher: notification dropped")
		}
	}()
}

// Wait blocks until every in-flight enqueue has finished. Called on shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// StartWorkerPool launches numWorkers goroutines consuming QueueEmail.
// Each goroutine blocks on BRPOP, zero CPU when idle. The returned WaitGroup
// completes once every worker has observed ctx cancellation.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, email *EmailWorker) *sync.WaitGroup {
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(ctx, rdb, id, email)
		}(i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
	return &wg
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, email *EmailWorker) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueEmail).Result()
			if err != nil {
				if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
					log.Error().Err(err).Int("worker", id).Msg("worker: brpop failed")
					time.Sleep(time.Second)
				}
				continue
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, email, result[0], result[1])
		}
	}
}

// processJob runs a single job. Failures go to the DLQ and are never retried.
func processJob(ctx context.Context, rdb *redis.Client, email *EmailWorker, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		SendToDLQ(ctx, rdb, queue, "unknown", json.RawMessage(raw), err.Error())
		return
	}
	if err := email.Process(ctx, job); err != nil {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error())
	}
}
