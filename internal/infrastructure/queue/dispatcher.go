package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lia-nails/salon-system/internal/api/metrics"
	"github.com/lia-nails/salon-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256

	// scanInterval is how often the scanner polls for due appointments;
	// reminderWindow is how far ahead of the slot a reminder goes out.
	scanInterval   = 5 * time.Minute
	reminderWindow = 24 * time.Hour
)

// Dispatcher routes reminder jobs to a fixed set of workers using consistent
// hashing on the appointment ID, so retries of the same appointment always
// land on the same worker.
type Dispatcher struct {
	workers      []chan ports.ReminderJob
	service      ports.ReminderService
	appointments ports.AppointmentRepository
	log          zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ReminderService, appointments ports.AppointmentRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:      make([]chan ports.ReminderJob, numWorkers),
		service:      service,
		appointments: appointments,
		log:          log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ReminderJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines plus the due-appointment scanner.
// Everything stops when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	go d.runScanner(ctx)
}

// Enqueue sends a job to the worker responsible for its appointment.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.ReminderJob) {
	idx := d.shardIndex(job.AppointmentID)
	d.workers[idx] <- job
	metrics.ReminderQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps an appointment ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(appointmentID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(appointmentID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ReminderJob) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.ReminderQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Process(ctx, job); err != nil {
				metrics.RemindersProcessedTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("appointment_id", job.AppointmentID).
					Int("worker_id", id).
					Msg("reminder processing failed")
				continue
			}
			metrics.RemindersProcessedTotal.WithLabelValues("sent").Inc()
		}
	}
}

// runScanner periodically looks for confirmed appointments inside the
// reminder window and enqueues a job for each.
func (d *Dispatcher) runScanner(ctx context.Context) {
	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()

	d.scanOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.scanOnce(ctx)
		}
	}
}

func (d *Dispatcher) scanOnce(ctx context.Context) {
	now := time.Now().UTC()
	due, err := d.appointments.FindDueForReminder(ctx, now, now.Add(reminderWindow))
	if err != nil {
		d.log.Error().Err(err).Msg("reminder scan failed")
		return
	}
	if len(due) == 0 {
		return
	}

	d.log.Info().Int("count", len(due)).Msg("due appointments found")
	for _, a := range due {
		d.Enqueue(ports.ReminderJob{
			AppointmentID: a.ID,
			ClientID:      a.ClientID,
			EmployeeID:    a.EmployeeID,
		})
	}
}
