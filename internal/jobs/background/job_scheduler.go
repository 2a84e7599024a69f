package background

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// Task is one run of a periodic job.
type Task func(ctx context.Context) error

// JobScheduler runs the periodic maintenance jobs in-process
type JobScheduler struct {
	scheduler gocron.Scheduler
	logger    zerolog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	jobs      map[string]gocron.Job
	mu        sync.RWMutex
}

func NewJobScheduler(logger zerolog.Logger) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &JobScheduler{
		scheduler: scheduler,
		logger:    logger.With().Str("component", "scheduler").Logger(),
		ctx:       ctx,
		cancel:    cancel,
		jobs:      make(map[string]gocron.Job),
	}, nil
}

// AddJob schedules task every interval, starting immediately. A run that is
// still going when the next one is due delays it instead of overlapping.
func (js *JobScheduler) AddJob(name string, interval time.Duration, task Task) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if _, exists := js.jobs[name]; exists {
		return fmt.Errorf("job %q already registered", name)
	}

	job, err := js.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(js.run, name, task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}

	js.jobs[name] = job
	js.logger.Info().Str("job", name).Dur("interval", interval).Msg("job registered")
	return nil
}

func (js *JobScheduler) run(name string, task Task) {
	start := time.Now()
	if err := task(js.ctx); err != nil {
		js.logger.Error().Err(err).Str("job", name).Dur("took", time.Since(start)).Msg("job failed")
		return
	}
	js.logger.Debug().Str("job", name).Dur("took", time.Since(start)).Msg("job finished")
}

// RemoveJob removes a job from the scheduler
func (js *JobScheduler) RemoveJob(name string) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if job, exists := js.jobs[name]; exists {
		err := js.scheduler.RemoveJob(job.ID())
		delete(js.jobs, name)
		return err
	}
	return nil
}

// JobNames lists registered jobs in name order.
func (js *JobScheduler) JobNames() []string {
	js.mu.RLock()
	defer js.mu.RUnlock()

	names := make([]string, 0, len(js.jobs))
	for name := range js.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (js *JobScheduler) Start() {
	js.logger.Info().Int("jobs", len(js.JobNames())).Msg("starting background job scheduler")
	js.scheduler.Start()
}

// Stop cancels running tasks and waits for them to return.
func (js *JobScheduler) Stop() error {
	js.logger.Info().Msg("stopping background job scheduler")
	js.cancel()
	return js.scheduler.Shutdown()
}
