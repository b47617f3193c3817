package background

import (
	"context"
	"log"
	"sync"
	"time"

	"backoffice/internal/caching"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/go-co-op/gocron/v2"
)

const (
	queuedBatchSize     = 10
	finishedRetention   = 30 * 24 * time.Hour
	languageRefreshTTL  = 24 * time.Hour
	languageRefreshTick = 1 * time.Hour
)

// JobScheduler runs the recurring background work: executing queued file
// processes, purging finished ones and keeping the language cache warm.
type JobScheduler struct {
	scheduler    gocron.Scheduler
	processSvc   services.ProcessService
	cacheSvc     caching.CacheService
	languageRepo repositories.LanguageRepository
	jobs         map[string]gocron.Job
	mu           sync.RWMutex
}

func NewJobScheduler(processSvc services.ProcessService, cacheSvc caching.CacheService,
	languageRepo repositories.LanguageRepository) *JobScheduler {

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler:    scheduler,
		processSvc:   processSvc,
		cacheSvc:     cacheSvc,
		languageRepo: languageRepo,
		jobs:         make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

// registerJobs registers all background jobs
func (js *JobScheduler) registerJobs() {
	// Queued process runner - every minute
	processJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(js.runQueuedProcesses),
		gocron.WithName("process-runner"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create process runner job: %v", err)
	} else {
		js.jobs["process-runner"] = processJob
	}

	// Finished process cleanup - daily
	purgeJob, err := js.scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(js.purgeFinishedProcesses),
		gocron.WithName("process-purge"),
	)
	if err != nil {
		log.Printf("Failed to create process purge job: %v", err)
	} else {
		js.jobs["process-purge"] = purgeJob
	}

	// Language cache refresh - hourly
	languageJob, err := js.scheduler.NewJob(
		gocron.DurationJob(languageRefreshTick),
		gocron.NewTask(js.refreshLanguageCache),
		gocron.WithName("language-cache-refresh"),
	)
	if err != nil {
		log.Printf("Failed to create language cache job: %v", err)
	} else {
		js.jobs["language-cache-refresh"] = languageJob
	}

	log.Printf("Registered %d background jobs", len(js.jobs))
}

func (js *JobScheduler) runQueuedProcesses() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := js.processSvc.RunQueued(ctx, queuedBatchSize); err != nil {
		log.Printf("Queued process run failed: %v", err)
	}
}

func (js *JobScheduler) purgeFinishedProcesses() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	deleted, err := js.processSvc.PurgeFinished(ctx, finishedRetention)
	if err != nil {
		log.Printf("Process purge failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Purged %d finished processes", deleted)
	}
}

func (js *JobScheduler) refreshLanguageCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	languages, err := js.languageRepo.List(ctx)
	if err != nil {
		log.Printf("Language cache refresh failed: %v", err)
		return
	}
	if err := js.cacheSvc.SetLanguages(ctx, languages, languageRefreshTTL); err != nil {
		log.Printf("Language cache write failed: %v", err)
	}
}
