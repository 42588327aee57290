package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job states for background portfolio analyses.
const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Job tracks one background portfolio analysis.
type Job struct {
	ID        string            `json:"analysis_id"`
	Status    string            `json:"status"`
	Progress  int               `json:"progress"`
	Message   string            `json:"message"`
	Error     string            `json:"error,omitempty"`
	Result    *AnalysisResponse `json:"result,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// JobStore is an in-memory registry of analysis jobs. Results live for the
// process lifetime; there is no persistence.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[string]*Job)}
}

// Create registers a new queued job and returns its id.
func (s *JobStore) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.jobs[id] = &Job{
		ID:        id,
		Status:    StatusQueued,
		Message:   "Portfolio analysis queued",
		CreatedAt: time.Now(),
	}
	return id
}

// Get returns a copy of the job, or false when the id is unknown.
func (s *JobStore) Get(id string) (Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *j, true
}

// SetProgress moves a job to running with the given progress and message.
func (s *JobStore) SetProgress(id string, progress int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok {
		j.Status = StatusRunning
		j.Progress = progress
		j.Message = message
	}
}

// Complete stores the result and marks the job completed.
func (s *JobStore) Complete(id string, result *AnalysisResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok {
		j.Status = StatusCompleted
		j.Progress = 100
		j.Message = "Analysis completed successfully"
		j.Result = result
	}
}

// Fail marks the job failed with the given error.
func (s *JobStore) Fail(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok {
		j.Status = StatusFailed
		j.Progress = 0
		j.Message = "Analysis failed: " + err.Error()
		j.Error = err.Error()
	}
}
