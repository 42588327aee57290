package server

import "testing"

func TestJobLifecycle(t *testing.T) {
	jobs := NewJobStore()
	id := jobs.Create()

	job, ok := jobs.Get(id)
	if !ok {
		t.Fatal("created job not found")
	}
	if job.Status != StatusQueued {
		t.Errorf("expected queued, got %s", job.Status)
	}

	jobs.SetProgress(id, 50, "Generating insights...")
	job, _ = jobs.Get(id)
	if job.Status != StatusRunning || job.Progress != 50 {
		t.Errorf("expected running at 50%%, got %s at %d", job.Status, job.Progress)
	}

	jobs.Complete(id, &AnalysisResponse{TotalStocksAnalyzed: 2})
	job, _ = jobs.Get(id)
	if job.Status != StatusCompleted || job.Progress != 100 {
		t.Errorf("expected completed at 100%%, got %s at %d", job.Status, job.Progress)
	}
	if job.Result == nil || job.Result.TotalStocksAnalyzed != 2 {
		t.Errorf("expected stored result, got %+v", job.Result)
	}
}

func TestJobFail(t *testing.T) {
	jobs := NewJobStore()
	id := jobs.Create()

	jobs.Fail(id, errTest)
	job, _ := jobs.Get(id)
	if job.Status != StatusFailed {
		t.Errorf("expected failed, got %s", job.Status)
	}
	if job.Error == "" {
		t.Error("expected the error message recorded")
	}
}

func TestJobUnknownID(t *testing.T) {
	jobs := NewJobStore()
	if _, ok := jobs.Get("no-such-job"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestJobGetReturnsCopy(t *testing.T) {
	jobs := NewJobStore()
	id := jobs.Create()

	job, _ := jobs.Get(id)
	job.Status = StatusFailed

	fresh, _ := jobs.Get(id)
	if fresh.Status != StatusQueued {
		t.Error("mutating a returned job must not affect the store")
	}
}
