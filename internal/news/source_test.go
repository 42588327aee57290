package news

import (
	"context"
	"errors"
	"testing"
)

type fakeSource struct {
	name     string
	articles []string
	err      error
	calls    int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(_ context.Context, _ int) ([]string, error) {
	f.calls++
	return f.articles, f.err
}

func TestChainFirstNonEmptyWins(t *testing.T) {
	first := &fakeSource{name: "first", articles: []string{"Title: a\nContent: b\n"}}
	second := &fakeSource{name: "second", articles: []string{"Title: c\nContent: d\n"}}

	got, err := NewChain(first, second).Fetch(context.Background(), 10)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 1 || got[0] != first.articles[0] {
		t.Errorf("expected first source's batch, got %v", got)
	}
	if second.calls != 0 {
		t.Error("second source should not be consulted when the first yields articles")
	}
}

func TestChainSkipsFailingSources(t *testing.T) {
	failing := &fakeSource{name: "failing", err: errors.New("connection refused")}
	empty := &fakeSource{name: "empty"}
	working := &fakeSource{name: "working", articles: []string{"Title: x\nContent: y\n"}}

	got, err := NewChain(failing, empty, working).Fetch(context.Background(), 10)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected the working source's batch, got %v", got)
	}
}

func TestChainAllFailingIsEmptyNotError(t *testing.T) {
	failing := &fakeSource{name: "failing", err: errors.New("timeout")}

	got, err := NewChain(failing).Fetch(context.Background(), 10)
	if err != nil {
		t.Fatalf("an exhausted chain should not be an error, got: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no articles, got %v", got)
	}
}

func TestStaticSourceCapsBatch(t *testing.T) {
	s := &StaticSource{Articles: []string{"a", "b", "c"}}

	got, err := s.Fetch(context.Background(), 2)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 articles, got %d", len(got))
	}

	got, _ = s.Fetch(context.Background(), 0)
	if len(got) != 3 {
		t.Errorf("expected the full batch with no cap, got %d", len(got))
	}
}

func TestFormatArticle(t *testing.T) {
	got := FormatArticle("Sensex rallies", "Benchmark indices closed higher")
	want := "Title: Sensex rallies\nContent: Benchmark indices closed higher\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
