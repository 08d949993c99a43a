package idgen

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"meditrack/internal/domain/errs"
)

func counterOf(t *testing.T, id string) int64 {
	t.Helper()
	i := strings.LastIndex(id, "-")
	if i < 0 {
		t.Fatalf("malformed id %q", id)
	}
	n, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil {
		t.Fatalf("malformed counter in %q: %v", id, err)
	}
	return n
}

func TestNextID(t *testing.T) {
	g := New(DefaultSeed)

	id, err := g.NextID("doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "DOC-1000" {
		t.Fatalf("expected DOC-1000, got %s", id)
	}
	id, _ = g.NextID(" pat ")
	if id != "PAT-1001" {
		t.Fatalf("expected PAT-1001, got %s", id)
	}

	if _, err := g.NextID("  "); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error for blank prefix, got %v", err)
	}
	if g.Peek() != 1002 {
		t.Fatalf("failed call must not consume a number, peek=%d", g.Peek())
	}
}

func TestNextIDMixedPrefixesStrictlyIncrease(t *testing.T) {
	g := New(0)
	prefixes := []string{PrefixDoctor, PrefixPatient, PrefixAppointment, PrefixBill}
	seen := map[string]struct{}{}
	last := int64(-1)
	for i := 0; i < 200; i++ {
		id, err := g.NextID(prefixes[i%len(prefixes)])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
		n := counterOf(t, id)
		if n <= last {
			t.Fatalf("counter not strictly increasing: %d after %d", n, last)
		}
		last = n
	}
}

func TestNextIDConcurrent(t *testing.T) {
	const workers, perWorker = 16, 250
	g := New(DefaultSeed)

	var mu sync.Mutex
	var wg sync.WaitGroup
	ids := make([]string, 0, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				id, err := g.NextID(PrefixAppointment)
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				local = append(local, id)
			}
			mu.Lock()
			defer mu.Unlock()
			ids = append(ids, local...)
		}()
	}
	wg.Wait()

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		seen[counterOf(t, id)] = struct{}{}
	}

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d distinct ids, got %d", workers*perWorker, len(seen))
	}
	for n := DefaultSeed; n < DefaultSeed+workers*perWorker; n++ {
		if _, ok := seen[n]; !ok {
			t.Fatalf("missing counter value %d", n)
		}
	}
}

func TestSharedIsCreatedOnce(t *testing.T) {
	a := Shared(5000)
	b := Shared(1)
	if a != b {
		t.Fatalf("expected the same shared instance")
	}
}

func TestNewNegativeSeedUsesDefault(t *testing.T) {
	g := New(-5)

	id, err := g.NextID("doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "DOC-1000" {
		t.Fatalf("expected DOC-1000, got %s", id)
	}
}
