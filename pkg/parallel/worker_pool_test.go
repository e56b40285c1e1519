package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_ExecutesAllTasks(t *testing.T) {
	pool, err := NewWorkerPool(4)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}

	var counter int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		ok := pool.Submit(func() {
			defer wg.Done()
			atomic.AddInt64(&counter, 1)
		})
		if !ok {
			t.Fatal("Submit returned false on open pool")
		}
	}
	wg.Wait()
	pool.Close()

	if counter != 100 {
		t.Errorf("Expected 100 tasks executed, got %d", counter)
	}
}

func TestWorkerPool_SubmitAfterCloseFails(t *testing.T) {
	pool, err := NewWorkerPool(1)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}
	pool.Close()

	if pool.Submit(func() {}) {
		t.Error("Submit should return false after Close")
	}
}

func TestWorkerPool_ZeroWorkersFallsBackToOne(t *testing.T) {
	pool, err := NewWorkerPool(0)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}
	defer pool.Close()

	done := make(chan struct{})
	pool.Submit(func() { close(done) })
	<-done
}

func TestWorkerPool_RecoverFromPanic(t *testing.T) {
	pool, err := NewWorkerPool(1)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	pool.Submit(func() {
		defer wg.Done()
		panic("task panic")
	})
	pool.Submit(func() {
		defer wg.Done()
	})
	wg.Wait()
	pool.Close()
}

func TestWorkerPool_TooManyWorkers(t *testing.T) {
	_, err := NewWorkerPool(MaxWorkers + 1)
	if err == nil {
		t.Fatal("Expected error for excessive worker count")
	}
}

func TestForEachSource_MergesInSourceOrder(t *testing.T) {
	sources := []string{"d", "a", "c", "b"}

	var merged []string
	err := ForEachSource(sources, 4,
		func(s string) string { return s },
		func(partial string) { merged = append(merged, partial) },
	)
	if err != nil {
		t.Fatalf("ForEachSource failed: %v", err)
	}

	for i, s := range sources {
		if merged[i] != s {
			t.Fatalf("Merge order %v does not match source order %v", merged, sources)
		}
	}
}

func TestForEachSource_SequentialFallback(t *testing.T) {
	var sum int
	err := ForEachSource([]string{"a", "b", "c"}, 1,
		func(s string) int { return len(s) },
		func(partial int) { sum += partial },
	)
	if err != nil {
		t.Fatalf("ForEachSource failed: %v", err)
	}
	if sum != 3 {
		t.Errorf("Expected sum 3, got %d", sum)
	}
}
