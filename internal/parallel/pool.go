// Package parallel implements a minimal worker pool contract: submit a
// closure, receive a waiter for its result, reproduced here as a generic
// channel-backed future bounded by a buffered-channel semaphore.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs submitted tasks on goroutines, bounding concurrency to avoid
// oversubscribing the machine. It need not (and does not) guarantee
// thread affinity or priority — only that every submitted task eventually
// runs and its result becomes observable through its Waiter.
type Pool struct {
	sem chan struct{}
}

// New returns a Pool that runs at most `concurrency` tasks simultaneously.
// A concurrency <= 0 defaults to runtime.NumCPU().
func New(concurrency int) *Pool {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Pool{sem: make(chan struct{}, concurrency)}
}

// Waiter is a handle to a task's eventual result. It supports exactly
// one blocking retrieval.
type Waiter[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Wait blocks until the task backing w has completed and returns its
// result.
func (w *Waiter[T]) Wait() (T, error) {
	<-w.done
	return w.val, w.err
}

// Compute submits task to run on some goroutine managed by p and returns
// a Waiter for its result. When p already runs its maximum number of
// tasks, Compute blocks until one of them finishes. Go does not support generic
// methods, so Compute is a free function parametrized over the task's
// result type rather than a method on Pool.
func Compute[T any](p *Pool, task func() (T, error)) *Waiter[T] {
	w := &Waiter[T]{done: make(chan struct{})}
	p.sem <- struct{}{}
	go func() {
		defer func() { <-p.sem }()
		defer close(w.done)
		w.val, w.err = task()
	}()
	return w
}

// WaitAll blocks until every waiter in ws has completed, returning the
// first error encountered (if any). Built on errgroup.Group, which keeps
// the first non-nil error; Wait still returns only after every waiter
// has completed.
func WaitAll[T any](ws []*Waiter[T]) ([]T, error) {
	vals := make([]T, len(ws))

	var group errgroup.Group
	for i, w := range ws {
		i, w := i, w
		group.Go(func() error {
			v, err := w.Wait()
			vals[i] = v
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return vals, nil
}
