/*
Package execution runs resolved requests one at a time.

A single worker goroutine owns execution. Callers hand requests to it through
a bounded queue and wait for the Response, so requests from any number of
producers run in submission order and never overlap.
*/
package execution

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AntonioJCosta/neo/internal/core/domain/operation"
	"github.com/AntonioJCosta/neo/internal/core/domain/request"
	"github.com/AntonioJCosta/neo/internal/core/domain/response"
	"github.com/AntonioJCosta/neo/internal/core/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidArguments is returned when an operation receives the wrong number of arguments.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrExecutorClosed is logged for requests submitted after Close.
	ErrExecutorClosed = errors.New("executor is closed")
)

// Options tunes the executor. The zero value is usable.
type Options struct {
	// QueueSize bounds the number of requests waiting behind the running one.
	QueueSize int
	Logger    *zap.Logger
	// Interrupts is held for the duration of every operation. Nil disables it.
	Interrupts ports.InterruptGuard
}

type noInterruptGuard struct{}

func (noInterruptGuard) Hold() func() { return func() {} }

type job struct {
	ctx    context.Context
	req    request.Request
	result chan response.Response
}

// Service implements ports.RequestExecutor with a single worker.
type Service struct {
	resolver   ports.Resolver
	runner     ports.ProcessRunner
	files      ports.FileOperator
	reporter   ports.ExecutionReporter
	interrupts ports.InterruptGuard
	logger     *zap.Logger

	jobs      chan job
	done      chan struct{}
	stopped   chan struct{}
	started   atomic.Bool
	startOnce sync.Once
	closeOnce sync.Once
}

// NewService creates a new executor. Call Start before Handle and Close when done.
// It panics if any collaborator is nil.
func NewService(
	r ports.Resolver,
	pr ports.ProcessRunner,
	fo ports.FileOperator,
	rep ports.ExecutionReporter,
	opts Options,
) *Service {
	if r == nil {
		panic("resolver cannot be nil")
	}
	if pr == nil {
		panic("processRunner cannot be nil")
	}
	if fo == nil {
		panic("fileOperator cannot be nil")
	}
	if rep == nil {
		panic("reporter cannot be nil")
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = 1
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Interrupts == nil {
		opts.Interrupts = noInterruptGuard{}
	}
	return &Service{
		resolver:   r,
		runner:     pr,
		files:      fo,
		reporter:   rep,
		interrupts: opts.Interrupts,
		logger:     opts.Logger,
		jobs:       make(chan job, opts.QueueSize),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
}

// Start launches the worker. Calling it more than once has no effect.
func (s *Service) Start() {
	s.startOnce.Do(func() {
		s.started.Store(true)
		go s.loop()
	})
}

// Close stops the worker after the execution in progress, if any, returns.
// Requests still queued are answered with an Error response.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.started.Load() {
			<-s.stopped
		}
	})
}

// Handle queues req and waits for its Response. It blocks while the queue is
// full. Cancelling ctx abandons the wait but never interrupts a request that
// has already started.
func (s *Service) Handle(ctx context.Context, req request.Request) response.Response {
	if s.closed() {
		s.logger.Warn("request rejected", zap.Stringer("request", req), zap.Error(ErrExecutorClosed))
		return response.Error()
	}

	j := job{ctx: ctx, req: req, result: make(chan response.Response, 1)}
	select {
	case s.jobs <- j:
	case <-ctx.Done():
		return response.Error()
	case <-s.done:
		return response.Error()
	}

	select {
	case res := <-j.result:
		return res
	case <-s.stopped:
		select {
		case res := <-j.result:
			return res
		default:
			return response.Error()
		}
	case <-ctx.Done():
		return response.Error()
	}
}

func (s *Service) loop() {
	defer close(s.stopped)
	for {
		select {
		case <-s.done:
			return
		case j := <-s.jobs:
			// select does not prefer done, so a job can still be picked after Close.
			if s.closed() {
				s.logger.Warn("request rejected", zap.Stringer("request", j.req), zap.Error(ErrExecutorClosed))
				j.result <- response.Error()
				return
			}
			j.result <- s.execute(j.ctx, j.req)
		}
	}
}

func (s *Service) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// execute resolves and runs one request and logs its outcome.
func (s *Service) execute(ctx context.Context, req request.Request) response.Response {
	jobID := uuid.NewString()
	if err := ctx.Err(); err != nil {
		s.logger.Debug("request abandoned before execution", zap.String("job", jobID), zap.Stringer("request", req), zap.Error(err))
		return response.Error()
	}

	op, matched := s.resolver.Resolve(req)
	if !matched {
		s.reporter.SystemCommandFallback(req)
	}
	log := s.logger.With(
		zap.String("job", jobID),
		zap.Stringer("request", req),
		zap.Stringer("operation", op),
		zap.Bool("alias", matched),
	)
	log.Debug("executing request")

	// The cancel key must not end the shell while an operation runs.
	release := s.interrupts.Hold()
	start := time.Now()
	err := s.run(ctx, op, req)
	elapsed := time.Since(start)
	release()

	resp := response.Ok()
	if err != nil {
		resp = response.Error()
		log.Warn("request failed", zap.Duration("elapsed", elapsed), zap.Error(err))
	} else {
		log.Info("request succeeded", zap.Duration("elapsed", elapsed))
	}
	return resp
}

func (s *Service) run(ctx context.Context, op operation.Operation, req request.Request) error {
	switch op {
	case operation.FileRead:
		if len(req.Args) == 0 {
			return fmt.Errorf("%s needs at least one path: %w", op, ErrInvalidArguments)
		}
		return s.files.Read(req.Args...)
	case operation.FileCopy:
		if len(req.Args) != 2 {
			return fmt.Errorf("%s needs a source and a destination, got %d argument(s): %w", op, len(req.Args), ErrInvalidArguments)
		}
		return s.files.Copy(req.Args[0], req.Args[1])
	case operation.CommandRun:
		s.reporter.ExternalOutputStart()
		err := s.runner.Run(context.WithoutCancel(ctx), req.Key, req.Args)
		s.reporter.ExternalOutputEnd()
		return err
	default:
		return fmt.Errorf("unsupported operation %s", op)
	}
}
