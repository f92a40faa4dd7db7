package execution

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AntonioJCosta/neo/internal/adapters/aliasmapping"
	"github.com/AntonioJCosta/neo/internal/core/domain/request"
	"github.com/AntonioJCosta/neo/internal/core/domain/response"
	"github.com/AntonioJCosta/neo/internal/core/services/resolution"
	"github.com/AntonioJCosta/neo/internal/core/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// The end-to-end test holds the real interrupt guard, whose runtime goroutine outlives it.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("os/signal.signal_recv"),
		goleak.IgnoreAnyFunction("os/signal.loop"),
	)
}

type fixture struct {
	runner     *testutil.MockProcessRunner
	files      *testutil.MockFileOperator
	reporter   *testutil.MockExecutionReporter
	interrupts *testutil.MockInterruptGuard
	svc        *Service
}

func newFixture(t *testing.T, queueSize int) *fixture {
	t.Helper()
	f := &fixture{
		runner:     &testutil.MockProcessRunner{},
		files:      &testutil.MockFileOperator{},
		reporter:   &testutil.MockExecutionReporter{},
		interrupts: &testutil.MockInterruptGuard{},
	}
	resolver := resolution.NewService(aliasmapping.NewStaticMapping())
	f.svc = NewService(resolver, f.runner, f.files, f.reporter, Options{QueueSize: queueSize, Interrupts: f.interrupts})
	f.svc.Start()
	t.Cleanup(f.svc.Close)
	return f
}

func TestNewService_PanicsOnNilCollaborators(t *testing.T) {
	resolver := resolution.NewService(aliasmapping.NewStaticMapping())
	runner := &testutil.MockProcessRunner{}
	files := &testutil.MockFileOperator{}
	reporter := &testutil.MockExecutionReporter{}

	cases := map[string]func(){
		"nil resolver": func() { NewService(nil, runner, files, reporter, Options{}) },
		"nil runner":   func() { NewService(resolver, nil, files, reporter, Options{}) },
		"nil files":    func() { NewService(resolver, runner, nil, reporter, Options{}) },
		"nil reporter": func() { NewService(resolver, runner, files, nil, Options{}) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, fn)
		})
	}
}

func TestService_HandleFileRead(t *testing.T) {
	t.Run("without arguments fails without touching the file system", func(t *testing.T) {
		f := newFixture(t, 1)
		called := false
		f.files.ReadFunc = func(paths ...string) error {
			called = true
			return nil
		}

		resp := f.svc.Handle(context.Background(), request.New("file-read"))

		assert.Equal(t, response.StatusError, resp.Status)
		assert.False(t, called)
		assert.Empty(t, f.reporter.Events())
	})

	t.Run("reads the given paths", func(t *testing.T) {
		f := newFixture(t, 1)
		var got []string
		f.files.ReadFunc = func(paths ...string) error {
			got = paths
			return nil
		}

		resp := f.svc.Handle(context.Background(), request.New("file-read", "a.txt", "b.txt"))

		assert.True(t, resp.IsOk())
		assert.Equal(t, []string{"a.txt", "b.txt"}, got)
	})

	t.Run("I/O failure is an error", func(t *testing.T) {
		f := newFixture(t, 1)
		f.files.ReadFunc = func(paths ...string) error { return errors.New("permission denied") }

		resp := f.svc.Handle(context.Background(), request.New("file-read", "secret"))

		assert.Equal(t, response.StatusError, resp.Status)
	})
}

func TestService_HandleFileCopy(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		copyErr    error
		wantStatus response.Status
		wantCalled bool
	}{
		{name: "source and destination", args: []string{"src", "dst"}, wantStatus: response.StatusOk, wantCalled: true},
		{name: "missing destination", args: []string{"src"}, wantStatus: response.StatusError},
		{name: "too many arguments", args: []string{"a", "b", "c"}, wantStatus: response.StatusError},
		{name: "copy failure", args: []string{"src", "dst"}, copyErr: errors.New("disk full"), wantStatus: response.StatusError, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1)
			called := false
			f.files.CopyFunc = func(src, dst string) error {
				called = true
				assert.Equal(t, tt.args[0], src)
				assert.Equal(t, tt.args[1], dst)
				return tt.copyErr
			}

			resp := f.svc.Handle(context.Background(), request.New("file-copy", tt.args...))

			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestService_HandleSystemCommand(t *testing.T) {
	t.Run("zero exit is ok", func(t *testing.T) {
		f := newFixture(t, 1)
		var gotName string
		var gotArgs []string
		f.runner.RunFunc = func(ctx context.Context, name string, args []string) error {
			gotName, gotArgs = name, args
			return nil
		}

		resp := f.svc.Handle(context.Background(), request.New("echo", "hello"))

		assert.True(t, resp.IsOk())
		assert.Equal(t, "echo", gotName)
		assert.Equal(t, []string{"hello"}, gotArgs)
		assert.Equal(t, []string{"fallback:echo", "start", "end"}, f.reporter.Events())
	})

	t.Run("runner failure is an error", func(t *testing.T) {
		f := newFixture(t, 1)
		f.runner.RunFunc = func(ctx context.Context, name string, args []string) error {
			return errors.New("exit status 1")
		}

		resp := f.svc.Handle(context.Background(), request.New("false"))

		assert.Equal(t, response.StatusError, resp.Status)
		assert.Equal(t, []string{"fallback:false", "start", "end"}, f.reporter.Events())
	})
}

func TestService_HandleSerializesExecutions(t *testing.T) {
	f := newFixture(t, 2)

	var inFlight, maxInFlight, executed atomic.Int32
	f.runner.RunFunc = func(ctx context.Context, name string, args []string) error {
		n := inFlight.Add(1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		executed.Add(1)
		return nil
	}

	const producers = 8
	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := f.svc.Handle(context.Background(), request.New("sleep"))
			assert.True(t, resp.IsOk())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(producers), executed.Load())
	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestService_HandlePreservesSubmissionOrder(t *testing.T) {
	f := newFixture(t, 4)

	var order []string
	f.runner.RunFunc = func(ctx context.Context, name string, args []string) error {
		order = append(order, name)
		return nil
	}

	for _, key := range []string{"first", "second", "third"} {
		require.True(t, f.svc.Handle(context.Background(), request.New(key)).IsOk())
	}

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestService_HandleDoesNotCancelRunningExecution(t *testing.T) {
	f := newFixture(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	release := make(chan struct{})
	var runnerCtxErr atomic.Value
	f.runner.RunFunc = func(runCtx context.Context, name string, args []string) error {
		close(started)
		<-release
		if err := runCtx.Err(); err != nil {
			runnerCtxErr.Store(err)
		}
		return nil
	}

	result := make(chan response.Response, 1)
	go func() { result <- f.svc.Handle(ctx, request.New("vim")) }()

	<-started
	cancel()
	assert.Equal(t, response.StatusError, (<-result).Status, "caller stops waiting once its context is cancelled")
	close(release)

	// The next request only runs once the previous one has finished.
	f.runner.RunFunc = func(context.Context, string, []string) error { return nil }
	require.True(t, f.svc.Handle(context.Background(), request.New("true")).IsOk())
	assert.Nil(t, runnerCtxErr.Load(), "running command observed a cancelled context")
}

func TestService_HandleWithCancelledContext(t *testing.T) {
	f := newFixture(t, 1)
	called := false
	f.runner.RunFunc = func(context.Context, string, []string) error {
		called = true
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := f.svc.Handle(ctx, request.New("echo"))

	assert.Equal(t, response.StatusError, resp.Status)
	// Give the worker a chance to pick the job up if it was queued.
	require.True(t, f.svc.Handle(context.Background(), request.New("file-read")).Status == response.StatusError)
	assert.False(t, called)
}

func TestService_HandleAfterClose(t *testing.T) {
	f := newFixture(t, 1)
	f.runner.RunFunc = func(context.Context, string, []string) error { return nil }

	f.svc.Close()
	f.svc.Close()

	resp := f.svc.Handle(context.Background(), request.New("echo"))
	assert.Equal(t, response.StatusError, resp.Status)
}

func TestService_CloseRejectsQueuedRequests(t *testing.T) {
	f := newFixture(t, 1)

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	f.runner.RunFunc = func(context.Context, string, []string) error {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return nil
	}

	first := make(chan response.Response, 1)
	go func() { first <- f.svc.Handle(context.Background(), request.New("running")) }()
	<-started

	queued := make(chan response.Response, 1)
	go func() { queued <- f.svc.Handle(context.Background(), request.New("queued")) }()
	require.Eventually(t, func() bool { return len(f.svc.jobs) == 1 }, time.Second, time.Millisecond)

	closed := make(chan struct{})
	go func() {
		f.svc.Close()
		close(closed)
	}()
	require.Eventually(t, f.svc.closed, time.Second, time.Millisecond)
	close(release)

	<-closed
	assert.True(t, (<-first).IsOk(), "the running request completes")
	assert.Equal(t, response.StatusError, (<-queued).Status)
	assert.Equal(t, int32(1), calls.Load(), "queued request ran after Close")
}

func TestService_HoldsInterruptsWhileOperating(t *testing.T) {
	f := newFixture(t, 1)

	var heldDuringRun, heldDuringRead bool
	f.runner.RunFunc = func(context.Context, string, []string) error {
		heldDuringRun = f.interrupts.Holding()
		return nil
	}
	f.files.ReadFunc = func(paths ...string) error {
		heldDuringRead = f.interrupts.Holding()
		return nil
	}

	require.True(t, f.svc.Handle(context.Background(), request.New("yes")).IsOk())
	require.True(t, f.svc.Handle(context.Background(), request.New("file-read", "/dev/urandom")).IsOk())

	assert.True(t, heldDuringRun, "external command ran without the guard")
	assert.True(t, heldDuringRead, "internal operation ran without the guard")
	assert.Equal(t, 2, f.interrupts.Holds())
	assert.False(t, f.interrupts.Holding(), "guard left held after the operation")
}

func TestService_CloseWithoutStart(t *testing.T) {
	resolver := resolution.NewService(aliasmapping.NewStaticMapping())
	svc := NewService(resolver, &testutil.MockProcessRunner{}, &testutil.MockFileOperator{}, &testutil.MockExecutionReporter{}, Options{})

	done := make(chan struct{})
	go func() {
		svc.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close() blocked on a service that was never started")
	}
}
