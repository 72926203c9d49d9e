package daemon

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
)

// Lifecycle shuts the worker down after a period without requests.
type Lifecycle struct {
	mu           sync.Mutex
	timer        *time.Timer
	startTime    time.Time
	lastActivity time.Time
	timeout      time.Duration
	shutdownChan chan struct{}
	shutdownOnce sync.Once
}

// NewLifecycle creates a lifecycle that triggers shutdown after timeout of inactivity.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	now := time.Now()
	l := &Lifecycle{
		startTime:    now,
		lastActivity: now,
		timeout:      timeout,
		shutdownChan: make(chan struct{}),
	}
	l.timer = time.AfterFunc(timeout, l.triggerShutdown)
	return l
}

// ResetTimer records activity and restarts the inactivity timer.
func (l *Lifecycle) ResetTimer() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastActivity = time.Now()
	l.timer.Reset(l.timeout)
}

// UnaryInterceptor resets the inactivity timer before every call.
// Calls still running when the timer fires do not keep the worker alive;
// the timeout is far longer than any single request.
func (l *Lifecycle) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		l.ResetTimer()
		return handler(ctx, req)
	}
}

// IdleRemaining returns the duration until auto-shutdown.
func (l *Lifecycle) IdleRemaining() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return max(l.timeout-time.Since(l.lastActivity), 0)
}

// Uptime returns how long the worker has been running.
func (l *Lifecycle) Uptime() time.Duration {
	return time.Since(l.startTime)
}

// LastActivity returns the time of the last request.
func (l *Lifecycle) LastActivity() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastActivity
}

// ShutdownChan returns a channel that closes when shutdown is triggered.
func (l *Lifecycle) ShutdownChan() <-chan struct{} {
	return l.shutdownChan
}

func (l *Lifecycle) triggerShutdown() {
	l.shutdownOnce.Do(func() {
		close(l.shutdownChan)
	})
}

// Shutdown stops the timer and triggers shutdown.
func (l *Lifecycle) Shutdown() {
	l.timer.Stop()
	l.triggerShutdown()
}
