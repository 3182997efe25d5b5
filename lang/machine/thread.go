package machine

import (
	"context"

	"go.uber.org/zap"
)

// A Thread holds the state of a sequence of calls into callables. A Thread
// must not be used concurrently; independent threads share nothing and may
// run in parallel.
type Thread struct {
	// Name is an optional name that describes the thread, mostly for debugging.
	Name string

	// Logger is the diagnostic sink available to callables. If nil, the global
	// zap logger is used (a no-op unless replaced by the program).
	Logger *zap.Logger

	// MaxCallStackDepth limits the number of nested calls. If the limit is
	// reached, the call fails. A value <= 0 means no limit.
	MaxCallStackDepth int

	ctx       context.Context
	callStack []*Frame
}

// NewThread returns a thread bound to ctx. Calls made on the thread fail once
// ctx is done.
func NewThread(ctx context.Context, name string) *Thread {
	return &Thread{Name: name, ctx: ctx}
}

// Context returns the thread's context, context.Background if none was set.
func (th *Thread) Context() context.Context {
	if th.ctx == nil {
		return context.Background()
	}
	return th.ctx
}

// Log returns the thread's logger.
func (th *Thread) Log() *zap.Logger {
	if th.Logger == nil {
		return zap.L()
	}
	return th.Logger
}

// CallStackDepth returns the number of active calls on the thread.
func (th *Thread) CallStackDepth() int { return len(th.callStack) }

// CallFrame returns the frame at depth d, 0 being the innermost active call.
func (th *Thread) CallFrame(d int) *Frame {
	return th.callStack[len(th.callStack)-1-d]
}
