package grace

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	DefaultShutdownTimeout = time.Second * 5
)

// Hold waits for SIGINT or SIGTERM and runs shutdown once with a timeout.
type Hold struct {
	signalChan chan os.Signal
	done       chan struct{}
	timeout    time.Duration
	shutdown   func(ctx context.Context) (err error)
}

func NewHold(shutdown func(ctx context.Context) (err error)) *Hold {
	if shutdown == nil {
		panic("param shutdown must be gave")
	}

	return &Hold{
		signalChan: make(chan os.Signal, 1),
		done:       make(chan struct{}),
		timeout:    DefaultShutdownTimeout,
		shutdown:   shutdown,
	}
}

func (h *Hold) WithTimeout(timeout time.Duration) *Hold {
	h.timeout = timeout
	return h
}

// Start blocks until a signal arrives or Stop is called. It reports whether
// shutdown ran and the error it returned.
func (h *Hold) Start() (signaled bool, err error) {
	signal.Notify(h.signalChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(h.signalChan)

	select {
	case <-h.signalChan:
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()
		return true, h.shutdown(ctx)
	case <-h.done:
		return false, nil
	}
}

// Stop releases Start without running shutdown. Stop must be called at most once.
func (h *Hold) Stop() {
	close(h.done)
}
