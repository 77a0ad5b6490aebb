package startup

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"

	"go.uber.org/zap"
)

// State is a phase of the boot protocol.
type State int32

const (
	NotStarted State = iota
	ConnectingDB
	Listening
	// Failed is terminal.
	Failed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case ConnectingDB:
		return "connecting_db"
	case Listening:
		return "listening"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// ErrAlreadyStarted is returned when Start runs more than once.
var ErrAlreadyStarted = errors.New("startup already attempted")

// Connector establishes the database connection. Any retry or timeout policy
// belongs to the connector.
type Connector func(ctx context.Context) error

// Listener binds the network listener for addr.
type Listener func(addr string) (net.Listener, error)

// Config holds the sequencer's inputs.
type Config struct {
	// Port is the TCP port to bind once the database is up.
	Port int
	// Logger receives the startup confirmation and failure reports.
	Logger *zap.Logger
}

// Outcome is the result of a boot attempt. The caller owns the process exit.
type Outcome struct {
	State State
	// Listener is bound when State is Listening.
	Listener net.Listener
	// Err is the failure reason when State is Failed.
	Err error
}

// ExitCode maps the outcome to a process exit status.
func (o Outcome) ExitCode() int {
	if o.State == Listening {
		return 0
	}
	return 1
}

// Sequencer runs the two-phase boot: connect the database, then listen.
type Sequencer struct {
	cfg     Config
	connect Connector
	listen  Listener
	state   atomic.Int32
}

// New creates a sequencer. A nil listener binds TCP with net.Listen.
func New(cfg Config, connect Connector, listen Listener) *Sequencer {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if listen == nil {
		listen = func(addr string) (net.Listener, error) {
			return net.Listen("tcp", addr)
		}
	}
	return &Sequencer{cfg: cfg, connect: connect, listen: listen}
}

// State returns the current phase.
func (s *Sequencer) State() State {
	return State(s.state.Load())
}

// Start connects the database and, only if that succeeds, binds the
// listener exactly once. It never terminates the process.
func (s *Sequencer) Start(ctx context.Context) Outcome {
	if !s.state.CompareAndSwap(int32(NotStarted), int32(ConnectingDB)) {
		return Outcome{State: Failed, Err: ErrAlreadyStarted}
	}

	if err := s.connect(ctx); err != nil {
		return s.fail(fmt.Errorf("database connection failed: %w", err))
	}

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	ln, err := s.listen(addr)
	if err != nil {
		return s.fail(fmt.Errorf("failed to listen on %s: %w", addr, err))
	}

	s.state.Store(int32(Listening))
	s.cfg.Logger.Info("Server running",
		zap.Int("port", s.cfg.Port),
		zap.String("url", fmt.Sprintf("http://localhost:%d", s.cfg.Port)),
	)
	return Outcome{State: Listening, Listener: ln}
}

func (s *Sequencer) fail(err error) Outcome {
	s.state.Store(int32(Failed))
	s.cfg.Logger.Error("Failed to start server", zap.Error(err))
	return Outcome{State: Failed, Err: err}
}
