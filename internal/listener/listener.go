package listener

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/ipv4"

	"github.com/muurk/otascout/internal/logging"
)

// Sink receives listener output. All methods are called from the receive
// goroutine, in order: Started once, Report per datagram, Stopped once on a
// clean shutdown.
type Sink interface {
	Started(addr *net.UDPAddr)
	Report(ev Event) error
	Stopped()
}

// NopSink discards all output
type NopSink struct{}

func (NopSink) Started(*net.UDPAddr) {}
func (NopSink) Report(Event) error   { return nil }
func (NopSink) Stopped()             {}

// Listener owns the UDP endpoint and the receive loop
type Listener struct {
	cfg  Config
	sink Sink
	now  func() time.Time

	conn    *net.UDPConn
	ifIndex int // Arrival interface filter, 0 = all

	state     atomic.Int32
	closeOnce sync.Once
	closeErr  error
}

// New creates a listener in the Unbound state. A nil sink discards output.
func New(cfg Config, sink Sink) *Listener {
	if sink == nil {
		sink = NopSink{}
	}
	return &Listener{
		cfg:  cfg,
		sink: sink,
		now:  time.Now,
	}
}

// Config returns a copy of the listener configuration
func (l *Listener) Config() Config {
	return l.cfg
}

// State returns the current lifecycle state
func (l *Listener) State() State {
	return State(l.state.Load())
}

// LocalAddr returns the bound address, or nil before Bind
func (l *Listener) LocalAddr() *net.UDPAddr {
	if l.conn == nil {
		return nil
	}
	addr, _ := l.conn.LocalAddr().(*net.UDPAddr)
	return addr
}

// Start binds the endpoint and runs the receive loop until ctx is cancelled
func (l *Listener) Start(ctx context.Context) error {
	if err := l.Bind(); err != nil {
		return err
	}
	return l.Run(ctx)
}

// Bind acquires the UDP endpoint on all interfaces with address reuse enabled.
// A failure is terminal: the listener moves to Closed and must be recreated.
func (l *Listener) Bind() error {
	addr := l.cfg.Address()

	if !l.state.CompareAndSwap(int32(StateUnbound), int32(StateBound)) {
		return &BindError{
			Reason: ReasonOther,
			Addr:   addr,
			Detail: fmt.Sprintf("listener is %s", l.State()),
		}
	}

	if err := l.cfg.Validate(); err != nil {
		l.setState(StateClosed)
		return &BindError{Reason: ReasonOther, Addr: addr, Detail: err.Error(), Err: err}
	}

	if l.cfg.Interface != "" {
		iface, err := net.InterfaceByName(l.cfg.Interface)
		if err != nil {
			l.setState(StateClosed)
			return &BindError{
				Reason: ReasonOther,
				Addr:   addr,
				Detail: fmt.Sprintf("unknown interface %q", l.cfg.Interface),
				Err:    err,
			}
		}
		l.ifIndex = iface.Index
	}

	lc := net.ListenConfig{Control: reuseAddrControl}
	pc, err := lc.ListenPacket(context.Background(), "udp4", addr)
	if err != nil {
		l.setState(StateClosed)
		return ClassifyBindError(addr, err)
	}
	l.conn = pc.(*net.UDPConn)

	if l.ifIndex != 0 {
		if err := ipv4.NewPacketConn(l.conn).SetControlMessage(ipv4.FlagInterface, true); err != nil {
			l.release()
			l.setState(StateClosed)
			return &BindError{
				Reason: ReasonOther,
				Addr:   addr,
				Detail: fmt.Sprintf("interface filter unsupported: %v", err),
				Err:    err,
			}
		}
	}

	logging.LogSocketEvent(l.conn.LocalAddr().String(), "bound")
	return nil
}

// Run receives datagrams until ctx is cancelled or Close is called, reporting
// each to the sink before reading the next. It returns nil on a requested
// shutdown and a *ReceiveFault if the socket fails. The socket is released
// before Run returns.
func (l *Listener) Run(ctx context.Context) error {
	if !l.state.CompareAndSwap(int32(StateBound), int32(StateListening)) {
		return ErrNotBound
	}

	defer func() {
		l.release()
		l.setState(StateClosed)
	}()

	// Closing the socket is what unblocks a pending read on cancellation.
	stop := context.AfterFunc(ctx, l.shutdown)
	defer stop()

	local := l.LocalAddr()
	l.sink.Started(local)
	logging.Info("Listening for OTA broadcasts",
		zap.String("addr", local.String()),
		zap.Int("buffer_size", l.cfg.BufferSize),
		zap.String("interface", l.cfg.Interface),
	)

	buf := make([]byte, l.cfg.BufferSize)
	var oob []byte
	if l.ifIndex != 0 {
		oob = ipv4.NewControlMessage(ipv4.FlagInterface)
	}

	for {
		n, oobn, flags, src, readErr := l.conn.ReadMsgUDP(buf, oob)
		truncated, readErr := readTruncated(flags, readErr)
		if readErr != nil {
			if l.State() == StateShuttingDown {
				logging.Info("Listener stopping", zap.String("addr", local.String()))
				l.sink.Stopped()
				return nil
			}
			logging.Error("Receive failed", zap.String("addr", local.String()), zap.Error(readErr))
			return &ReceiveFault{Addr: local.String(), Err: readErr}
		}

		if !l.state.CompareAndSwap(int32(StateListening), int32(StateProcessing)) {
			// Shutdown raced this read; the datagram is complete, so report it.
			logging.Debug("Datagram received during shutdown", zap.String("remote_addr", src.String()))
		}

		if l.ifIndex != 0 && !l.arrivedOnInterface(oob[:oobn]) {
			logging.Debug("Datagram skipped by interface filter", zap.String("remote_addr", src.String()))
			l.state.CompareAndSwap(int32(StateProcessing), int32(StateListening))
			continue
		}

		payload := make([]byte, n)
		copy(payload, buf[:n])
		logging.LogDatagram(src.String(), payload, truncated)

		ev := NewEvent(src, payload, truncated, local.Port, l.now())
		if err := l.sink.Report(ev); err != nil {
			logging.Warn("Failed to report event",
				zap.String("remote_addr", ev.Source()),
				zap.Error(err),
			)
		}

		l.state.CompareAndSwap(int32(StateProcessing), int32(StateListening))
	}
}

// Close requests shutdown. A running loop returns nil from Run; a listener
// that is not running moves straight to Closed.
func (l *Listener) Close() error {
	prev := l.beginShutdown()
	if prev != StateListening && prev != StateProcessing {
		l.release()
		l.setState(StateClosed)
	}
	return l.closeErr
}

func (l *Listener) shutdown() {
	l.beginShutdown()
}

// beginShutdown moves an active listener to ShuttingDown and closes the
// socket. Returns the state it found.
func (l *Listener) beginShutdown() State {
	for {
		s := l.State()
		if s == StateShuttingDown || s == StateClosed {
			return s
		}
		if l.state.CompareAndSwap(int32(s), int32(StateShuttingDown)) {
			if s == StateListening || s == StateProcessing {
				l.release()
			}
			return s
		}
	}
}

// release closes the socket exactly once
func (l *Listener) release() {
	l.closeOnce.Do(func() {
		if l.conn == nil {
			return
		}
		l.closeErr = l.conn.Close()
		logging.LogSocketEvent(l.conn.LocalAddr().String(), "closed")
	})
}

func (l *Listener) arrivedOnInterface(oob []byte) bool {
	var cm ipv4.ControlMessage
	if err := cm.Parse(oob); err != nil {
		return false
	}
	return cm.IfIndex == l.ifIndex
}

func (l *Listener) setState(s State) {
	l.state.Store(int32(s))
}
