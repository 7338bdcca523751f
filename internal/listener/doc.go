// Package listener implements the discovery listener for devices announcing
// OTA update readiness over UDP broadcast.
//
// A device waiting for an update broadcasts a short datagram (for example
// "MeshtasticOTA_a1b2c3") on UDP port 3232 roughly once per second. The
// Listener binds that port on all interfaces, receives datagrams forever and
// reports each one as an Event to a Sink. A follow-up OTA transfer is made over
// TCP to the same port on the sender's address; see Event.Hint.
//
// # Lifecycle
//
//	Unbound -> Bound -> Listening -> (Processing -> Listening)* -> ShuttingDown -> Closed
//
// Bind fails terminally with a *BindError. Run blocks until the context is
// cancelled (returns nil) or the socket fails (returns a *ReceiveFault). The
// socket is released exactly once, whichever path reaches Closed.
//
// # Usage Example
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	l := listener.New(listener.DefaultConfig(), report.NewConsole(os.Stdout))
//	if err := l.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Decoding
//
// Payloads are decoded as UTF-8 text when valid and as lowercase hex
// otherwise. Decoding never fails.
//
// # Thread Safety
//
// A single goroutine reads the socket and calls the sink, so sinks see events
// in receipt order and need no locking for that path. State and Close are safe
// to call from other goroutines.
package listener
