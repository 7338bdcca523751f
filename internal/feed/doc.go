// Package feed streams discovery events to WebSocket clients.
//
// The Hub is a listener sink. Each event is encoded once as JSON (the same
// record the json output format prints) and queued to every connected client
// at /events. A client whose queue is full is dropped rather than slowing the
// receive loop. /healthz answers 200 for liveness probes.
//
//	hub := feed.NewHub()
//	if err := hub.Listen("127.0.0.1:8032"); err != nil {
//	    return err
//	}
//	defer hub.Close()
//
//	sink := report.Multi{report.NewConsole(os.Stdout, false), hub}
package feed
