package report

import (
	"fmt"
	"io"
	"net"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/muurk/otascout/internal/listener"
)

// DeviceSummary aggregates the beacons seen from one device
type DeviceSummary struct {
	Key       string // DeviceID, or source IP for payloads that are not beacons
	DeviceID  string
	LastIP    string
	Beacons   int
	FirstSeen time.Time
	LastSeen  time.Time
}

// Tally counts beacons per device during a run and prints a summary table on
// Stopped. It never suppresses events; other sinks still see every datagram.
// State is in memory only.
type Tally struct {
	out     io.Writer
	devices map[string]*DeviceSummary
}

// NewTally creates a tally sink that renders its summary to out
func NewTally(out io.Writer) *Tally {
	return &Tally{
		out:     out,
		devices: make(map[string]*DeviceSummary),
	}
}

func (t *Tally) Started(*net.UDPAddr) {}

// Report counts the event against its device
func (t *Tally) Report(ev listener.Event) error {
	key := ev.DeviceID
	if key == "" {
		key = ev.SourceIP
	}

	d, ok := t.devices[key]
	if !ok {
		d = &DeviceSummary{
			Key:       key,
			DeviceID:  ev.DeviceID,
			FirstSeen: ev.ReceivedAt,
		}
		t.devices[key] = d
	}
	d.Beacons++
	d.LastIP = ev.SourceIP
	d.LastSeen = ev.ReceivedAt
	return nil
}

// Stopped renders the summary table
func (t *Tally) Stopped() {
	t.Render()
}

// Snapshot returns the device summaries ordered by first sighting
func (t *Tally) Snapshot() []DeviceSummary {
	out := make([]DeviceSummary, 0, len(t.devices))
	for _, d := range t.devices {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FirstSeen.Equal(out[j].FirstSeen) {
			return out[i].Key < out[j].Key
		}
		return out[i].FirstSeen.Before(out[j].FirstSeen)
	})
	return out
}

// Render writes the summary table to the output
func (t *Tally) Render() {
	devices := t.Snapshot()
	if len(devices) == 0 {
		_, _ = fmt.Fprintln(t.out, "No devices seen.")
		return
	}

	_, _ = fmt.Fprintf(t.out, "\nSeen %d device(s):\n", len(devices))

	table := tablewriter.NewWriter(t.out)
	table.SetHeader([]string{"Device", "Last IP", "Beacons", "First Seen", "Last Seen"})
	table.SetAutoFormatHeaders(false)
	for _, d := range devices {
		name := d.DeviceID
		if name == "" {
			name = "-"
		}
		table.Append([]string{
			name,
			d.LastIP,
			strconv.Itoa(d.Beacons),
			d.FirstSeen.Format(time.TimeOnly),
			d.LastSeen.Format(time.TimeOnly),
		})
	}
	table.Render()
}
