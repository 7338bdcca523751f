package report

import (
	"encoding/json"
	"io"
	"net"

	"github.com/muurk/otascout/internal/listener"
)

// Record is the JSON form of an event, adding the follow-up hint
type Record struct {
	listener.Event
	Hint string `json:"hint"`
}

// NewRecord wraps an event for serialization
func NewRecord(ev listener.Event) Record {
	return Record{Event: ev, Hint: ev.Hint()}
}

// JSONLines writes one JSON object per event, newline separated
type JSONLines struct {
	enc *json.Encoder
}

// NewJSONLines creates a JSON lines sink
func NewJSONLines(out io.Writer) *JSONLines {
	return &JSONLines{enc: json.NewEncoder(out)}
}

func (j *JSONLines) Started(*net.UDPAddr) {}

// Report encodes the event
func (j *JSONLines) Report(ev listener.Event) error {
	return j.enc.Encode(NewRecord(ev))
}

func (j *JSONLines) Stopped() {}
