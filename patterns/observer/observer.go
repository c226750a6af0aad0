/*
Package observer demonstrates the Observer pattern: a subject holding an
ordered subscriber list and notifying every subscriber synchronously on
each publish, in subscription order.

Duplicates are permitted; there is no identity check on subscribe and no
unsubscribe operation.
*/
package observer

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Observer receives published payloads
type Observer interface {
	Update(payload string)
}

// Subject Publisher holding subscribers in subscription order
type Subject struct {
	subscribers []Observer
}

// NewSubject creates a subject with no subscribers
func NewSubject() *Subject {
	return &Subject{}
}

// Subscribe appends an observer. Subscribing the same observer twice
// means it is notified twice per publish.
func (s *Subject) Subscribe(o Observer) {
	s.subscribers = append(s.subscribers, o)
}

// Notify delivers payload to every subscriber once, synchronously, in
// subscription order.
func (s *Subject) Notify(payload string) {
	for _, o := range s.subscribers {
		o.Update(payload)
	}
}

// RecordingObserver records every payload it receives, tagged with a
// unique identity. Used by the demonstration and handy in tests.
type RecordingObserver struct {
	id       string
	name     string
	received []string
	out      io.Writer
}

// NewRecordingObserver creates an observer writing notifications to out
func NewRecordingObserver(name string, out io.Writer) *RecordingObserver {
	return &RecordingObserver{
		id:   uuid.NewString(),
		name: name,
		out:  out,
	}
}

func (o *RecordingObserver) Update(payload string) {
	o.received = append(o.received, payload)
	if o.out != nil {
		fmt.Fprintf(o.out, "%s received %q\n", o.name, payload)
	}
}

// ID Unique identity of this observer
func (o *RecordingObserver) ID() string { return o.id }

// Received Payloads received so far, in delivery order
func (o *RecordingObserver) Received() []string { return o.received }

// Demo Observer demonstration
type Demo struct{}

func (Demo) Name() string { return "observer" }

func (Demo) Describe() string {
	return "synchronous publish/subscribe notification in subscription order"
}

func (Demo) Run(_ context.Context, out io.Writer) error {
	subject := NewSubject()
	subject.Subscribe(NewRecordingObserver("alice", out))
	subject.Subscribe(NewRecordingObserver("bob", out))

	subject.Notify("breaking news")
	subject.Notify("weather update")
	return nil
}
