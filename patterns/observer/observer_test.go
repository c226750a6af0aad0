package observer

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderedObserver appends its name to a shared log so tests can assert
// delivery order across observers.
type orderedObserver struct {
	name string
	log  *[]string
}

func (o *orderedObserver) Update(payload string) {
	*o.log = append(*o.log, fmt.Sprintf("%s:%s", o.name, payload))
}

func TestAllSubscribersNotifiedInOrder(t *testing.T) {
	subject := NewSubject()
	var log []string
	subject.Subscribe(&orderedObserver{name: "first", log: &log})
	subject.Subscribe(&orderedObserver{name: "second", log: &log})

	subject.Notify("x")

	assert.Equal(t, []string{"first:x", "second:x"}, log)
}

func TestEachPublishDeliversOnce(t *testing.T) {
	subject := NewSubject()
	a := NewRecordingObserver("a", nil)
	b := NewRecordingObserver("b", nil)
	subject.Subscribe(a)
	subject.Subscribe(b)

	subject.Notify("x")
	subject.Notify("y")

	assert.Equal(t, []string{"x", "y"}, a.Received())
	assert.Equal(t, []string{"x", "y"}, b.Received())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestDuplicateSubscriptionNotifiesTwice(t *testing.T) {
	subject := NewSubject()
	o := NewRecordingObserver("dup", nil)
	subject.Subscribe(o)
	subject.Subscribe(o)

	subject.Notify("x")

	assert.Equal(t, []string{"x", "x"}, o.Received())
}

func TestNotifyWithNoSubscribers(t *testing.T) {
	// Must be a no-op, not a panic.
	NewSubject().Notify("x")
}

func TestDemoRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo{}.Run(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, `alice received "breaking news"`)
	assert.Contains(t, out, `bob received "breaking news"`)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("alice")), bytes.Index(buf.Bytes(), []byte("bob")))
}
