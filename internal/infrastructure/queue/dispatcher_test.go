package queue

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeaid/care-portal/internal/core/ports"
)

type recordingSink struct {
	mu     sync.Mutex
	events map[string][]ports.AuditEventType
	gate   chan struct{}
}

func newRecordingSink() *recordingSink {
	return &recordingSink{events: make(map[string][]ports.AuditEventType)}
}

func (s *recordingSink) Write(_ context.Context, e ports.AuditEvent) error {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.Email] = append(s.events[e.Email], e.Type)
	return nil
}

func TestDispatcher_PreservesPerUserOrder(t *testing.T) {
	sink := newRecordingSink()
	d := NewDispatcher(4, sink, zerolog.Nop())
	d.Start()

	seq := []ports.AuditEventType{ports.AuditLoginFailed, ports.AuditLoginFailed, ports.AuditLoginSucceeded, ports.AuditLogout}
	for u := 0; u < 10; u++ {
		for _, typ := range seq {
			d.Publish(ports.AuditEvent{Type: typ, Email: fmt.Sprintf("user%d@homeaid.com", u)})
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	for u := 0; u < 10; u++ {
		got := sink.events[fmt.Sprintf("user%d@homeaid.com", u)]
		if len(got) != len(seq) {
			t.Fatalf("user%d: got %v, want %v", u, got, seq)
		}
		for i := range seq {
			if got[i] != seq[i] {
				t.Fatalf("user%d: got %v, want %v", u, got, seq)
			}
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, newRecordingSink(), zerolog.Nop())
	for _, email := range []string{"admin@homeaid.com", "manager@homeaid.com", ""} {
		first := d.shardIndex(email)
		if first < 0 || first >= 8 {
			t.Fatalf("shard %d out of range", first)
		}
		if d.shardIndex(email) != first {
			t.Fatalf("shard for %q changed between calls", email)
		}
	}
}

func TestDispatcher_PublishNeverBlocks(t *testing.T) {
	sink := newRecordingSink()
	sink.gate = make(chan struct{})
	var dropped atomic.Int64
	d := NewDispatcher(1, sink, zerolog.Nop(), WithDropHandler(func(ports.AuditEvent) { dropped.Add(1) }))
	d.Start()

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Publish(ports.AuditEvent{Type: ports.AuditLoginFailed, Email: "a@homeaid.com"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Publish blocked on a full shard")
	}
	if dropped.Load() == 0 {
		t.Fatalf("expected events to be dropped")
	}

	close(sink.gate)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = d.Close(ctx)
}

func TestDispatcher_PublishAfterCloseDrops(t *testing.T) {
	var dropped atomic.Int64
	d := NewDispatcher(2, newRecordingSink(), zerolog.Nop(), WithDropHandler(func(ports.AuditEvent) { dropped.Add(1) }))
	d.Start()
	_ = d.Close(context.Background())

	d.Publish(ports.AuditEvent{Type: ports.AuditLogout, Email: "a@homeaid.com"})
	if dropped.Load() != 1 {
		t.Fatalf("expected publish after close to be dropped")
	}
}

func TestLogSink_Write(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	err := sink.Write(context.Background(), ports.AuditEvent{Type: ports.AuditLoginSucceeded, Email: "admin@homeaid.com", Role: "admin", At: time.Now()})
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"audit":"login_succeeded"`, `"email":"admin@homeaid.com"`, `"role":"admin"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %s missing %s", out, want)
		}
	}
}
