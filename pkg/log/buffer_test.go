package log

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type slowTransporter struct {
	captureTransporter
	delay    time.Duration
	writeErr error
}

func (s *slowTransporter) Write(entry Entry) error {
	time.Sleep(s.delay)
	if s.writeErr != nil {
		return s.writeErr
	}
	return s.captureTransporter.Write(entry)
}

func TestBuffer_Close_FlushesRemaining(t *testing.T) {
	transport := &captureTransporter{}
	buf := NewBuffer(100, transport)

	for i := 0; i < 5; i++ {
		buf.Send(*NewEntry(Info, "message"))
	}
	buf.Close()

	if n := len(transport.Entries()); n != 5 {
		t.Errorf("entries = %d, want 5", n)
	}
}

func TestBuffer_Close_CalledTwice_NoPanic(t *testing.T) {
	buf := NewBuffer(10, &captureTransporter{})
	buf.Close()
	buf.Close()
}

func TestBuffer_Send_AfterClose_Ignored(t *testing.T) {
	transport := &captureTransporter{}
	buf := NewBuffer(10, transport)
	buf.Close()

	buf.Send(*NewEntry(Info, "after close"))

	if n := len(transport.Entries()); n != 0 {
		t.Errorf("entries = %d, want 0", n)
	}
}

func TestBuffer_MultipleTransporters_AllReceiveEntry(t *testing.T) {
	t1 := &captureTransporter{}
	t2 := &captureTransporter{}
	buf := NewBuffer(10, t1, t2)

	buf.Send(*NewEntry(Info, "broadcast"))
	buf.Close()

	if len(t1.Entries()) != 1 || len(t2.Entries()) != 1 {
		t.Errorf("t1 = %d, t2 = %d, want 1 each", len(t1.Entries()), len(t2.Entries()))
	}
}

func TestBuffer_TransporterError_DoesNotStopDelivery(t *testing.T) {
	failing := &slowTransporter{writeErr: errors.New("write failed")}
	healthy := &captureTransporter{}
	buf := NewBuffer(10, failing, healthy)

	buf.Send(*NewEntry(Error, "boom"))
	buf.Close()

	if len(failing.Entries()) != 0 {
		t.Error("failing transporter should not store the entry")
	}
	if len(healthy.Entries()) != 1 {
		t.Error("healthy transporter should still receive the entry")
	}
}

func TestBuffer_Full_AccountsForEveryEntry(t *testing.T) {
	transport := &slowTransporter{delay: 5 * time.Millisecond}
	buf := NewBuffer(2, transport)

	const sent = 50
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < sent/5; j++ {
				buf.Send(*NewEntry(Info, "flood"))
			}
		}()
	}
	wg.Wait()
	buf.Close()

	delivered := int64(len(transport.Entries()))
	if delivered+buf.DroppedCount() != sent {
		t.Errorf("delivered(%d) + dropped(%d) != %d", delivered, buf.DroppedCount(), sent)
	}
}

// gatedTransporter blocks its first write until release is closed.
type gatedTransporter struct {
	captureTransporter
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedTransporter) Write(entry Entry) error {
	g.once.Do(func() {
		close(g.started)
		<-g.release
	})
	return g.captureTransporter.Write(entry)
}

func TestBuffer_Full_ShedsLowSeverityFirst(t *testing.T) {
	transport := &gatedTransporter{started: make(chan struct{}), release: make(chan struct{})}
	buf := NewBuffer(2, transport)

	buf.Send(*NewEntry(Info, "first"))
	<-transport.started

	buf.Send(*NewEntry(Error, "tip failed"))
	buf.Send(*NewEntry(Info, "request a"))
	buf.Send(*NewEntry(Info, "request b"))
	buf.Send(*NewEntry(Warn, "tip rate limited"))
	buf.Send(*NewEntry(Info, "request c"))

	close(transport.release)
	buf.Close()

	var got []string
	for _, e := range transport.Entries() {
		got = append(got, e.Message)
	}
	want := []string{"first", "tip failed", "tip rate limited"}
	if len(got) != len(want) {
		t.Fatalf("delivered %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivered[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if buf.DroppedCount() != 3 {
		t.Errorf("dropped = %d, want 3", buf.DroppedCount())
	}
}

func TestBuffer_Failures_CountedPerTransporter(t *testing.T) {
	failing := &slowTransporter{writeErr: errors.New("write failed")}
	buf := NewBuffer(10, failing)

	buf.Send(*NewEntry(Error, "one"))
	buf.Send(*NewEntry(Error, "two"))
	buf.Close()

	if got := buf.Failures()["capture"]; got != 2 {
		t.Errorf("failures = %d, want 2", got)
	}
}
