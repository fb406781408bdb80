package debounce

import (
	"testing"
	"time"
)

func TestPushDeliversOnceAfterQuietWindow(t *testing.T) {
	out := make(chan string, 1)
	d := New(20*time.Millisecond, out)
	d.Push("a")
	d.Push("b")
	d.Push("c")

	select {
	case v := <-out:
		if v != "c" {
			t.Fatalf("got %q, want %q", v, "c")
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for debounced value")
	}

	select {
	case v := <-out:
		t.Fatalf("unexpected second delivery: %q", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStopCancelsPendingDelivery(t *testing.T) {
	out := make(chan int, 1)
	d := New(20*time.Millisecond, out)
	d.Push(1)
	d.Stop()

	select {
	case v := <-out:
		t.Fatalf("unexpected delivery after Stop: %d", v)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestPushAfterDeliveryRestartsWindow(t *testing.T) {
	out := make(chan int, 1)
	d := New(15*time.Millisecond, out)
	d.Push(1)

	select {
	case v := <-out:
		if v != 1 {
			t.Fatalf("got %d, want 1", v)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timed out on first delivery")
	}

	d.Push(2)
	select {
	case v := <-out:
		if v != 2 {
			t.Fatalf("got %d, want 2", v)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timed out on second delivery")
	}
}
