package server

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/ssh"
)

func TestMaxSessionsMiddlewareReleasesSlotOnContextDone(t *testing.T) {
	mw := MaxSessionsMiddleware(1)

	blockCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	first := newFakeSession(blockCtx, "203.0.113.10")
	second := newFakeSession(context.Background(), "203.0.113.11")

	releaseHandler := make(chan struct{})
	handler := mw(func(ssh.Session) {
		<-releaseHandler
	})

	done := make(chan struct{})
	go func() {
		handler(first)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	handler(second)
	if w := second.written(); len(w) != 1 || w[0] != "max sessions exceeded\n" {
		t.Fatalf("unexpected overflow writes: %#v", w)
	}

	cancel()
	time.Sleep(20 * time.Millisecond)

	third := newFakeSession(context.Background(), "203.0.113.12")
	called := false
	handler = mw(func(ssh.Session) { called = true })
	handler(third)
	if !called {
		t.Fatal("expected slot to be available after context cancellation")
	}

	close(releaseHandler)
	<-done
}

func TestMaxSessionsMiddlewareRecoversFromPanicAndReleasesSlot(t *testing.T) {
	mw := MaxSessionsMiddleware(1)

	mw(func(ssh.Session) { panic("boom") })(newFakeSession(context.Background(), "203.0.113.20"))

	called := false
	mw(func(ssh.Session) { called = true })(newFakeSession(context.Background(), "203.0.113.21"))
	if !called {
		t.Fatal("expected slot to be released after panic")
	}
}

func TestMaxSessionsMiddlewareDoesNotDoubleRelease(t *testing.T) {
	mw := MaxSessionsMiddleware(1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	releaseFirst := make(chan struct{})
	h := mw(func(ssh.Session) { <-releaseFirst })
	doneFirst := make(chan struct{})
	go func() {
		h(newFakeSession(ctx, "203.0.113.30"))
		close(doneFirst)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	close(releaseFirst)
	<-doneFirst

	releaseSecond := make(chan struct{})
	gate := mw(func(ssh.Session) { <-releaseSecond })
	doneSecond := make(chan struct{})
	go func() {
		gate(newFakeSession(context.Background(), "203.0.113.31"))
		close(doneSecond)
	}()

	time.Sleep(20 * time.Millisecond)
	third := newFakeSession(context.Background(), "203.0.113.32")
	gate(third)
	if w := third.written(); len(w) != 1 || w[0] != "max sessions exceeded\n" {
		t.Fatalf("unexpected overflow writes: %#v", w)
	}

	close(releaseSecond)
	<-doneSecond
}
