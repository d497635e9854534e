package connection

import (
	"errors"
	"testing"
	"time"

	cerr "github.com/saeidalz13/battleship-referee/internal/error"
	mb "github.com/saeidalz13/battleship-referee/models/battleship"
)

func TestSessionLifecycle(t *testing.T) {
	bsm := NewBattleshipSessionManager()

	session := bsm.GenerateNewSession(nil)
	if session.Id() == "" {
		t.Fatal("session id must not be empty")
	}

	found, err := bsm.FindSession(session.Id())
	if err != nil {
		t.Fatal(err)
	}
	if found != session {
		t.Fatal("expected the generated session")
	}
	if bsm.CountSessions() != 1 {
		t.Fatalf("expected sessions: %d\tgot: %d", 1, bsm.CountSessions())
	}

	bsm.TerminateSession(session.Id())
	if _, err := bsm.FindSession(session.Id()); !errors.Is(err, cerr.ErrSessionKind) {
		t.Fatalf("expected err: %v\tgot: %v", cerr.ErrSessionKind, err)
	}
	if err := bsm.ReconnectSession(session.Id(), nil); !errors.Is(err, cerr.ErrSessionKind) {
		t.Fatalf("expected err: %v\tgot: %v", cerr.ErrSessionKind, err)
	}
}

func TestCleanupStale(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithCleanupInterval(time.Minute))

	now := time.Now()

	stale := bsm.GenerateNewSession(nil)
	stale.touch(now.Add(-time.Hour))
	fresh := bsm.GenerateNewSession(nil)

	// Created long ago but still playing
	longRunning := bsm.GenerateNewSession(nil)
	longRunning.createdAt = now.Add(-time.Hour)
	longRunning.touch(now.Add(-time.Second))

	removed := bsm.cleanupStale(now)
	if len(removed) != 1 || removed[0] != stale.Id() {
		t.Fatalf("expected removed: [%s]\tgot: %v", stale.Id(), removed)
	}

	for _, session := range []*Session{fresh, longRunning} {
		if _, err := bsm.FindSession(session.Id()); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := bsm.FindSession(stale.Id()); err == nil {
		t.Fatal("stale session must be gone")
	}
}

func TestHandleAbnormalClosureReconnect(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithGracePeriod(time.Second * 5))
	session := bsm.GenerateNewSession(nil)

	go func() {
		time.Sleep(time.Millisecond * 100)
		if err := bsm.ReconnectSession(session.Id(), nil); err != nil {
			t.Error(err)
		}
	}()

	if err := bsm.HandleAbnormalClosureSession(session, nil); err != nil {
		t.Fatalf("expected reconnection\tgot: %v", err)
	}
}

func TestHandleAbnormalClosureGracePeriodOver(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithGracePeriod(time.Millisecond * 10))
	session := bsm.GenerateNewSession(nil)

	err := bsm.HandleAbnormalClosureSession(session, nil)

	var connErr ConnErr
	if !errors.As(err, &connErr) {
		t.Fatalf("expected a ConnErr\tgot: %v", err)
	}
	if connErr.Code() != ConnLoopBreak {
		t.Fatalf("expected code: %d\tgot: %d", ConnLoopBreak, connErr.Code())
	}
}

func TestFetchCodeFromMsg(t *testing.T) {
	bsm := NewBattleshipSessionManager()

	code, err := bsm.FetchCodeFromMsg([]byte(`{"code": 5, "payload": {"x": 1, "y": 2}}`))
	if err != nil {
		t.Fatal(err)
	}
	if code != CodeFire {
		t.Fatalf("expected code: %d\tgot: %d", CodeFire, code)
	}

	if _, err := bsm.FetchCodeFromMsg([]byte("fire 1 2")); err == nil {
		t.Fatal("expected an error for a non json payload")
	}
}

func TestReconnectWhileGameChanges(t *testing.T) {
	bsm := NewBattleshipSessionManager()
	session := bsm.GenerateNewSession(nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			session.SetGame(mb.NewGame())
		}
	}()

	for i := 0; i < 100; i++ {
		if err := bsm.ReconnectSession(session.Id(), nil); err != nil {
			t.Fatal(err)
		}
	}
	<-done

	if session.Game() == nil {
		t.Fatal("expected the last game to be set")
	}
}
