package ui

import (
	"testing"
	"time"
)

func TestTickExpiresInfoAndRearms(t *testing.T) {
	m := NewModel(Options{Bookmarks: []string{"/a"}, RefreshInterval: time.Second})
	m.setInfo("hello")
	m.infoExpire = time.Now().Add(-time.Second)

	_, cmd := m.Update(tickMsg(time.Now()))
	if m.infoMsg != "" {
		t.Fatalf("expected expired info to be cleared, got %q", m.infoMsg)
	}
	if !m.infoExpire.IsZero() {
		t.Fatalf("expected expiry reset, got %v", m.infoExpire)
	}
	if cmd == nil {
		t.Fatalf("expected tick to schedule the next tick")
	}
}

func TestTickKeepsFreshInfo(t *testing.T) {
	m := NewModel(Options{Bookmarks: []string{"/a"}, RefreshInterval: time.Second})
	m.setInfo("hello")

	m.Update(tickMsg(time.Now()))
	if m.infoMsg != "hello" {
		t.Fatalf("expected info to survive until it expires, got %q", m.infoMsg)
	}
}

func TestTickWithoutRefreshStops(t *testing.T) {
	m := NewModel(Options{Bookmarks: []string{"/a"}})
	m.setInfo("hello")
	m.infoExpire = time.Now().Add(-time.Second)

	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Fatalf("expected no follow-up tick when refresh is disabled")
	}
	if m.infoMsg != "" {
		t.Fatalf("expected expired info to be cleared, got %q", m.infoMsg)
	}
}

func TestInitSchedulesTickOnlyWithRefresh(t *testing.T) {
	if cmd := NewModel(Options{Bookmarks: []string{"/a"}}).Init(); cmd != nil {
		t.Fatalf("expected no startup command without refresh or watcher")
	}
	if cmd := NewModel(Options{Bookmarks: []string{"/a"}, RefreshInterval: time.Second}).Init(); cmd == nil {
		t.Fatalf("expected startup tick")
	}
}
