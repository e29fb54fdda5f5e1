package session

import (
	"testing"
	"time"

	"github.com/motohub/moto-catalog/internal/models"
	"github.com/motohub/moto-catalog/internal/store"
)

func TestGet_EmptyIDCreatesSession(t *testing.T) {
	m := NewManager(time.Hour, store.DefaultDiscounts())

	s := m.Get("")
	if s.ID == "" {
		t.Fatal("expected a generated session id")
	}
	if s.Cart == nil || s.Compare == nil || s.Wishlist == nil {
		t.Fatal("expected fresh shopping state")
	}

	if again := m.Get(s.ID); again != s {
		t.Error("expected the same session on a repeat lookup")
	}
}

func TestGet_UnknownIDGetsFreshID(t *testing.T) {
	m := NewManager(time.Hour, store.DefaultDiscounts())

	s := m.Get("not-a-known-session")
	if s.ID == "not-a-known-session" {
		t.Error("expected an unknown id to be replaced, not adopted")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	m := NewManager(time.Hour, store.DefaultDiscounts())

	a := m.Get("")
	b := m.Get("")
	a.Cart.Add(models.Motorcycle{ID: "ducati-panigale-v4", Price: 24000}, "Red", "Standard")

	if b.Cart.TotalItems() != 0 {
		t.Error("expected the second session's cart to stay empty")
	}
}

func TestCleanup_DropsIdleSessions(t *testing.T) {
	m := NewManager(time.Millisecond, store.DefaultDiscounts())

	s := m.Get("")
	time.Sleep(5 * time.Millisecond)
	m.Cleanup()

	if m.Len() != 0 {
		t.Fatalf("expected no sessions after cleanup, got %d", m.Len())
	}

	// The old id is gone; a lookup gets a fresh session.
	if again := m.Get(s.ID); again.ID == s.ID {
		t.Error("expected the expired session not to be resurrected")
	}
}

func TestCartUsesManagerDiscountRule(t *testing.T) {
	m := NewManager(time.Hour, store.DefaultDiscounts())

	s := m.Get("")
	s.Cart.Add(models.Motorcycle{ID: "ducati-panigale-v4", Price: 10000}, "Red", "Standard")
	if !s.Cart.ApplyCoupon("RIDER10") {
		t.Error("expected the session cart to resolve RIDER10")
	}
}
