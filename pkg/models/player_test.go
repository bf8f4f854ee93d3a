package models

import "testing"

func TestPlayerStatus(t *testing.T) {
	p := &Player{Activated: 1700000000}
	if !p.IsActive() || p.IsBanned() {
		t.Fatalf("expected active player")
	}
	p.Activated = -1
	if p.IsActive() || !p.IsBanned() {
		t.Fatalf("expected banned player")
	}
	p.Activated = 0
	if p.IsActive() || p.IsBanned() {
		t.Fatalf("expected inactive, not banned")
	}
}

func TestPlayerPermissions(t *testing.T) {
	p := &Player{Permissions: PermEditTiles}
	if !p.Can(PermEditTiles) {
		t.Fatalf("expected edit permission")
	}
	if p.Can(PermAdmin) || p.Can(PermEditTiles|PermAdmin) {
		t.Fatalf("unexpected admin permission")
	}
	if p.IsGuest() {
		t.Fatalf("expected a registered player")
	}
	if !(&Player{AuthMethod: "guest"}).IsGuest() {
		t.Fatalf("expected a guest")
	}
}
