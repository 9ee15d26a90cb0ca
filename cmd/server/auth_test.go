package main

import (
	"strings"
	"testing"
	"time"
)

func TestCheckPIN(t *testing.T) {
	auth := newAuthService("4821", "test-secret")

	if !auth.checkPIN("4821") {
		t.Fatal("correct PIN rejected")
	}
	if auth.checkPIN("0000") {
		t.Fatal("wrong PIN accepted")
	}
	if auth.checkPIN("") {
		t.Fatal("empty PIN accepted")
	}
}

func TestCheckPINUnconfigured(t *testing.T) {
	auth := newAuthService("", "test-secret")

	if auth.checkPIN("") {
		t.Fatal("unconfigured PIN must reject every candidate")
	}
	if auth.checkPIN("anything") {
		t.Fatal("unconfigured PIN must reject every candidate")
	}
}

func TestSessionValueRoundTrip(t *testing.T) {
	auth := newAuthService("4821", "test-secret")

	value := auth.createSessionValue()
	if !auth.verifySessionValue(value) {
		t.Fatalf("freshly created session value failed verification: %q", value)
	}
}

func TestSessionValueExpires(t *testing.T) {
	issued := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	auth := newAuthService("4821", "test-secret")
	auth.now = func() time.Time { return issued }

	value := auth.createSessionValue()

	auth.now = func() time.Time { return issued.Add(23 * time.Hour) }
	if !auth.verifySessionValue(value) {
		t.Fatal("session rejected before expiry")
	}

	auth.now = func() time.Time { return issued.Add(25 * time.Hour) }
	if auth.verifySessionValue(value) {
		t.Fatal("session accepted after expiry")
	}

	// A session issued in the future is never valid.
	auth.now = func() time.Time { return issued.Add(-time.Hour) }
	if auth.verifySessionValue(value) {
		t.Fatal("session accepted before its issue time")
	}
}

func TestSessionValueTampered(t *testing.T) {
	auth := newAuthService("4821", "test-secret")
	value := auth.createSessionValue()

	parts := strings.SplitN(value, ".", 2)
	if len(parts) != 2 {
		t.Fatalf("unexpected session value shape: %q", value)
	}
	tampered := parts[0] + "x." + parts[1]
	if auth.verifySessionValue(tampered) {
		t.Fatal("tampered payload accepted")
	}

	other := newAuthService("4821", "different-secret")
	if other.verifySessionValue(value) {
		t.Fatal("session signed with another secret accepted")
	}

	for _, garbage := range []string{"", ".", "abc", "abc.def.ghi", "!!!.zzz"} {
		if auth.verifySessionValue(garbage) {
			t.Fatalf("garbage session value accepted: %q", garbage)
		}
	}
}
