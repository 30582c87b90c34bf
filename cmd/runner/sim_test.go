package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLetters(t *testing.T) {
	tests := []struct {
		got  [6]bool
		want string
	}{
		{[6]bool{}, "------"},
		{[6]bool{true, false, true, false, false, true}, "G-N--N"},
		{[6]bool{true, true, true, true, true, true}, "GENSYN"},
	}
	for _, tt := range tests {
		if s := letters(tt.got); s != tt.want {
			t.Errorf("letters(%v) = %q, expected %q", tt.got, s, tt.want)
		}
	}
}

func TestSimIsDeterministic(t *testing.T) {
	flagDuration = 20 * time.Second
	flagDT = 16 * time.Millisecond
	flagSeed = 9
	flagLogLevel = "error"
	t.Cleanup(func() {
		flagDuration, flagDT, flagSeed, flagLogLevel = time.Minute, 16*time.Millisecond, 0, "info"
	})

	run := func() string {
		var buf bytes.Buffer
		simCmd.SetOut(&buf)
		if err := runSim(simCmd, nil); err != nil {
			t.Fatalf("runSim() failed: %v", err)
		}
		return buf.String()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed produced different output:\n%s\n---\n%s", a, b)
	}
	if !strings.Contains(a, "frames:   1250") {
		t.Errorf("expected 1250 frames of 16ms in 20s:\n%s", a)
	}
	if !strings.Contains(a, "/6)") {
		t.Errorf("letters line should carry the collected count:\n%s", a)
	}
}

func TestShopTableListsCatalog(t *testing.T) {
	view := catalogTable().View()
	for _, name := range []string{"MULTI-THREADING", "REDUNDANCY", "DEBUG PROTOCOL", "FIREWALL"} {
		if !strings.Contains(view, name) {
			t.Errorf("catalog table missing %s", name)
		}
	}
}
