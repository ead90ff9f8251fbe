package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExitsWithCodeOne(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	prevStderr, prevExit := stderr, exit
	stderr = &buf
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		stderr = prevStderr
		exit = prevExit
	})

	Exitf("fatal: %s", "storage unavailable")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "fatal: storage unavailable\n" {
		t.Fatalf("stderr = %q, want %q", got, "fatal: storage unavailable\n")
	}
}
