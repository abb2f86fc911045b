package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func script(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "base16-test.sh")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestApplyWaitsAndCapturesOutput(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Shell: "/bin/sh", Stdout: &out, Stderr: &out}

	path := script(t, "printf '\\033]4;0;rgb:1d/1f/21\\033\\\\'\n")
	require.NoError(t, r.Apply(context.Background(), path))
	assert.Equal(t, "\x1b]4;0;rgb:1d/1f/21\x1b\\", out.String())
}

func TestApplyReportsFailure(t *testing.T) {
	r := &Runner{Shell: "/bin/sh"}
	err := r.Apply(context.Background(), script(t, "exit 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run")
}

func TestPreviewDoesNotWait(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "done")
	r := &Runner{Shell: "/bin/sh"}

	start := time.Now()
	require.NoError(t, r.Preview(script(t, "sleep 0.3\ntouch "+marker+"\n")))
	assert.Less(t, time.Since(start), 250*time.Millisecond)

	require.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
}

func TestPreviewMissingShell(t *testing.T) {
	r := &Runner{Shell: filepath.Join(t.TempDir(), "no-such-shell")}
	assert.Error(t, r.Preview("/dev/null"))
}
