package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Woff2Usage is what woff2_decompress prints when it is not given exactly
// one argument.
const Woff2Usage = "One argument, the input filename, must be provided."

// FakeTool is a shell script standing in for woff2_decompress.
type FakeTool struct {
	Path    string
	CallLog string
}

// Calls returns the input paths the tool has been invoked with, excluding
// usage probes.
func (f FakeTool) Calls(t testing.TB) []string {
	t.Helper()
	data, err := os.ReadFile(f.CallLog)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var calls []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			calls = append(calls, line)
		}
	}
	return calls
}

// FakeWoff2Tool writes a tool into dir that, given one argument, writes
// output next to it with a .ttf extension, the way woff2_decompress does.
func FakeWoff2Tool(t testing.TB, dir string, output []byte) FakeTool {
	t.Helper()
	fixture := WriteFile(t, dir, "fake-woff2-output.bin", output)
	return writeTool(t, dir, "woff2_decompress", fmt.Sprintf(`cp %q "${1%%.*}.ttf"`, fixture))
}

// BrokenWoff2Tool passes the usage probe but never produces output.
func BrokenWoff2Tool(t testing.TB, dir string) FakeTool {
	t.Helper()
	return writeTool(t, dir, "woff2_broken", `echo "corrupt input" >&2; exit 1`)
}

// HangingWoff2Tool passes the usage probe and then sleeps.
func HangingWoff2Tool(t testing.TB, dir string) FakeTool {
	t.Helper()
	return writeTool(t, dir, "woff2_hanging", `exec sleep 30`)
}

// LingeringWoff2Tool prints the usage message and exits while a
// background child keeps its output open for thirty seconds.
func LingeringWoff2Tool(t testing.TB, dir string) FakeTool {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools need /bin/sh")
	}

	script := fmt.Sprintf("#!/bin/sh\necho %q >&2\nsleep 30 &\nexit 1\n", Woff2Usage)
	path := filepath.Join(dir, "woff2_lingering")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return FakeTool{Path: path, CallLog: filepath.Join(dir, "woff2_lingering.calls")}
}

// MissingTool returns a path where no executable exists.
func MissingTool(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "no-such-woff2-tool")
}

func writeTool(t testing.TB, dir, name, action string) FakeTool {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools need /bin/sh")
	}

	log := filepath.Join(dir, name+".calls")
	script := fmt.Sprintf(`#!/bin/sh
if [ "$#" -ne 1 ]; then
	echo %q >&2
	exit 1
fi
echo "$1" >> %q
%s
`, Woff2Usage, log, action)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return FakeTool{Path: path, CallLog: log}
}
