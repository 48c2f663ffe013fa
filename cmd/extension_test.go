package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// installExtension drops an executable shell script named fintrack-<name>
// into dir and puts dir at the front of PATH.
func installExtension(t *testing.T, dir, name, script string) {
	t.Helper()
	path := filepath.Join(dir, "fintrack-"+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunExtension(t *testing.T) {
	tempDir := t.TempDir()
	out := filepath.Join(tempDir, "out.txt")
	installExtension(t, tempDir, "hello",
		`printf '%s\n%s\n' "$FINTRACK_CONFIG" "$FINTRACK_CURRENCY" > "$FINTRACK_TEST_OUT"`+"\n")
	t.Setenv("FINTRACK_TEST_OUT", out)

	// Point at a config file that does not exist, so the defaults apply.
	oldConfig := *configFile
	*configFile = filepath.Join(tempDir, "fintrack.toml")
	defer func() { *configFile = oldConfig }()

	handled, code := RunExtension("hello", nil)
	if !handled {
		t.Fatal("expected the hello extension to be found")
	}
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("extension did not write its output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("unexpected extension output: %q", content)
	}
	if lines[0] != *configFile {
		t.Errorf("expected %s=%s, got %q", EnvConfigFile, *configFile, lines[0])
	}
	if lines[1] != "IDR" {
		t.Errorf("expected %s=IDR, got %q", EnvCurrency, lines[1])
	}
}

func TestRunExtensionExitCode(t *testing.T) {
	installExtension(t, t.TempDir(), "fail", "exit 3\n")

	handled, code := RunExtension("fail", nil)
	if !handled {
		t.Fatal("expected the fail extension to be found")
	}
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
}

func TestRunExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	handled, _ := RunExtension("no-such-extension", nil)
	if handled {
		t.Fatal("expected no extension to be found")
	}
}
