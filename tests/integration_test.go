package tests

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const sampleTinCan = `<?xml version="1.0" encoding="utf-8"?>
<tincan xmlns="http://projecttincan.com/tincan.xsd">
  <activities>
    <activity id="http://example.com/c1" type="http://adlnet.gov/expapi/activities/course">
      <name>Safety Training</name>
    </activity>
    <activity id="http://example.com/c1/s1" type="t">
      <name>Unit 1/section</name>
    </activity>
    <activity id="http://example.com/c1/b1" type="t">
      <name>Unit 1 - Intro/blocks</name>
    </activity>
  </activities>
</tincan>`

// binaryName returns the appropriate binary name for the current OS
func binaryName() string {
	if runtime.GOOS == "windows" {
		return "rise-scorm-creator_test.exe"
	}
	return "rise-scorm-creator_test"
}

// buildTestBinary builds the test binary and returns a cleanup function
func buildTestBinary(t *testing.T) (string, func()) {
	t.Helper()
	binName := binaryName()
	buildCmd := exec.Command("go", "build", "-o", binName, "../cmd/rise-scorm-creator")
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("failed to build binary: %v", err)
	}
	return binName, func() { os.Remove(binName) }
}

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tincan.xml")
	if err := os.WriteFile(path, []byte(sampleTinCan), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestScormCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	fixture := writeFixture(t)
	outDir := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "basic package",
			args:    []string{"scorm", fixture, "--base-url", "https://example.com/rise", "-o", filepath.Join(outDir, "pkg.zip")},
			wantErr: false,
		},
		{
			name:    "missing base url",
			args:    []string{"scorm", fixture, "-o", filepath.Join(outDir, "pkg2.zip")},
			wantErr: true,
		},
		{
			name:    "non-existent file",
			args:    []string{"scorm", "nonexistent.xml", "--base-url", "https://example.com/rise"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := exec.Command("./"+binPath, tc.args...)
			cmd.Env = append(os.Environ(), "RISE_BASE_URL=")
			output, err := cmd.CombinedOutput()

			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v\noutput: %s", err, output)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(outDir, "pkg.zip")); err != nil {
		t.Errorf("expected package file to exist: %v", err)
	}
}

func TestImsccCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	fixture := writeFixture(t)
	outDir := t.TempDir()
	outPath := filepath.Join(outDir, "course.imscc")

	extraPage := filepath.Join(t.TempDir(), "syllabus.html")
	if err := os.WriteFile(extraPage, []byte("<html><head><title>Syllabus</title></head><body>Welcome</body></html>"), 0644); err != nil {
		t.Fatalf("failed to write extra page: %v", err)
	}

	cmd := exec.Command("./"+binPath, "imscc", fixture,
		"--base-url", "https://example.com/rise",
		"--url-format", "lessons",
		"--add-page", extraPage,
		"-o", outPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput: %s", err, output)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("expected cartridge file to exist: %v", err)
	}

	t.Run("invalid url format", func(t *testing.T) {
		cmd := exec.Command("./"+binPath, "imscc", fixture,
			"--base-url", "https://example.com/rise",
			"--url-format", "chapters",
			"-o", filepath.Join(outDir, "bad.imscc"))
		if _, err := cmd.CombinedOutput(); err == nil {
			t.Errorf("expected error but got none")
		}
	})
}

func TestInspectCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	fixture := writeFixture(t)

	cmd := exec.Command("./"+binPath, "inspect", fixture)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput: %s", err, output)
	}

	for _, want := range []string{"Safety Training", "Unit 1", "section", "block"} {
		if !strings.Contains(string(output), want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	cmd := exec.Command("./"+binPath, "version")
	output, err := cmd.CombinedOutput()

	if err != nil {
		t.Errorf("unexpected error: %v\noutput: %s", err, output)
	}

	if !strings.Contains(string(output), "rise-scorm-creator") {
		t.Errorf("output should contain 'rise-scorm-creator', got: %s", output)
	}
}

func TestConfigCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	t.Run("config show", func(t *testing.T) {
		cmd := exec.Command("./"+binPath, "config", "show")
		output, err := cmd.CombinedOutput()

		if err != nil {
			t.Errorf("unexpected error: %v\noutput: %s", err, output)
		}

		if !strings.Contains(string(output), "url_format") {
			t.Errorf("output should contain 'url_format', got: %s", output)
		}
	})

	t.Run("config path", func(t *testing.T) {
		cmd := exec.Command("./"+binPath, "config", "path")
		output, err := cmd.CombinedOutput()

		if err != nil {
			t.Errorf("unexpected error: %v\noutput: %s", err, output)
		}

		if !strings.Contains(string(output), "config.yaml") {
			t.Errorf("output should contain 'config.yaml', got: %s", output)
		}
	})
}

func TestHelpCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	cmd := exec.Command("./"+binPath, "--help")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Errorf("unexpected error: %v\noutput: %s", err, output)
	}

	for _, want := range []string{"scorm", "imscc", "inspect", "config"} {
		if !strings.Contains(string(output), want) {
			t.Errorf("help should list the %q command, got: %s", want, output)
		}
	}
}
