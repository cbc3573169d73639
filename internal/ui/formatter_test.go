package ui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"procon/internal/config"
	"procon/internal/domain"
)

func newTestFormatter(t *testing.T) (*Formatter, *bytes.Buffer) {
	t.Helper()
	oldNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = oldNoColor })

	cfg := config.New()
	cfg.ProjectPath = "/project"
	f := NewFormatter(cfg)
	var buf bytes.Buffer
	f.SetOutput(&buf)
	return f, &buf
}

func testcaseFor(id string, hasOutput bool) domain.Testcase {
	dir := filepath.FromSlash("/project/tests")
	return domain.Testcase{
		ID:         id,
		InputPath:  domain.InputPath(dir, id),
		OutputPath: domain.OutputPath(dir, id),
		HasInput:   true,
		HasOutput:  hasOutput,
	}
}

func TestFormatter_PrintCaseList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		f, buf := newTestFormatter(t)
		f.PrintCaseList(nil, nil)
		if got := buf.String(); got != "No testcases found\n" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("tree with markers", func(t *testing.T) {
		f, buf := newTestFormatter(t)
		cases := []domain.Testcase{
			testcaseFor("t1", true),
			testcaseFor("t2", false),
			testcaseFor("custom", true),
		}
		f.PrintCaseList(cases, []string{"t1", "t2", "t9"})

		want := strings.Join([]string{
			"Found 3 testcase(s) in tests:",
			"├── t1",
			"├── t2 [missing output]",
			"└── custom [unregistered]",
			"",
			"Registered but missing on disk: t9 (run `procon sync`)",
			"",
		}, "\n")
		if got := buf.String(); got != want {
			t.Errorf("unexpected output\nwant:\n%s\ngot:\n%s", want, got)
		}
	})

	t.Run("nothing registered", func(t *testing.T) {
		f, buf := newTestFormatter(t)
		cases := []domain.Testcase{
			testcaseFor("t1", true),
			testcaseFor("t2", true),
		}
		f.PrintCaseList(cases, nil)

		want := strings.Join([]string{
			"Found 2 testcase(s) in tests:",
			"├── t1 [unregistered]",
			"└── t2 [unregistered]",
			"",
		}, "\n")
		if got := buf.String(); got != want {
			t.Errorf("unexpected output\nwant:\n%s\ngot:\n%s", want, got)
		}
	})
}

func TestFormatter_PrintAdded(t *testing.T) {
	f, buf := newTestFormatter(t)
	f.PrintAdded(testcaseFor("t3", true))

	want := "✓ Added t3\n  tests/t3_in.txt\n  tests/t3_out.txt\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatter_PrintSynced(t *testing.T) {
	f, buf := newTestFormatter(t)
	f.PrintSynced(2)

	want := "✓ Registered 2 testcase(s) in tests/sample_case.rs\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output %q", got)
	}
}
