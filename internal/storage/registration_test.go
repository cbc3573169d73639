package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testTemplate = "procontest::testcase!(id: $id);"

func TestRegistrationStorage_Render(t *testing.T) {
	s := NewRegistrationStorage("unused", testTemplate)

	got := string(s.Render([]string{"t1", "custom"}))
	want := "procontest::testcase!(id: t1);\nprocontest::testcase!(id: custom);\n"
	if got != want {
		t.Errorf("unexpected render\nwant:\n%s\ngot:\n%s", want, got)
	}

	if got := s.Render(nil); len(got) != 0 {
		t.Errorf("expected empty render for no ids, got %q", got)
	}
}

func TestRegistrationStorage_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tests", "sample_case.rs")
	s := NewRegistrationStorage(path, testTemplate)

	if err := s.Save([]string{"t1", "t2", "edge"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	ids, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"t1", "t2", "edge"}, ids); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	// Save replaces, never appends
	if err := s.Save([]string{"t1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "procontest::testcase!(id: t1);\n" {
		t.Errorf("unexpected content %q", string(data))
	}
}

func TestRegistrationStorage_Load(t *testing.T) {
	t.Run("missing file yields no ids", func(t *testing.T) {
		s := NewRegistrationStorage(filepath.Join(t.TempDir(), "missing.rs"), testTemplate)
		ids, err := s.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 0 {
			t.Errorf("expected no ids, got %v", ids)
		}
	})

	t.Run("skips foreign lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sample_case.rs")
		content := "// generated\n  procontest::testcase!(id: t4);  \nfn helper() {}\nprocontest::testcase!(id: );\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
		ids, err := NewRegistrationStorage(path, testTemplate).Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"t4"}, ids); diff != "" {
			t.Errorf("Load() mismatch (-want +got):\n%s", diff)
		}
	})
}
