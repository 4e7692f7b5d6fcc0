package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeContactFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing contact file: %v", err)
	}
	return path
}

func TestReadContactEmail(t *testing.T) {
	path := writeContactFile(t, "[NCBI]\nemail = curator@example.org\n")
	email, err := ReadContactEmail(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "curator@example.org" {
		t.Fatalf("unexpected email: %q", email)
	}
}

func TestReadContactEmailMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	_, err := ReadContactEmail(path)
	if !errors.Is(err, ErrContactConfigMissing) {
		t.Fatalf("expected ErrContactConfigMissing, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "NCBI") || !strings.Contains(msg, "email") {
		t.Fatalf("remediation text missing from error: %q", msg)
	}
}

func TestReadContactEmailMissingKey(t *testing.T) {
	path := writeContactFile(t, "[NCBI]\napi_key = abc\n")
	_, err := ReadContactEmail(path)
	if !errors.Is(err, ErrContactEmailMissing) {
		t.Fatalf("expected ErrContactEmailMissing, got %v", err)
	}
	if !strings.Contains(err.Error(), "NCBI") {
		t.Fatalf("remediation text missing from error: %q", err.Error())
	}
}

func TestReadContactEmailEmptyValue(t *testing.T) {
	path := writeContactFile(t, "[NCBI]\nemail =\n")
	_, err := ReadContactEmail(path)
	if !errors.Is(err, ErrContactEmailMissing) {
		t.Fatalf("expected ErrContactEmailMissing, got %v", err)
	}
}

func TestReadContactEmailMissingSection(t *testing.T) {
	path := writeContactFile(t, "[OTHER]\nemail = someone@example.org\n")
	_, err := ReadContactEmail(path)
	if !errors.Is(err, ErrContactEmailMissing) {
		t.Fatalf("expected ErrContactEmailMissing, got %v", err)
	}
}
