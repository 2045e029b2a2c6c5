package blob

import (
	"bytes"
	"strings"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := NewStore(t.TempDir(), AssetExtensions, 1<<20)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	data := []byte("conteudo do arquivo")
	name, err := s.Store(data, "pauta semanal.txt")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if !strings.HasSuffix(name, "_pauta_semanal.txt") {
		t.Fatalf("unexpected generated name: %s", name)
	}
	got, err := s.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("stored bytes differ")
	}
}

func TestStoreRejectsExtension(t *testing.T) {
	s, err := NewStore(t.TempDir(), JournalExtensions, 1<<20)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := s.Store([]byte("x"), "script.exe"); err != ErrBadExtension {
		t.Fatalf("expected ErrBadExtension, got %v", err)
	}
}

func TestStoreRejectsOversize(t *testing.T) {
	s, err := NewStore(t.TempDir(), JournalExtensions, 4)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := s.Store([]byte("12345"), "edicao.pdf"); err != ErrTooLarge {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestOpenUnknownName(t *testing.T) {
	s, err := NewStore(t.TempDir(), AssetExtensions, 1<<20)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := s.Open("nao-existe.pdf"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Open("../escape"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for traversal, got %v", err)
	}
}
