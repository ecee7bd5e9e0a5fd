// internal/store/state_store_test.go
package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"calcpad/internal/domain"
	"calcpad/internal/store"
)

func TestStateFileStore_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var states domain.StateStore = store.NewStateFileStore(home)

	want := domain.State{Display: "12.5", Operand: "3", Op: domain.OpMultiply, AwaitingEntry: false}
	if err := states.SaveState(want); err != nil {
		t.Fatalf("save state: %v", err)
	}

	got, ok, err := states.LoadState()
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if !ok {
		t.Fatal("expected stored state")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestStateFileStore_Missing_NotFound(t *testing.T) {
	states := store.NewStateFileStore(t.TempDir())

	_, ok, err := states.LoadState()
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if ok {
		t.Fatal("expected no stored state")
	}
}

func TestStateFileStore_CreatesHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "calcpad")
	states := store.NewStateFileStore(home)

	if err := states.SaveState(domain.InitialState()); err != nil {
		t.Fatalf("save state: %v", err)
	}
	info, err := os.Stat(states.Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode %v, want 0600", info.Mode().Perm())
	}
}

func TestStateFileStore_CorruptFile_Fails(t *testing.T) {
	home := t.TempDir()
	states := store.NewStateFileStore(home)

	if err := os.WriteFile(states.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := states.LoadState(); !errors.Is(err, store.ErrCorruptState) {
		t.Fatalf("got %v, want ErrCorruptState", err)
	}

	if err := os.WriteFile(states.Path(), []byte(`{"display":""}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := states.LoadState(); !errors.Is(err, store.ErrCorruptState) {
		t.Fatalf("got %v, want ErrCorruptState", err)
	}
}

func TestStateFileStore_RejectsEmptyDisplay(t *testing.T) {
	states := store.NewStateFileStore(t.TempDir())

	if err := states.SaveState(domain.State{}); !errors.Is(err, store.ErrCorruptState) {
		t.Fatalf("got %v, want ErrCorruptState", err)
	}
}

func TestStateFileStore_Reset(t *testing.T) {
	states := store.NewStateFileStore(t.TempDir())

	if err := states.ResetState(); err != nil {
		t.Fatalf("reset missing: %v", err)
	}
	if err := states.SaveState(domain.InitialState()); err != nil {
		t.Fatalf("save state: %v", err)
	}
	if err := states.ResetState(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, ok, _ := states.LoadState(); ok {
		t.Fatal("state survived reset")
	}
}

func TestMemoryStore_SaveLoadReset(t *testing.T) {
	var states domain.StateStore = store.NewMemoryStore()

	if _, ok, _ := states.LoadState(); ok {
		t.Fatal("new store should be empty")
	}
	want := domain.State{Display: "7", Op: domain.OpAdd, Operand: "7", AwaitingEntry: true}
	if err := states.SaveState(want); err != nil {
		t.Fatalf("save state: %v", err)
	}
	got, ok, err := states.LoadState()
	if err != nil || !ok || got != want {
		t.Fatalf("load = %+v, %v, %v", got, ok, err)
	}
	if err := states.ResetState(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, ok, _ := states.LoadState(); ok {
		t.Fatal("state survived reset")
	}
}
