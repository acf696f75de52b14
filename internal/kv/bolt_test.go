package kv

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "best.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestPutGetDelete(t *testing.T) {
	db, _ := openTestDB(t)

	if _, ok, err := db.GetValue("nope"); err != nil || ok {
		t.Fatalf("GetValue(nope) = ok %v, err %v", ok, err)
	}

	if err := db.SetValue("a", "1"); err != nil {
		t.Fatalf("SetValue() failed: %v", err)
	}
	v, ok, err := db.GetValue("a")
	if err != nil || !ok || v != "1" {
		t.Errorf("GetValue(a) = %q, %v, %v", v, ok, err)
	}

	if err := db.DeleteValue("a"); err != nil {
		t.Fatalf("DeleteValue() failed: %v", err)
	}
	if _, ok, _ := db.GetValue("a"); ok {
		t.Error("key should be gone after DeleteValue()")
	}
}

func TestSlotPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	db.Slot("bestScore", nil).Set(12)
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	if got := db.Slot("bestScore", nil).Get(); got != 12 {
		t.Errorf("Get() = %d after reopen, expected 12", got)
	}
}

func TestSlotGarbageReadsZero(t *testing.T) {
	db, _ := openTestDB(t)
	if err := db.SetValue("bestScore", "NaN"); err != nil {
		t.Fatal(err)
	}
	if got := db.Slot("bestScore", nil).Get(); got != 0 {
		t.Errorf("Get() = %d, expected 0", got)
	}
}

func TestSlotReset(t *testing.T) {
	db, _ := openTestDB(t)
	slot := db.Slot("bestScore", nil)
	slot.Set(3)
	if err := slot.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if slot.Get() != 0 {
		t.Errorf("Get() after Reset() = %d, expected 0", slot.Get())
	}
}

func TestOpenLocked(t *testing.T) {
	_, path := openTestDB(t)

	_, err := Open(path)
	if !errors.Is(err, ErrLocked) {
		t.Errorf("second Open() error = %v, expected ErrLocked", err)
	}
}
