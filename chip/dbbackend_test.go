package main

import (
	"database/sql"
	"log"
	"os"
	"syscall"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func ExpectTrue(t *testing.T, condition bool, message string) {
	if !condition {
		t.Errorf("Expected to succeed, but didn't: %s", message)
	}
}

func TestBasicBlobStore(t *testing.T) {
	dbfile, _ := os.CreateTemp("", "basic-blob-store")
	defer syscall.Unlink(dbfile.Name())
	db, err := sql.Open("sqlite3", dbfile.Name())
	if err != nil {
		log.Fatal(err)
	}
	store, _ := NewSqlBlobStore(db, true)

	_, found := store.Get("some-key")
	ExpectTrue(t, !found, "Expected some-key not to exist.")

	ExpectTrue(t, store.Put("some-key", "foo") == nil, "Store foo")
	value, found := store.Get("some-key")
	ExpectTrue(t, found && value == "foo", "Read back foo")

	// Overwrite
	ExpectTrue(t, store.Put("some-key", "bar") == nil, "Overwrite with bar")
	value, _ = store.Get("some-key")
	ExpectTrue(t, value == "bar", "Read back bar")

	ExpectTrue(t, store.Delete("some-key") == nil, "Remove key")
	_, found = store.Get("some-key")
	ExpectTrue(t, !found, "Gone after delete")

	// Deleting a non-existent key is not an error.
	ExpectTrue(t, store.Delete("never-was") == nil, "Delete of absent key")
}

func TestBlobStoreSurvivesReopen(t *testing.T) {
	dbfile, _ := os.CreateTemp("", "reopen-blob-store")
	defer syscall.Unlink(dbfile.Name())
	db, err := sql.Open("sqlite3", dbfile.Name())
	if err != nil {
		log.Fatal(err)
	}
	store, _ := NewSqlBlobStore(db, true)
	ExpectTrue(t, store.Put("persistent", "still here") == nil, "Store value")
	db.Close()

	db, err = sql.Open("sqlite3", dbfile.Name())
	if err != nil {
		log.Fatal(err)
	}
	store, _ = NewSqlBlobStore(db, true)
	value, found := store.Get("persistent")
	ExpectTrue(t, found && value == "still here", "Value survives reopening")
}
