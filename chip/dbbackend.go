// Blob store. Backed by a sqlite database.
package main

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SqlBlobStore struct {
	db        *sql.DB
	findByKey *sql.Stmt
	upsert    *sql.Stmt
	remove    *sql.Stmt
}

func NewSqlBlobStore(db *sql.DB, createTables bool) (*SqlBlobStore, error) {
	if createTables {
		_, err := db.Exec("CREATE TABLE IF NOT EXISTS setting (" +
			"key TEXT PRIMARY KEY, " +
			"value TEXT NOT NULL, " +
			"updated TIMESTAMP)")
		if err != nil {
			return nil, err
		}
	}
	findByKey, err := db.Prepare("SELECT value FROM setting WHERE key = ?")
	if err != nil {
		return nil, err
	}
	upsert, err := db.Prepare("INSERT INTO setting (key, value, updated) " +
		"VALUES (?, ?, ?) " +
		"ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated = excluded.updated")
	if err != nil {
		return nil, err
	}
	remove, err := db.Prepare("DELETE FROM setting WHERE key = ?")
	if err != nil {
		return nil, err
	}

	return &SqlBlobStore{
		db:        db,
		findByKey: findByKey,
		upsert:    upsert,
		remove:    remove}, nil
}

func (s *SqlBlobStore) Get(key string) (string, bool) {
	var value string
	err := s.findByKey.QueryRow(key).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		return "", false
	case err != nil:
		log.Printf("blob read %s: %v", key, err)
		return "", false
	}
	return value, true
}

func (s *SqlBlobStore) Put(key, value string) error {
	_, err := s.upsert.Exec(key, value, time.Now())
	return err
}

func (s *SqlBlobStore) Delete(key string) error {
	_, err := s.remove.Exec(key)
	return err
}
