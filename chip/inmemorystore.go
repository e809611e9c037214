// Map-backed blob store. Used in tests and when running without a
// database file (-db ""): state then lives only for the session.
package main

import (
	"sync"
)

type InMemoryBlobStore struct {
	lock  sync.Mutex
	blobs map[string]string
}

func NewInMemoryBlobStore() *InMemoryBlobStore {
	return &InMemoryBlobStore{
		blobs: make(map[string]string),
	}
}

func (s *InMemoryBlobStore) Get(key string) (string, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	value, ok := s.blobs[key]
	return value, ok
}

func (s *InMemoryBlobStore) Put(key, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.blobs[key] = value
	return nil
}

func (s *InMemoryBlobStore) Delete(key string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.blobs, key)
	return nil
}
