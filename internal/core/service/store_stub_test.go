package service

import (
	"context"
	"encoding/json"
	"errors"
)

// memStore is an in-memory ports.Store for tests. Values round-trip through
// JSON exactly like the real backends; raw entries can be planted to
// simulate corruption.
type memStore struct {
	data map[string]json.RawMessage
	// failSet, when set, makes every Set call fail with this error.
	failSet error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]json.RawMessage)}
}

func (m *memStore) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	raw, ok := m.data[key]
	return raw, ok, nil
}

func (m *memStore) Set(_ context.Context, key string, value any) error {
	if m.failSet != nil {
		return m.failSet
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memStore) Remove(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memStore) Ping(context.Context) error { return nil }

var errStoreDown = errors.New("store down")
