// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Fixed slots a storefront session writes to
const (
	KeyCart         = "cart"
	KeyCurrentOrder = "currentOrder"
	KeyLastOrder    = "lastOrder"
)

// ErrNotFound is returned by Get when a slot holds nothing
var ErrNotFound = errors.New("storage: key not found")

// Store is a whole-value key-value store. Writers read the entire value,
// change it in memory and write it back; concurrent writers to the same key
// resolve as last write wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// GetJSON decodes the value stored under key into dst
func GetJSON(ctx context.Context, s Store, key string, dst any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and stores it under key
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}

type namespaced struct {
	store  Store
	prefix string
}

// Namespace scopes every key of store under prefix, e.g. "session:<id>"
func Namespace(store Store, prefix string) Store {
	return &namespaced{store: store, prefix: prefix}
}

func (n *namespaced) key(key string) string {
	return n.prefix + ":" + key
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.store.Get(ctx, n.key(key))
}

func (n *namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.store.Set(ctx, n.key(key), value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.store.Delete(ctx, n.key(key))
}

// SessionPrefix is the namespace for one storefront visitor
func SessionPrefix(sessionID string) string {
	return "session:" + sessionID
}
