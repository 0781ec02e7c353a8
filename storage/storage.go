// Package storage provides the durable key-value store behind the auth
// session. Implementations are interchangeable: the CLI uses the file store,
// tests use the in-memory store, and a Redis store is available where a
// shared cache is preferred.
package storage

// Store is a minimal synchronous key-value port. A missing key is reported
// through the boolean, never as an error; Delete of a missing key is a no-op.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}
