// Package memory provides in-memory driven adapters used by tests and by
// runs where persistent history is disabled.
package memory
