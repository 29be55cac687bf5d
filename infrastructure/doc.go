// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - storage/sqlite: canonical content store on SQLite
// - cache/memory: in-process listing cache using go-cache
// - cache/redis: shared listing cache on Redis
// - http/standard: net/http client with bounded attempts and backoff
// - logger/logrus: structured logrus logger with optional rotated file output
package infrastructure
