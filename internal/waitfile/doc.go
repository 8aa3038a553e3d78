// Package waitfile blocks until a file appears on disk, polling at a fixed
// interval with optional timeout and context cancellation.
package waitfile
