// Package external declares the collaborator interfaces an assembly
// pipeline depends on but does not implement itself: read generation, read
// splitting into fixed-length fragments, and parsing an input stream into
// vertex records. A harness supplies concrete implementations; the core
// packages only consume these interfaces.
package external
