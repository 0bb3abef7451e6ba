// Package payload provides a concrete use of vertex.Record's opaque
// payload slot: a k-mer suffix fragment that fuses by string concatenation
// when two records collapse under chain compression.
package payload
