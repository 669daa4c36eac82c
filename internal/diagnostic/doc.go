// Package diagnostic provides structured errors, warnings and notes for the
// enum definitions checked by the generator.
//
// Key capabilities:
//   - Build errors tagged with a stable code per failure kind
//   - Warnings for accepted but suspicious definitions (unreachable variants)
//   - "did you mean" suggestions attached to unknown names
package diagnostic
