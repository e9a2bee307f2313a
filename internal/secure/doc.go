// Package secure keeps extracted wireless keys out of swappable, long-lived
// memory where it can.
//
// It wraps memguard:
//
//   - SecureBuffer holds a value in an encrypted enclave until it is needed
//   - Wipe zeroes a byte slice once its contents have been parsed
//   - Purge destroys every memguard-managed buffer at process exit
//
// Go strings are immutable, so keys copied into a CredentialSet for export
// are not covered. The raw command output from which they were parsed is.
package secure
