// Package wlan extracts saved wireless network credentials from the host.
//
// The pipeline has three parts:
//
//   - a Source enumerates saved profiles and fetches the cleartext key of one
//     profile (NetshSource drives `netsh wlan` through a CommandExecutor)
//   - ParseProfiles and ParseSecret turn the command's locale-dependent text
//     output into values; the markers they look for are configurable
//   - an Aggregator lists once, fetches once per profile and assembles a
//     CredentialSet in enumeration order
//
// A profile without a stored key is reported as a NoSecret credential, which
// is a normal outcome. A failed fetch is an Error credential confined to its
// own entry. A failed enumeration is a *ListError, never an empty list.
package wlan
