package wlan

import (
	"fmt"
	"strings"
)

// ProfileName identifies one saved network configuration. It is taken
// verbatim from the command output and may be empty after trimming.
type ProfileName string

// Kind tags the variant held by a Credential.
type Kind int

const (
	// KindNoSecret means the profile stores no key (open network, or the key
	// is not saved).
	KindNoSecret Kind = iota
	// KindSecret means the profile's cleartext key was read.
	KindSecret
	// KindError means reading the profile failed.
	KindError
)

// NoSecretText is the export rendering of a KindNoSecret credential.
const NoSecretText = "No password found"

func (k Kind) String() string {
	switch k {
	case KindNoSecret:
		return "no_secret"
	case KindSecret:
		return "secret"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Credential is the outcome of reading one profile. The zero value is a
// NoSecret credential.
type Credential struct {
	kind   Kind
	secret string
	err    error
}

// SecretCredential wraps a key read from a profile.
func SecretCredential(secret string) Credential {
	return Credential{kind: KindSecret, secret: secret}
}

// NoSecretCredential reports a profile with no stored key.
func NoSecretCredential() Credential {
	return Credential{kind: KindNoSecret}
}

// ErrorCredential reports a failed fetch. A nil err is recorded as an
// unknown failure so the variant never loses its diagnostic.
func ErrorCredential(err error) Credential {
	if err == nil {
		err = fmt.Errorf("unknown failure")
	}
	return Credential{kind: KindError, err: err}
}

// Kind returns the variant tag.
func (c Credential) Kind() Kind {
	return c.kind
}

// Secret returns the key and true for KindSecret credentials.
func (c Credential) Secret() (string, bool) {
	if c.kind != KindSecret {
		return "", false
	}
	return c.secret, true
}

// Err returns the fetch failure for KindError credentials, nil otherwise.
func (c Credential) Err() error {
	if c.kind != KindError {
		return nil
	}
	return c.err
}

// Text renders the credential the way exporters write it. The rendering is
// lossy: a key that reads "No password found" is indistinguishable from the
// NoSecret variant once exported. Errors keep only their first line so each
// entry stays on one line of a listing.
func (c Credential) Text() string {
	switch c.kind {
	case KindSecret:
		return c.secret
	case KindError:
		msg, _, _ := strings.Cut(c.err.Error(), "\n")
		return "Error: " + strings.TrimSpace(msg)
	default:
		return NoSecretText
	}
}

// String keeps keys out of logs.
func (c Credential) String() string {
	switch c.kind {
	case KindSecret:
		return "secret([REDACTED])"
	case KindError:
		return fmt.Sprintf("error(%v)", c.err)
	default:
		return "no_secret"
	}
}

// GoString keeps keys out of %#v output.
func (c Credential) GoString() string {
	return c.String()
}

// Entry pairs a profile with its credential.
type Entry struct {
	Profile    ProfileName
	Credential Credential
}

// Counts summarises a CredentialSet by variant.
type Counts struct {
	Secrets  int
	NoSecret int
	Errors   int
}

// CredentialSet is an insertion-ordered mapping of profile name to
// credential. Adding a name twice keeps its first position and the last
// value.
type CredentialSet struct {
	entries []Entry
	index   map[ProfileName]int
}

// NewCredentialSet returns an empty set.
func NewCredentialSet() *CredentialSet {
	return &CredentialSet{index: make(map[ProfileName]int)}
}

// Add records cred for name.
func (s *CredentialSet) Add(name ProfileName, cred Credential) {
	if s.index == nil {
		s.index = make(map[ProfileName]int)
	}
	if i, ok := s.index[name]; ok {
		s.entries[i].Credential = cred
		return
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Entry{Profile: name, Credential: cred})
}

// Get returns the credential recorded for name.
func (s *CredentialSet) Get(name ProfileName) (Credential, bool) {
	if s == nil {
		return Credential{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return Credential{}, false
	}
	return s.entries[i].Credential, true
}

// Len returns the number of distinct profiles.
func (s *CredentialSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order.
func (s *CredentialSet) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Names returns the profile names in insertion order.
func (s *CredentialSet) Names() []ProfileName {
	if s == nil {
		return nil
	}
	names := make([]ProfileName, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Profile
	}
	return names
}

// Counts tallies entries by variant.
func (s *CredentialSet) Counts() Counts {
	var c Counts
	if s == nil {
		return c
	}
	for _, e := range s.entries {
		switch e.Credential.Kind() {
		case KindSecret:
			c.Secrets++
		case KindError:
			c.Errors++
		default:
			c.NoSecret++
		}
	}
	return c
}
