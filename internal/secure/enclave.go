package secure

import (
	"sync"

	"github.com/awnumar/memguard"
)

// SecureBuffer stores sensitive bytes in a memguard enclave, encrypted at
// rest in memory.
type SecureBuffer struct {
	mu        sync.RWMutex
	enclave   *memguard.Enclave
	destroyed bool
}

// NewSecureBuffer seals data into an enclave. memguard wipes data in the
// process. Empty input is valid and opens to an empty buffer.
func NewSecureBuffer(data []byte) (*SecureBuffer, error) {
	if len(data) == 0 {
		return &SecureBuffer{}, nil
	}
	return &SecureBuffer{enclave: memguard.NewEnclave(data)}, nil
}

// NewSecureBufferFromString seals a copy of s.
func NewSecureBufferFromString(s string) (*SecureBuffer, error) {
	return NewSecureBuffer([]byte(s))
}

// Open decrypts the enclave into a locked buffer. The caller must Destroy
// the returned buffer when done.
func (s *SecureBuffer) Open() (*memguard.LockedBuffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.destroyed || s.enclave == nil {
		return memguard.NewBuffer(0), nil
	}
	return s.enclave.Open()
}

// Use opens the buffer, hands the plaintext to fn and destroys the
// plaintext again before returning.
func (s *SecureBuffer) Use(fn func(plaintext []byte) error) error {
	locked, err := s.Open()
	if err != nil {
		return err
	}
	defer locked.Destroy()
	return fn(locked.Bytes())
}

// Destroy releases the enclave. Calling it more than once is safe; Open
// returns an empty buffer afterwards.
func (s *SecureBuffer) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enclave = nil
	s.destroyed = true
}

// Wipe overwrites b with zeroes.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	memguard.WipeBytes(b)
}

// Purge destroys all memguard buffers. Call it once on process exit.
func Purge() {
	memguard.Purge()
}
