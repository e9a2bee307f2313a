package wlan

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/systmms/wifikeys/internal/logging"
)

// Observer receives pipeline outcomes. Implementations must be safe for
// concurrent use when the Aggregator runs with Concurrency > 1.
type Observer interface {
	ProfilesListed(count int, err error)
	CredentialFetched(name ProfileName, kind Kind, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ProfilesListed(int, error)                          {}
func (nopObserver) CredentialFetched(ProfileName, Kind, time.Duration) {}

// AggregatorOptions tunes an Aggregator.
type AggregatorOptions struct {
	// Concurrency caps parallel fetches. Values below 2 fetch sequentially.
	Concurrency int
	Observer    Observer
	Logger      *logging.Logger
}

// Aggregator combines one enumeration with one fetch per profile.
type Aggregator struct {
	source      Source
	concurrency int
	observer    Observer
	logger      *logging.Logger
}

// NewAggregator creates an aggregator over source.
func NewAggregator(source Source, opts AggregatorOptions) *Aggregator {
	a := &Aggregator{
		source:      source,
		concurrency: opts.Concurrency,
		observer:    opts.Observer,
		logger:      opts.Logger,
	}
	if a.concurrency < 1 {
		a.concurrency = 1
	}
	if a.observer == nil {
		a.observer = nopObserver{}
	}
	if a.logger == nil {
		a.logger = logging.Discard()
	}
	return a
}

// ListProfiles enumerates profiles without fetching keys.
func (a *Aggregator) ListProfiles(ctx context.Context) ([]ProfileName, error) {
	names, err := a.source.ListProfiles(ctx)
	if err != nil {
		err = asListError(err)
		names = nil
	}
	a.observer.ProfilesListed(len(names), err)
	return names, err
}

// Collect lists profiles and fetches every key. The returned set follows
// enumeration order regardless of fetch completion order. Per-profile
// failures stay inside their entries; only an enumeration failure is
// returned as an error, alongside an empty set.
func (a *Aggregator) Collect(ctx context.Context) (*CredentialSet, error) {
	names, err := a.ListProfiles(ctx)
	if err != nil {
		a.logger.Debug("Enumeration failed: %v", err)
		return NewCredentialSet(), err
	}

	creds := a.fetchAll(ctx, names)

	set := NewCredentialSet()
	for i, name := range names {
		set.Add(name, creds[i])
	}

	counts := set.Counts()
	a.logger.Debug("Collected %d profiles (%d keys, %d without key, %d failed)",
		set.Len(), counts.Secrets, counts.NoSecret, counts.Errors)
	return set, nil
}

// fetchAll returns one credential per name, index-aligned with names.
func (a *Aggregator) fetchAll(ctx context.Context, names []ProfileName) []Credential {
	creds := make([]Credential, len(names))

	if a.concurrency == 1 || len(names) < 2 {
		for i, name := range names {
			creds[i] = a.fetch(ctx, name)
		}
		return creds
	}

	// Use a semaphore to limit concurrent netsh processes
	semaphore := make(chan struct{}, a.concurrency)
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name ProfileName) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			creds[i] = a.fetch(ctx, name)
		}(i, name)
	}
	wg.Wait()
	return creds
}

func (a *Aggregator) fetch(ctx context.Context, name ProfileName) Credential {
	start := time.Now()

	var cred Credential
	if strings.TrimSpace(string(name)) == "" {
		cred = ErrorCredential(ErrEmptyProfileName)
	} else {
		cred = a.source.FetchSecret(ctx, name)
	}

	if err := cred.Err(); err != nil {
		a.logger.Debug("Fetching %q failed: %v", name, err)
	}
	a.observer.CredentialFetched(name, cred.Kind(), time.Since(start))
	return cred
}

func asListError(err error) error {
	var listErr *ListError
	if errors.As(err, &listErr) {
		return err
	}
	return &ListError{Err: err}
}
