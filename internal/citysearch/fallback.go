package citysearch

import (
	"context"
	"iter"
	"log/slog"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

const (
	minRemoteQueryRunes = 2
	minRemoteInterval   = 2 * time.Second
	mergedLimit         = 15
)

// CityFetcher is the remote lookup used by Fallback. *GeoDB implements it.
type CityFetcher interface {
	Cities(ctx context.Context, prefix string) ([]domain.City, error)
}

// Fallback asks the remote API when it can and answers from the built-in
// list otherwise. Remote calls are made only for queries of two or more
// characters, at most once every two seconds. Any remote failure falls back
// to the built-in list.
type Fallback struct {
	remote  CityFetcher
	offline Offline
	limiter *rate.Limiter
	log     *slog.Logger
}

var _ Provider = (*Fallback)(nil)

// NewFallback returns a provider over remote. A nil remote (no API key
// configured) makes every search offline.
func NewFallback(remote CityFetcher, log *slog.Logger) *Fallback {
	if log == nil {
		log = slog.Default()
	}
	return &Fallback{
		remote:  remote,
		limiter: rate.NewLimiter(rate.Every(minRemoteInterval), 1),
		log:     log,
	}
}

// Search yields the merged remote and built-in matches, de-duplicated by name
// and country and capped at 15, or the built-in matches alone.
func (f *Fallback) Search(ctx context.Context, query string) iter.Seq[Suggestion] {
	local := f.offline.Cities(query)

	if f.remote == nil || utf8.RuneCountInString(query) < minRemoteQueryRunes {
		return seqOf(local, true)
	}
	if !f.limiter.Allow() {
		f.log.Debug("city search rate limited, answering offline", "query", query)
		return seqOf(local, true)
	}

	remote, err := f.remote.Cities(ctx, query)
	if err != nil {
		f.log.Warn("city search failed, answering offline", "query", query, "error", err)
		return seqOf(local, true)
	}
	return merge(remote, local)
}

// merge yields remote cities first, then built-in ones not already seen.
func merge(remote, local []domain.City) iter.Seq[Suggestion] {
	return func(yield func(Suggestion) bool) {
		type cityKey struct{ name, country string }
		seen := make(map[cityKey]bool)
		n := 0
		emit := func(c domain.City, isLocal bool) bool {
			key := cityKey{c.Name, c.Country}
			if seen[key] {
				return true
			}
			seen[key] = true
			n++
			return yield(suggestion(c, isLocal)) && n < mergedLimit
		}
		for _, c := range remote {
			if !emit(c, false) {
				return
			}
		}
		for _, c := range local {
			if !emit(c, true) {
				return
			}
		}
	}
}
