// Package citysearch suggests cities while the traveller types a destination.
// Nothing in the trip repository depends on it: when the remote API is
// unavailable the suggestions come from a built-in list, and an empty result
// is always acceptable.
package citysearch

import (
	"context"
	"iter"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// cityCategory is the category given to every city suggestion.
const cityCategory = "Cidade"

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Name     string      `json:"name"`
	Address  string      `json:"address"`
	Category string      `json:"category"`
	Country  string      `json:"country"`
	Local    bool        `json:"local"` // true when it came from the built-in list
	City     domain.City `json:"city"`
}

// Provider yields suggestions for a query. The sequence is finite and may be
// empty; it never blocks beyond the provider's own timeout.
type Provider interface {
	Search(ctx context.Context, query string) iter.Seq[Suggestion]
}

func suggestion(c domain.City, local bool) Suggestion {
	return Suggestion{
		Name:     c.Name,
		Address:  c.DisplayName(),
		Category: cityCategory,
		Country:  c.Country,
		Local:    local,
		City:     c,
	}
}

func seqOf(cities []domain.City, local bool) iter.Seq[Suggestion] {
	return func(yield func(Suggestion) bool) {
		for _, c := range cities {
			if !yield(suggestion(c, local)) {
				return
			}
		}
	}
}
