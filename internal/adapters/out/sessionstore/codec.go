// Package sessionstore keeps wizard sessions between requests, either in
// Redis or in process memory.
package sessionstore

import (
	"encoding/json"

	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/ports"
)

// record is the stored form of a session. Prices are kept as plain yen so the
// payload does not depend on kernel.Price internals.
type record struct {
	Draft    draft.Draft `json:"draft"`
	QuoteYen *int        `json:"quote_yen,omitempty"`
}

func encode(state ports.SessionState) ([]byte, error) {
	rec := record{Draft: state.Draft}
	if state.Quote != nil {
		yen := state.Quote.Yen()
		rec.QuoteYen = &yen
	}
	return json.Marshal(rec)
}

func decode(payload []byte) (ports.SessionState, error) {
	var rec record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return ports.SessionState{}, err
	}

	state := ports.SessionState{Draft: rec.Draft}
	if rec.QuoteYen != nil {
		p, err := kernel.NewPrice(*rec.QuoteYen)
		if err != nil {
			return ports.SessionState{}, err
		}
		state.Quote = &p
	}
	return state, nil
}
