package app

import (
	"context"

	"euchre/internal/domain"
)

// txFunc applies one transition against freshly read state. It must validate
// every precondition against the state it receives, never against anything
// the caller cached earlier.
type txFunc func(g *domain.Game) ([]Event, error)

// runTx executes a transition as an atomic read-validate-write transaction:
// load committed state, apply the pure transition, and conditionally write
// the result. A rule violation aborts before anything is written. A
// concurrent writer surfaces as ports.ErrConflict; the engine does not
// retry, the caller decides whether to resubmit.
func (s *Service) runTx(ctx context.Context, matchID string, fn txFunc) ([]Event, error) {
	rec, err := s.store.LoadGame(ctx, matchID)
	if err != nil {
		return nil, err
	}

	events, err := fn(rec.Game)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveGame(ctx, matchID, rec); err != nil {
		return nil, err
	}
	return events, nil
}
