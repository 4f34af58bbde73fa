package ports

import (
	"context"
	"errors"

	"euchre/internal/domain"
)

// ErrConflict marks a transient optimistic-concurrency failure: a concurrent
// writer committed between our read and write. Callers may resubmit with
// fresh state; rule violations must never be retried this way.
var ErrConflict = errors.New("storage version conflict")

// RecordVersions carries the opaque store versions read with a game, used as
// compare-and-set preconditions on the next write. HandOwners records which
// user each hand version was read under; when a seat changes hands between
// load and save, the store must re-key the hand record to the new occupant
// and remove the old owner's copy.
type RecordVersions struct {
	Match      string
	Hands      [4]string
	HandOwners [4]string
}

// GameRecord is a freshly loaded game plus the versions it was read at.
type GameRecord struct {
	Game     *domain.Game
	Versions RecordVersions
}

// StorePort persists match state as a shared match record plus one private
// hand record per seat. Implementations must apply SaveGame atomically: the
// match record and every hand record commit together or not at all, and a
// version mismatch on any of them yields ErrConflict with nothing written.
type StorePort interface {
	// LoadGame reads the current committed state. A match that does not
	// exist yet loads as a fresh lobby with create-only versions.
	LoadGame(ctx context.Context, matchID string) (*GameRecord, error)

	// SaveGame conditionally writes the game using the record's versions.
	SaveGame(ctx context.Context, matchID string, rec *GameRecord) error

	// DeleteGame removes the match and hand records once a match is torn down.
	DeleteGame(ctx context.Context, matchID string) error
}
