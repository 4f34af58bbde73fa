package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"euchre/internal/domain"
	"euchre/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	matchCollection = "euchre_matches"
	handCollection  = "euchre_hands"
)

// storageEngine is the slice of runtime.NakamaModule the adapter needs.
type storageEngine interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
	StorageDelete(ctx context.Context, deletes []*runtime.StorageDelete) error
}

// StorageAdapter implements ports.StorePort on the Nakama storage engine. The
// shared match document is system-owned and publicly readable; each player's
// hand lives in a separate owner-read record so clients can never fetch an
// opponent's cards. All writes in one save are version-conditioned and
// applied in a single transactional batch.
type StorageAdapter struct {
	nk storageEngine
}

// NewStorageAdapter creates a storage adapter over the Nakama module.
func NewStorageAdapter(nk storageEngine) *StorageAdapter {
	return &StorageAdapter{nk: nk}
}

// LoadGame reads the committed state for a match. A match with no stored
// record loads as a fresh lobby whose versions demand create-only writes.
func (a *StorageAdapter) LoadGame(ctx context.Context, matchID string) (*ports.GameRecord, error) {
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: matchCollection, Key: matchID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read match record: %w", err)
	}

	if len(objects) == 0 {
		return &ports.GameRecord{
			Game:     domain.NewGame(),
			Versions: ports.RecordVersions{Match: "*"},
		}, nil
	}

	var record matchRecord
	if err := json.Unmarshal([]byte(objects[0].Value), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match record: %w", err)
	}

	rec := &ports.GameRecord{
		Game:     record.toGame(),
		Versions: ports.RecordVersions{Match: objects[0].Version},
	}

	// Hands exist only mid-hand; the lobby has nothing private to read.
	if record.Hand == nil {
		return rec, nil
	}

	reads := make([]*runtime.StorageRead, 0, domain.NumSeats)
	for _, occupant := range record.Seats {
		if occupant != "" {
			reads = append(reads, &runtime.StorageRead{
				Collection: handCollection,
				Key:        matchID,
				UserID:     occupant,
			})
		}
	}

	handObjects, err := a.nk.StorageRead(ctx, reads)
	if err != nil {
		return nil, fmt.Errorf("failed to read hand records: %w", err)
	}

	for seat := domain.SeatNorth; seat < domain.NumSeats; seat++ {
		rec.Versions.Hands[seat] = "*"
		rec.Versions.HandOwners[seat] = record.Seats[seat]
	}
	for _, obj := range handObjects {
		var hand handRecord
		if err := json.Unmarshal([]byte(obj.Value), &hand); err != nil {
			return nil, fmt.Errorf("failed to unmarshal hand record: %w", err)
		}
		rec.Game.Hands[hand.Seat] = hand.Cards
		rec.Versions.Hands[hand.Seat] = obj.Version
	}

	return rec, nil
}

// SaveGame conditionally writes the match record and, mid-hand, each occupied
// seat's hand record. The batch commits atomically; a version mismatch on any
// record rejects the whole save as ports.ErrConflict.
func (a *StorageAdapter) SaveGame(ctx context.Context, matchID string, rec *ports.GameRecord) error {
	g := rec.Game

	matchValue, err := json.Marshal(recordFromGame(g))
	if err != nil {
		return fmt.Errorf("failed to marshal match record: %w", err)
	}

	writes := []*runtime.StorageWrite{
		{
			Collection:      matchCollection,
			Key:             matchID,
			Value:           string(matchValue),
			Version:         rec.Versions.Match,
			PermissionRead:  runtime.STORAGE_PERMISSION_PUBLIC_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}

	if g.Hand != nil {
		for seat := domain.SeatNorth; seat < domain.NumSeats; seat++ {
			occupant := g.Seats[seat]
			if occupant == "" {
				continue
			}
			handValue, err := json.Marshal(handRecord{Seat: seat, Cards: g.Hands[seat]})
			if err != nil {
				return fmt.Errorf("failed to marshal hand record: %w", err)
			}
			version := rec.Versions.Hands[seat]
			if rec.Versions.HandOwners[seat] != occupant {
				// The seat changed hands since the load. The record moves to
				// the new occupant unconditionally; the match record's
				// version check still serializes the transition.
				version = ""
			}
			writes = append(writes, &runtime.StorageWrite{
				Collection:      handCollection,
				Key:             matchID,
				UserID:          occupant,
				Value:           string(handValue),
				Version:         version,
				PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
				PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
			})
		}
	}

	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return ports.ErrConflict
		}
		return fmt.Errorf("failed to write match records: %w", err)
	}

	// Sweep hand records left under users who no longer hold their seat.
	// Best effort after the commit: a straggler is owner-read only and no
	// longer consulted, so a failed delete cannot corrupt state.
	var stale []*runtime.StorageDelete
	for seat := domain.SeatNorth; seat < domain.NumSeats; seat++ {
		owner := rec.Versions.HandOwners[seat]
		if owner == "" || owner == g.Seats[seat] {
			continue
		}
		if _, seated := g.SeatOf(owner); seated {
			continue
		}
		stale = append(stale, &runtime.StorageDelete{
			Collection: handCollection,
			Key:        matchID,
			UserID:     owner,
		})
	}
	if len(stale) > 0 {
		_ = a.nk.StorageDelete(ctx, stale)
	}
	return nil
}

// DeleteGame removes the match record and any hand records for its seats.
func (a *StorageAdapter) DeleteGame(ctx context.Context, matchID string) error {
	rec, err := a.LoadGame(ctx, matchID)
	if err != nil {
		return err
	}

	deletes := []*runtime.StorageDelete{
		{Collection: matchCollection, Key: matchID},
	}
	for _, occupant := range rec.Game.Seats {
		if occupant != "" {
			deletes = append(deletes, &runtime.StorageDelete{
				Collection: handCollection,
				Key:        matchID,
				UserID:     occupant,
			})
		}
	}
	if err := a.nk.StorageDelete(ctx, deletes); err != nil {
		return fmt.Errorf("failed to delete match records: %w", err)
	}
	return nil
}

var _ ports.StorePort = (*StorageAdapter)(nil)
