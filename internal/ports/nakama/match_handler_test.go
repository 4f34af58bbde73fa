package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"euchre/internal/app"
	"euchre/internal/bot"
	"euchre/internal/domain"
	"euchre/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastOpCode     int64
	lastData       []byte
	lastLabel      string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.lastOpCode = opCode
	md.lastData = append([]byte(nil), data...)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

type mockEconomy struct {
	balances map[string]int64
	updates  []ports.WalletUpdate
}

func (me *mockEconomy) GetBalance(ctx context.Context, userID string) (int64, error) {
	if balance, ok := me.balances[userID]; ok {
		return balance, nil
	}
	return 0, errors.New("balance not found")
}

func (me *mockEconomy) UpdateBalances(ctx context.Context, updates []ports.WalletUpdate) error {
	me.updates = append(me.updates, updates...)
	return nil
}

// fakeStore is an in-memory StorePort with compare-and-set semantics.
type fakeStore struct {
	games   map[string][]byte
	version map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{games: make(map[string][]byte), version: make(map[string]int)}
}

func (f *fakeStore) LoadGame(ctx context.Context, matchID string) (*ports.GameRecord, error) {
	raw, ok := f.games[matchID]
	if !ok {
		return &ports.GameRecord{Game: domain.NewGame(), Versions: ports.RecordVersions{Match: "*"}}, nil
	}
	g := domain.NewGame()
	if err := json.Unmarshal(raw, g); err != nil {
		return nil, err
	}
	return &ports.GameRecord{Game: g, Versions: ports.RecordVersions{Match: fmt.Sprintf("v%d", f.version[matchID])}}, nil
}

func (f *fakeStore) SaveGame(ctx context.Context, matchID string, rec *ports.GameRecord) error {
	current := "*"
	if _, ok := f.games[matchID]; ok {
		current = fmt.Sprintf("v%d", f.version[matchID])
	}
	if rec.Versions.Match != current {
		return ports.ErrConflict
	}
	raw, err := json.Marshal(rec.Game)
	if err != nil {
		return err
	}
	f.games[matchID] = raw
	f.version[matchID]++
	return nil
}

func (f *fakeStore) DeleteGame(ctx context.Context, matchID string) error {
	delete(f.games, matchID)
	delete(f.version, matchID)
	return nil
}

// fakeStorageEngine is an in-memory storage engine with Nakama's version
// semantics: "*" is create-only, "" writes unconditionally, anything else
// must match the stored version. It backs the real StorageAdapter in tests
// that depend on the per-user record layout.
type fakeStorageEngine struct {
	objects map[string]*storedObject
}

type storedObject struct {
	value   string
	version int
}

func newFakeStorageEngine() *fakeStorageEngine {
	return &fakeStorageEngine{objects: make(map[string]*storedObject)}
}

func (f *fakeStorageEngine) versionOf(o *storedObject) string {
	return fmt.Sprintf("v%d", o.version)
}

func (f *fakeStorageEngine) StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	var out []*api.StorageObject
	for _, r := range reads {
		if o, ok := f.objects[storageKey(r.Collection, r.Key, r.UserID)]; ok {
			out = append(out, &api.StorageObject{
				Collection: r.Collection,
				Key:        r.Key,
				UserId:     r.UserID,
				Value:      o.value,
				Version:    f.versionOf(o),
			})
		}
	}
	return out, nil
}

func (f *fakeStorageEngine) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	// Validate the whole batch before applying any of it.
	for _, w := range writes {
		o, exists := f.objects[storageKey(w.Collection, w.Key, w.UserID)]
		switch w.Version {
		case "":
		case "*":
			if exists {
				return nil, runtime.ErrStorageRejectedVersion
			}
		default:
			if !exists || f.versionOf(o) != w.Version {
				return nil, runtime.ErrStorageRejectedVersion
			}
		}
	}
	for _, w := range writes {
		key := storageKey(w.Collection, w.Key, w.UserID)
		o, exists := f.objects[key]
		if !exists {
			o = &storedObject{}
			f.objects[key] = o
		}
		o.value = w.Value
		o.version++
	}
	return nil, nil
}

func (f *fakeStorageEngine) StorageDelete(ctx context.Context, deletes []*runtime.StorageDelete) error {
	for _, d := range deletes {
		delete(f.objects, storageKey(d.Collection, d.Key, d.UserID))
	}
	return nil
}

func init() {
	// Load bot identities for testing.
	if err := bot.LoadIdentities("test_bot_identities.json"); err != nil {
		panic("Failed to load bot identities for tests: " + err.Error())
	}
}

func newTestMatchState() (*MatchState, *fakeStore) {
	store := newFakeStore()
	return &MatchState{
		MatchID:          "match-1",
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(store, rand.New(rand.NewSource(7))),
		Economy:          &mockEconomy{balances: map[string]int64{}},
		BotsEnabled:      true,
		BotMinDelay:      1,
		BotMaxDelay:      1,
		BotAutoFillDelay: 2,
	}, store
}

func TestFindFirstHumanSeat(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{
			name:  "FirstHumanAfterBot",
			seats: []string{bot1, "user-1", "", ""},
			want:  1,
		},
		{
			name:  "AllBots",
			seats: []string{bot1, bot2, "", ""},
			want:  -1,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  -1,
		},
		{
			name:  "FirstHumanIsSeatZero",
			seats: []string{"user-1", bot1, "user-2", ""},
			want:  0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestShouldTerminateNoHumans(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  bool
	}{
		{
			name:  "BotsOnly",
			seats: []string{bot1, bot2, "", ""},
			want:  true,
		},
		{
			name:  "HumansPresent",
			seats: []string{bot1, "user-1", "", ""},
			want:  false,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := shouldTerminateNoHumans(test.seats); got != test.want {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestMatchLabelMarshal(t *testing.T) {
	tests := []struct {
		name     string
		label    *MatchLabel
		expected string
	}{
		{
			name:     "LobbyState",
			label:    &MatchLabel{Game: "euchre", Open: 3, Phase: "lobby"},
			expected: `{"game":"euchre","open":3,"phase":"lobby"}`,
		},
		{
			name:     "PlayingState",
			label:    &MatchLabel{Game: "euchre", Open: 0, Phase: "playing"},
			expected: `{"game":"euchre","open":0,"phase":"playing"}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := marshalLabel(test.label); got != test.expected {
				t.Errorf("Got %s, want %s", got, test.expected)
			}
		})
	}
}

func TestProcessBotsAutoFillsSoloLobby(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state, _ := newTestMatchState()
	ctx := context.Background()

	if _, _, err := state.App.JoinSeat(ctx, state.MatchID, "user-1"); err != nil {
		t.Fatalf("JoinSeat: %v", err)
	}

	state.Tick = 10
	state.LastSinglePlayerTick = 8

	handler.processBots(ctx, state, dispatcher, noopLogger{})

	g, err := state.App.Snapshot(ctx, state.MatchID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	botCount := 0
	for _, occupant := range g.Seats {
		if isBotUserId(occupant) {
			botCount++
		}
	}
	if botCount != 3 {
		t.Fatalf("Expected 3 bots, got %d", botCount)
	}
	if countOpenSeats(g.Seats[:]) != 0 {
		t.Fatalf("Expected full table after auto-fill, got %d open", countOpenSeats(g.Seats[:]))
	}
	if state.LastSinglePlayerTick != 0 {
		t.Fatalf("Expected auto-fill timer reset, got %d", state.LastSinglePlayerTick)
	}
	if dispatcher.broadcastCount == 0 || dispatcher.labelUpdates == 0 {
		t.Fatal("Expected match state broadcast and label update after auto-fill")
	}
}

func TestProcessBotsActsOnBotTurn(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state, _ := newTestMatchState()
	ctx := context.Background()

	for i := 0; i < domain.NumSeats; i++ {
		botID := bot.GetBotIdentity(i).UserID
		if _, _, err := state.App.JoinSeat(ctx, state.MatchID, botID); err != nil {
			t.Fatalf("JoinSeat(%s): %v", botID, err)
		}
	}
	if _, err := state.App.StartHand(ctx, state.MatchID, bot.GetBotIdentity(0).UserID); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	// First pass arms the delay timer, second pass fires the action.
	state.Tick = 10
	handler.processBots(ctx, state, dispatcher, noopLogger{})
	if state.BotWaitUntil == 0 {
		t.Fatal("Expected bot delay timer to be armed")
	}
	state.Tick = state.BotWaitUntil
	handler.processBots(ctx, state, dispatcher, noopLogger{})

	if dispatcher.broadcastCount == 0 {
		t.Fatal("Expected a bidding event broadcast from the bot turn")
	}
	if dispatcher.lastOpCode != OpBidPassed && dispatcher.lastOpCode != OpTrumpOrdered {
		t.Fatalf("Unexpected opcode %d for a round 1 bot decision", dispatcher.lastOpCode)
	}
}

func TestLeaverMidHandBotTakeoverKeepsCards(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	engine := newFakeStorageEngine()
	state := &MatchState{
		MatchID:     "match-1",
		Presences:   make(map[string]runtime.Presence),
		App:         app.NewService(NewStorageAdapter(engine), rand.New(rand.NewSource(7))),
		Economy:     &mockEconomy{balances: map[string]int64{}},
		BotsEnabled: true,
	}
	ctx := context.Background()

	if _, _, err := state.App.JoinSeat(ctx, state.MatchID, "user-1"); err != nil {
		t.Fatalf("JoinSeat(user-1): %v", err)
	}
	for i := 1; i < domain.NumSeats; i++ {
		botID := bot.GetBotIdentity(i).UserID
		if _, _, err := state.App.JoinSeat(ctx, state.MatchID, botID); err != nil {
			t.Fatalf("JoinSeat(%s): %v", botID, err)
		}
	}
	if _, err := state.App.StartHand(ctx, state.MatchID, "user-1"); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	g, err := state.App.Snapshot(ctx, state.MatchID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	seat, ok := g.SeatOf("user-1")
	if !ok {
		t.Fatal("user-1 not seated after join")
	}
	dealt := append([]domain.Card(nil), g.Hands[seat]...)
	if len(dealt) != domain.HandSize {
		t.Fatalf("dealt %d cards, want %d", len(dealt), domain.HandSize)
	}

	handler.unseatLeaver(ctx, state, dispatcher, noopLogger{}, "user-1")

	g, err = state.App.Snapshot(ctx, state.MatchID)
	if err != nil {
		t.Fatalf("Snapshot after takeover: %v", err)
	}
	newOccupant := g.Seats[seat]
	if !isBotUserId(newOccupant) {
		t.Fatalf("seat %d occupant = %q, want a bot", seat, newOccupant)
	}
	if len(g.Hands[seat]) != len(dealt) {
		t.Fatalf("seat %d hand size = %d after takeover, want %d", seat, len(g.Hands[seat]), len(dealt))
	}
	for _, c := range dealt {
		found := false
		for _, have := range g.Hands[seat] {
			if have == c {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("card %s lost in takeover", c)
		}
	}

	// The hand record must now live under the bot; the leaver's copy is swept.
	if _, ok := engine.objects[storageKey(handCollection, state.MatchID, newOccupant)]; !ok {
		t.Error("no hand record stored for the replacement bot")
	}
	if _, ok := engine.objects[storageKey(handCollection, state.MatchID, "user-1")]; ok {
		t.Error("leaver's hand record was not swept")
	}
}

func TestDispatchEventSkipsDisconnectedRecipients(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state, _ := newTestMatchState()

	ev := app.Event{
		Kind:       app.EventHandDealt,
		Payload:    app.HandDealtPayload{Seat: domain.SeatNorth},
		Recipients: []string{"offline-user"},
	}
	handler.dispatchEvent(context.Background(), state, dispatcher, noopLogger{}, ev)

	if dispatcher.broadcastCount != 0 {
		t.Fatalf("Private event for a disconnected user must not be broadcast, got %d sends", dispatcher.broadcastCount)
	}
}

func TestPayoutWinnersCreditsHumansOnce(t *testing.T) {
	handler := newMatchHandler()
	state, store := newTestMatchState()
	economy := state.Economy.(*mockEconomy)
	ctx := context.Background()

	botID := bot.GetBotIdentity(0).UserID
	rec, _ := store.LoadGame(ctx, state.MatchID)
	rec.Game.Seats = [4]string{"user-n", bot.GetBotIdentity(1).UserID, "user-s", botID}
	if err := store.SaveGame(ctx, state.MatchID, rec); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	ev := app.Event{
		Kind:    app.EventMatchEnded,
		Payload: app.MatchEndedPayload{Winner: domain.TeamNS, Score: [2]int{10, 4}},
	}
	handler.payoutWinners(ctx, state, noopLogger{}, ev)
	handler.payoutWinners(ctx, state, noopLogger{}, ev)

	if len(economy.updates) != 2 {
		t.Fatalf("Expected 2 wallet updates (one per winning human, paid once), got %d", len(economy.updates))
	}
	for _, u := range economy.updates {
		if u.UserID != "user-n" && u.UserID != "user-s" {
			t.Fatalf("Unexpected payout recipient %s", u.UserID)
		}
		if u.Amount <= 0 {
			t.Fatalf("Expected positive payout, got %d", u.Amount)
		}
	}
}
