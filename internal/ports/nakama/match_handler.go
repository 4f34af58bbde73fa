package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand"
	"strconv"

	"euchre/internal/app"
	"euchre/internal/bot"
	"euchre/internal/config"
	"euchre/internal/domain"
	"euchre/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the runtime state for the Nakama match handler. The
// authoritative game state itself lives in storage and is owned by the app
// service; this struct only carries connection bookkeeping and bot timers.
type MatchState struct {
	MatchID   string
	Presences map[string]runtime.Presence // UserID -> Presence for targeted messaging

	App     *app.Service      `json:"-"`
	Economy ports.EconomyPort `json:"-"`

	Tick                 int64
	BotsEnabled          bool
	BotMinDelay          int   // Min seconds a bot waits before acting
	BotMaxDelay          int   // Max seconds a bot waits before acting
	BotAutoFillDelay     int   // Seconds to wait before auto-filling a solo lobby
	BotWaitUntil         int64 // Tick when the pending bot action fires
	LastSinglePlayerTick int64 // Tick when a single human started waiting
	RewardsPaid          bool
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func countHumans(seats []string) int {
	count := 0
	for _, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			count++
		}
	}
	return count
}

func countOpenSeats(seats []string) int {
	count := 0
	for _, userId := range seats {
		if userId == "" {
			count++
		}
	}
	return count
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)

	state := &MatchState{
		MatchID:     matchID,
		Presences:   make(map[string]runtime.Presence),
		App:         app.NewService(NewStorageAdapter(nk), nil),
		Economy:     NewNakamaEconomyAdapter(nk),
		BotsEnabled: true,
	}

	if cfg := config.GetGameConfig(); cfg != nil {
		state.BotMinDelay = cfg.BotMinDelaySeconds
		state.BotMaxDelay = cfg.BotMaxDelaySeconds
		state.BotAutoFillDelay = cfg.BotAutoFillDelaySeconds
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["euchre_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["euchre_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["euchre_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["euchre_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}

	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay == 0 {
		state.BotMaxDelay = 3
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
	}

	label := marshalLabel(&MatchLabel{Game: "euchre", Open: domain.NumSeats, Phase: string(domain.PhaseLobby)})

	tickRate := 1
	return state, tickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	g, err := matchState.App.Snapshot(ctx, matchState.MatchID)
	if err != nil {
		logger.Error("MatchJoinAttempt: Failed to load game: %v", err)
		return state, false, "internal error"
	}

	if g.Phase == domain.PhaseFinished {
		return state, false, "Match finished"
	}

	// Reconnects are always allowed.
	if _, seated := g.SeatOf(presence.GetUserId()); seated {
		return state, true, ""
	}

	// Allow join if there is an empty seat OR a bot to replace while in the lobby.
	if g.OccupiedSeats() >= domain.NumSeats {
		hasBot := false
		if g.Hand == nil {
			for _, occupant := range g.Seats {
				if isBotUserId(occupant) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p
		mh.seatJoiner(ctx, matchState, dispatcher, logger, p.GetUserId())
	}

	mh.updateLabel(ctx, matchState, dispatcher, logger)
	mh.broadcastMatchState(ctx, matchState, dispatcher, logger)

	return matchState
}

// seatJoiner claims a seat for a newly joined user, evicting a lobby bot if
// the table is full. Reconnecting users keep their seat and get their hand
// re-sent privately.
func (mh *matchHandler) seatJoiner(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string) {
	g, err := state.App.Snapshot(ctx, state.MatchID)
	if err != nil {
		logger.Error("seatJoiner: Failed to load game: %v", err)
		return
	}

	if seat, seated := g.SeatOf(userID); seated {
		if g.Hand != nil {
			mh.sendHand(state, dispatcher, logger, userID, seat, g.Hands[seat])
		}
		return
	}

	if g.OccupiedSeats() >= domain.NumSeats && g.Hand == nil {
		for _, occupant := range g.Seats {
			if isBotUserId(occupant) {
				if _, err := state.App.LeaveSeat(ctx, state.MatchID, occupant); err != nil {
					logger.Error("seatJoiner: Failed to evict bot %s: %v", occupant, err)
					return
				}
				logger.Info("seatJoiner: Replaced bot %s with human %s", occupant, userID)
				break
			}
		}
	}

	_, events, err := state.App.JoinSeat(ctx, state.MatchID, userID)
	if err != nil {
		logger.Warn("seatJoiner: User %s joined but could not be seated: %v", userID, err)
		return
	}
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		mh.unseatLeaver(ctx, matchState, dispatcher, logger, p.GetUserId())
	}

	g, err := matchState.App.Snapshot(ctx, matchState.MatchID)
	if err != nil {
		logger.Error("MatchLeave: Failed to load game: %v", err)
		return matchState
	}

	if shouldTerminateNoHumans(g.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		if err := matchState.App.EndMatch(ctx, matchState.MatchID); err != nil {
			logger.Warn("MatchLeave: Failed to clean up match records: %v", err)
		}
		return nil
	}

	mh.updateLabel(ctx, matchState, dispatcher, logger)
	mh.broadcastMatchState(ctx, matchState, dispatcher, logger)

	return matchState
}

// unseatLeaver frees a leaver's seat in the lobby, or swaps in a bot mid-hand
// so the remaining players can finish the hand.
func (mh *matchHandler) unseatLeaver(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string) {
	g, err := state.App.Snapshot(ctx, state.MatchID)
	if err != nil {
		logger.Error("unseatLeaver: Failed to load game: %v", err)
		return
	}
	seat, seated := g.SeatOf(userID)
	if !seated {
		return
	}

	// Mid-hand the seat must keep its cards or the hand can never finish,
	// so a bot takes the seat over in a single transaction instead of a
	// free-then-reclaim that would drop the private hand record.
	if g.Hand != nil && state.BotsEnabled {
		var identity bot.BotIdentity
		for i := 0; i < domain.NumSeats; i++ {
			candidate := bot.GetBotIdentity(int(seat) + i)
			if _, taken := g.SeatOf(candidate.UserID); !taken {
				identity = candidate
				break
			}
		}
		_, events, err := state.App.TakeOverSeat(ctx, state.MatchID, userID, identity.UserID)
		if err != nil {
			logger.Error("unseatLeaver: Failed to hand seat %d to a bot: %v", seat, err)
			return
		}
		logger.Info("unseatLeaver: Bot %s took over seat %d from %s.", identity.UserID, seat, userID)
		for _, ev := range events {
			mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
		}
		return
	}

	events, err := state.App.LeaveSeat(ctx, state.MatchID, userID)
	if err != nil {
		logger.Warn("unseatLeaver: Failed to free seat for %s: %v", userID, err)
		return
	}
	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
	logger.Debug("unseatLeaver: User %s left, seat %d freed.", userID, seat)
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		mh.handleMessage(ctx, matchState, dispatcher, logger, msg)
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

// handleMessage routes one client message to the app service and broadcasts
// the resulting events.
func (mh *matchHandler) handleMessage(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	userID := msg.GetUserId()

	var events []app.Event
	var err error

	switch msg.GetOpCode() {
	case OpStartHand:
		events, err = state.App.StartHand(ctx, state.MatchID, userID)
	case OpOrderUp:
		events, err = state.App.OrderUp(ctx, state.MatchID, userID)
	case OpPassBid:
		events, err = state.App.PassBid(ctx, state.MatchID, userID)
	case OpCallTrump:
		var req CallTrumpRequest
		if err := json.Unmarshal(msg.GetData(), &req); err != nil {
			mh.sendError(state, dispatcher, logger, userID, ErrCodeBadRequest, "invalid call_trump payload")
			return
		}
		events, err = state.App.CallTrump(ctx, state.MatchID, userID, req.Suit)
	case OpDealerDiscard:
		var req DealerDiscardRequest
		if err := json.Unmarshal(msg.GetData(), &req); err != nil {
			mh.sendError(state, dispatcher, logger, userID, ErrCodeBadRequest, "invalid discard payload")
			return
		}
		events, err = state.App.DealerDiscard(ctx, state.MatchID, userID, req.Card)
	case OpPlayCard:
		var req PlayCardRequest
		if err := json.Unmarshal(msg.GetData(), &req); err != nil {
			mh.sendError(state, dispatcher, logger, userID, ErrCodeBadRequest, "invalid play payload")
			return
		}
		events, err = state.App.PlayCard(ctx, state.MatchID, userID, req.Card)
	default:
		logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		return
	}

	if err != nil {
		if errors.Is(err, ports.ErrConflict) {
			logger.Debug("handleMessage: Conflict for user %s on opcode %d, client may retry.", userID, msg.GetOpCode())
			mh.sendError(state, dispatcher, logger, userID, ErrCodeConflict, "state changed, retry")
			return
		}
		logger.Warn("handleMessage: User %s opcode %d rejected: %v", userID, msg.GetOpCode(), err)
		mh.sendError(state, dispatcher, logger, userID, ErrCodeBadRequest, err.Error())
		return
	}

	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
	mh.updateLabel(ctx, state, dispatcher, logger)
}

// botActs reports whether the seat occupant is a bot expected to act in the
// current phase, returning the acting seat.
func botActs(g *domain.Game) (domain.Seat, bool) {
	switch g.Phase {
	case domain.PhaseBiddingRound1, domain.PhaseBiddingRound2, domain.PhaseDealerDiscard, domain.PhasePlaying:
		if isBotUserId(g.Seats[g.Turn]) {
			return g.Turn, true
		}
	}
	return 0, false
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	g, err := state.App.Snapshot(ctx, state.MatchID)
	if err != nil {
		logger.Error("processBots: Failed to load game: %v", err)
		return
	}

	// Auto-fill the lobby when a single human has been waiting long enough.
	if g.Hand == nil && g.Phase == domain.PhaseLobby {
		if countHumans(g.Seats[:]) == 1 && countOpenSeats(g.Seats[:]) > 0 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, occupant := range g.Seats {
					if occupant != "" {
						continue
					}
					identity := bot.GetBotIdentity(i)
					if _, events, err := state.App.JoinSeat(ctx, state.MatchID, identity.UserID); err != nil {
						logger.Error("processBots: Failed to seat bot %s: %v", identity.UserID, err)
					} else {
						logger.Info("processBots: Added bot %s (%s) to the table.", identity.Username, identity.UserID)
						added = true
						for _, ev := range events {
							mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
						}
					}
				}
				if added {
					mh.updateLabel(ctx, state, dispatcher, logger)
					mh.broadcastMatchState(ctx, state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	seat, ok := botActs(g)
	if !ok {
		state.BotWaitUntil = 0
		return
	}
	botID := g.Seats[seat]

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s (seat %d) will act at tick %d (current %d)", botID, seat, state.BotWaitUntil, state.Tick)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	action, err := bot.Decide(g, seat)
	if err != nil {
		logger.Error("processBots: Bot %s failed to decide: %v", botID, err)
		return
	}

	var events []app.Event
	switch action.Kind {
	case bot.ActionOrderUp:
		events, err = state.App.OrderUp(ctx, state.MatchID, botID)
	case bot.ActionPassBid:
		events, err = state.App.PassBid(ctx, state.MatchID, botID)
	case bot.ActionCallTrump:
		events, err = state.App.CallTrump(ctx, state.MatchID, botID, action.Suit)
	case bot.ActionDiscard:
		events, err = state.App.DealerDiscard(ctx, state.MatchID, botID, action.Card)
	case bot.ActionPlayCard:
		events, err = state.App.PlayCard(ctx, state.MatchID, botID, action.Card)
	}
	if err != nil {
		if errors.Is(err, ports.ErrConflict) {
			// Lost a race with a human action; re-evaluate next tick.
			return
		}
		logger.Error("processBots: Bot %s action %s rejected: %v", botID, action.Kind, err)
		return
	}

	for _, ev := range events {
		mh.dispatchEvent(ctx, state, dispatcher, logger, ev)
	}
	mh.updateLabel(ctx, state, dispatcher, logger)
}

// eventOpCode maps app events to wire opcodes.
func eventOpCode(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventSeatClaimed, app.EventSeatReleased:
		return OpMatchSnapshot, false // folded into the snapshot broadcast
	case app.EventHandStarted:
		return OpHandStarted, true
	case app.EventHandDealt:
		return OpHandDealt, true
	case app.EventTrumpOrdered:
		return OpTrumpOrdered, true
	case app.EventBidPassed:
		return OpBidPassed, true
	case app.EventTrumpCalled:
		return OpTrumpCalled, true
	case app.EventDealerDiscarded:
		return OpDealerDiscardedEv, true
	case app.EventCardPlayed:
		return OpCardPlayed, true
	case app.EventTrickWon:
		return OpTrickWon, true
	case app.EventHandScored:
		return OpHandScored, true
	case app.EventMatchEnded:
		return OpMatchEnded, true
	default:
		return 0, false
	}
}

// dispatchEvent serializes an app event and broadcasts it, honoring targeted
// recipients. Match completion additionally pays out the winning team.
func (mh *matchHandler) dispatchEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	if ev.Kind == app.EventMatchEnded {
		mh.payoutWinners(ctx, state, logger, ev)
	}

	opCode, send := eventOpCode(ev.Kind)
	if !send {
		return
	}

	data, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("dispatchEvent: Failed to marshal event %s: %v", ev.Kind, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}

		// If we had intended recipients but none are connected (e.g. they
		// are bots), we MUST NOT broadcast to everyone else.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, data, recipients, nil, true)
}

// payoutWinners credits each human on the winning team when a match ends.
func (mh *matchHandler) payoutWinners(ctx context.Context, state *MatchState, logger runtime.Logger, ev app.Event) {
	if state.Economy == nil || state.RewardsPaid {
		return
	}
	payload, ok := ev.Payload.(app.MatchEndedPayload)
	if !ok {
		return
	}

	g, err := state.App.Snapshot(ctx, state.MatchID)
	if err != nil {
		logger.Error("payoutWinners: Failed to load game: %v", err)
		return
	}

	reward := config.GetWinRewardGold()
	updates := make([]ports.WalletUpdate, 0, 2)
	for seat := domain.SeatNorth; seat < domain.NumSeats; seat++ {
		occupant := g.Seats[seat]
		if occupant == "" || isBotUserId(occupant) || seat.Team() != payload.Winner {
			continue
		}
		updates = append(updates, ports.WalletUpdate{
			UserID: occupant,
			Amount: reward,
			Metadata: map[string]interface{}{
				"match_id": state.MatchID,
				"reason":   "match_win",
			},
		})
	}
	if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
		logger.Error("payoutWinners: Failed to update balances: %v", err)
		return
	}
	state.RewardsPaid = true
}

// sendHand re-sends a seat's private hand to its occupant, used on reconnect.
func (mh *matchHandler) sendHand(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, seat domain.Seat, cards []domain.Card) {
	p, ok := state.Presences[userID]
	if !ok {
		return
	}
	data, err := json.Marshal(app.HandDealtPayload{Seat: seat, Cards: cards})
	if err != nil {
		logger.Error("sendHand: Failed to marshal hand: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpHandDealt, data, []runtime.Presence{p}, nil, true)
}

// sendError sends a GameError to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	data, err := json.Marshal(GameError{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal GameError: %v", err)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, data, []runtime.Presence{presence}, nil, true)
}

// broadcastMatchState sends the public table snapshot to everyone.
func (mh *matchHandler) broadcastMatchState(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	g, err := state.App.Snapshot(ctx, state.MatchID)
	if err != nil {
		logger.Error("broadcastMatchState: Failed to load game: %v", err)
		return
	}

	snapshot := buildSnapshot(ctx, state, g)
	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastMatchState: Failed to marshal snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchSnapshot, data, nil, nil, true)
}

func buildSnapshot(ctx context.Context, state *MatchState, g *domain.Game) *MatchSnapshot {
	snapshot := &MatchSnapshot{
		Phase:      g.Phase,
		Seats:      g.Seats,
		Score:      g.Score,
		HandNumber: g.HandNumber,
		Dealer:     g.Dealer,
		Turn:       g.Turn,
	}
	if g.Hand != nil {
		snapshot.Upcard = g.Hand.Upcard
		snapshot.Trump = g.Hand.Trump
	}

	for seat := domain.SeatNorth; seat < domain.NumSeats; seat++ {
		occupant := g.Seats[seat]
		if occupant == "" {
			continue
		}

		displayName := occupant
		if p, ok := state.Presences[occupant]; ok {
			displayName = p.GetUsername()
		} else if name := bot.GetBotDisplayName(occupant); name != "" {
			displayName = name
		}

		balance := int64(0)
		if state.Economy != nil {
			if b, err := state.Economy.GetBalance(ctx, occupant); err == nil {
				balance = b
			}
		}

		snapshot.Players = append(snapshot.Players, PlayerInfo{
			UserID:      occupant,
			Seat:        seat,
			DisplayName: displayName,
			IsBot:       isBotUserId(occupant),
			Balance:     balance,
		})
	}
	return snapshot
}

func marshalLabel(label *MatchLabel) string {
	data, err := json.Marshal(label)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func (mh *matchHandler) updateLabel(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	g, err := state.App.Snapshot(ctx, state.MatchID)
	if err != nil {
		logger.Error("UpdateLabel: Failed to load game: %v", err)
		return
	}

	label := marshalLabel(&MatchLabel{
		Game:  "euchre",
		Open:  countOpenSeats(g.Seats[:]),
		Phase: string(g.Phase),
	})
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
