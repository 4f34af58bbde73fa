package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a joinable table.
	RpcQuickMatch = "quick_match"
	// RpcVoiceToken is the Nakama RPC id clients call to obtain a signed voice chat token.
	RpcVoiceToken = "voice_token"

	// MatchNameEuchre is the authoritative match handler name registered with Nakama.
	MatchNameEuchre = "euchre_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartHand     int64 = 1
	OpOrderUp       int64 = 2
	OpPassBid       int64 = 3
	OpCallTrump     int64 = 4
	OpDealerDiscard int64 = 5
	OpPlayCard      int64 = 6

	// Server -> Client events
	OpMatchSnapshot     int64 = 101
	OpHandStarted       int64 = 102
	OpHandDealt         int64 = 103 // send privately
	OpTrumpOrdered      int64 = 104
	OpBidPassed         int64 = 105
	OpTrumpCalled       int64 = 106
	OpDealerDiscardedEv int64 = 107
	OpCardPlayed        int64 = 108
	OpTrickWon          int64 = 109
	OpHandScored        int64 = 110
	OpMatchEnded        int64 = 111
	OpGameError         int64 = 120
)

// Error codes sent with OpGameError.
const (
	ErrCodeBadRequest = 400
	// ErrCodeConflict means the action lost a concurrent update race and can
	// be safely resubmitted.
	ErrCodeConflict = 409
)
