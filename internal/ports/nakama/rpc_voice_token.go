package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"euchre/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// VoiceTokenRequest asks for a signed voice token. ChannelName is required
// for join tokens and is usually the match ID.
type VoiceTokenRequest struct {
	Action      string `json:"action"` // "login" | "join"
	ChannelName string `json:"channel_name"`
}

// VoiceTokenResponse carries the signed token back to the client.
type VoiceTokenResponse struct {
	Token string `json:"token"`
}

// rpcVoiceToken signs a voice access token for the authenticated user so
// tables can run voice chat without exposing the signing secret to clients.
func rpcVoiceToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		return "", runtime.NewError("Unauthenticated", 16) // UNAUTHENTICATED
	}

	var req VoiceTokenRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	service := app.NewVoiceService(env["voice_secret"], env["voice_issuer"], env["voice_domain"])

	token, err := service.GenerateToken(userID, req.Action, req.ChannelName)
	if err != nil {
		logger.Error("rpcVoiceToken [User:%s]: Failed to generate token: %v", userID, err)
		return "", runtime.NewError("Failed to generate voice token", 13) // INTERNAL
	}

	resp := VoiceTokenResponse{Token: token}
	b, _ := json.Marshal(resp)
	return string(b), nil
}
