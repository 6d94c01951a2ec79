package handler

import (
	"context"
	"crypto/subtle"
	"encoding/hex"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/mofer-pos/internal/domain/auth"
	"github.com/xenking/mofer-pos/internal/oas"
)

// Compile-time check ensuring SecurityHandler satisfies the ogen interface.
var _ oas.SecurityHandler = (*SecurityHandler)(nil)

// APIKeyHeader carries the terminal API key.
const APIKeyHeader = "api_key"

// operationScopes lists the scope each write operation needs. Reads accept
// any valid key.
var operationScopes = map[oas.OperationName]string{
	oas.SubmitOrderOperation:         auth.ScopeSubmitOrder,
	oas.ApplyTerminalResultOperation: auth.ScopeTerminalResult,
}

var errUnauthorized = errors.New("unauthorized")

// scopeError is returned for a valid key that lacks the operation's scope.
type scopeError struct {
	scope string
}

func (e *scopeError) Error() string {
	return "api key lacks scope " + e.scope
}

type apiKeyCtxKey struct{}

func apiKeyFromContext(ctx context.Context) (*auth.APIKeyInfo, bool) {
	info, ok := ctx.Value(apiKeyCtxKey{}).(*auth.APIKeyInfo)
	return info, ok
}

// SecurityHandler implements ogen's SecurityHandler interface, authenticating
// API requests via HMAC-SHA256 hashed API keys.
type SecurityHandler struct {
	apikeys auth.Repository
	pepper  []byte
}

// NewSecurityHandler creates a SecurityHandler with the given API key
// repository and HMAC pepper.
func NewSecurityHandler(apikeys auth.Repository, pepper []byte) *SecurityHandler {
	return &SecurityHandler{
		apikeys: apikeys,
		pepper:  pepper,
	}
}

// HandleAPIKey authenticates the key and checks the scope of the operation.
// The key and a logger tagged with its id are stored in the returned context.
func (s *SecurityHandler) HandleAPIKey(ctx context.Context, operationName oas.OperationName, t oas.APIKey) (context.Context, error) {
	info, err := s.authenticate(ctx, t.APIKey)
	if err != nil {
		if !errors.Is(err, auth.ErrKeyNotFound) {
			zctx.From(ctx).Error("API key lookup failed", zap.Error(err))
		}
		return ctx, errUnauthorized
	}
	if scope, ok := operationScopes[operationName]; ok && !info.HasScope(scope) {
		return ctx, &scopeError{scope: scope}
	}

	ctx = context.WithValue(ctx, apiKeyCtxKey{}, info)
	return zctx.Base(ctx, zctx.From(ctx).With(zap.String("api_key_id", info.ID))), nil
}

// authenticate hashes key, looks it up and compares the stored hash in
// constant time.
func (s *SecurityHandler) authenticate(ctx context.Context, key string) (*auth.APIKeyInfo, error) {
	if key == "" {
		return nil, auth.ErrKeyNotFound
	}
	hexHash := auth.HashKey(key, s.pepper)

	info, err := s.apikeys.FindByHash(ctx, hexHash)
	if err != nil {
		return nil, err
	}

	computed, _ := hex.DecodeString(hexHash)
	stored, err := hex.DecodeString(info.KeyHash)
	if err != nil {
		return nil, errors.Wrap(err, "decode stored hash")
	}
	if subtle.ConstantTimeCompare(computed, stored) != 1 {
		return nil, auth.ErrKeyNotFound
	}
	return info, nil
}
