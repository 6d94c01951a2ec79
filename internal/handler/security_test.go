package handler

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/mofer-pos/internal/domain/auth"
	"github.com/xenking/mofer-pos/internal/oas"
)

var testPepper = []byte("test-pepper")

func newTestKeys() *mockAPIKeyRepo {
	keys := &mockAPIKeyRepo{keys: map[string]*auth.APIKeyInfo{}}
	keys.add("till-key", []string{auth.ScopeSubmitOrder, auth.ScopeTerminalResult})
	keys.add("reporting-key", nil)
	return keys
}

func TestHandleAPIKey(t *testing.T) {
	sec := NewSecurityHandler(newTestKeys(), testPepper)

	tests := []struct {
		name  string
		op    oas.OperationName
		key   string
		scope string
		err   error
	}{
		{"submit", oas.SubmitOrderOperation, "till-key", "", nil},
		{"terminal", oas.ApplyTerminalResultOperation, "till-key", "", nil},
		{"read with any key", oas.ListOrdersOperation, "reporting-key", "", nil},
		{"get with any key", oas.GetOrderOperation, "reporting-key", "", nil},
		{"empty", oas.GetOrderOperation, "", "", errUnauthorized},
		{"unknown", oas.SubmitOrderOperation, "guess", "", errUnauthorized},
		{"submit scope", oas.SubmitOrderOperation, "reporting-key", auth.ScopeSubmitOrder, nil},
		{"terminal scope", oas.ApplyTerminalResultOperation, "reporting-key", auth.ScopeTerminalResult, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sec.HandleAPIKey(context.Background(), tt.op, oas.APIKey{APIKey: tt.key})
			switch {
			case tt.scope != "":
				var se *scopeError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tt.scope, se.scope)
			case tt.err != nil:
				require.ErrorIs(t, err, tt.err)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestHandleAPIKey_KeyInContext(t *testing.T) {
	sec := NewSecurityHandler(newTestKeys(), testPepper)

	ctx, err := sec.HandleAPIKey(context.Background(), oas.ApplyTerminalResultOperation, oas.APIKey{APIKey: "till-key"})
	require.NoError(t, err)

	got, ok := apiKeyFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "till-key-id", got.ID)
	assert.Equal(t, "till-key", got.Name)

	_, ok = apiKeyFromContext(context.Background())
	assert.False(t, ok)
}

func TestHandleAPIKey_StoredHashMismatch(t *testing.T) {
	keys := &mockAPIKeyRepo{keys: map[string]*auth.APIKeyInfo{}}
	keys.keys[auth.HashKey("till-key", testPepper)] = &auth.APIKeyInfo{
		ID:      "k1",
		KeyHash: auth.HashKey("other-key", testPepper),
		Scopes:  []string{auth.ScopeTerminalResult},
	}
	sec := NewSecurityHandler(keys, testPepper)

	_, err := sec.HandleAPIKey(context.Background(), oas.ApplyTerminalResultOperation, oas.APIKey{APIKey: "till-key"})
	require.ErrorIs(t, err, errUnauthorized)
}

func TestHandleAPIKey_RepositoryError(t *testing.T) {
	sec := NewSecurityHandler(&mockAPIKeyRepo{err: errors.New("connection refused")}, testPepper)

	_, err := sec.HandleAPIKey(context.Background(), oas.GetOrderOperation, oas.APIKey{APIKey: "till-key"})
	require.ErrorIs(t, err, errUnauthorized)
}

func TestHandleAPIKey_WrongPepper(t *testing.T) {
	sec := NewSecurityHandler(newTestKeys(), []byte("rotated"))

	_, err := sec.HandleAPIKey(context.Background(), oas.GetOrderOperation, oas.APIKey{APIKey: "till-key"})
	require.ErrorIs(t, err, errUnauthorized)
}

// --- Mock implementations ---

type mockAPIKeyRepo struct {
	keys map[string]*auth.APIKeyInfo
	err  error
}

func (m *mockAPIKeyRepo) add(key string, scopes []string) {
	hash := auth.HashKey(key, testPepper)
	m.keys[hash] = &auth.APIKeyInfo{ID: key + "-id", KeyHash: hash, Name: key, Scopes: scopes}
}

func (m *mockAPIKeyRepo) FindByHash(_ context.Context, hash string) (*auth.APIKeyInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	info, ok := m.keys[hash]
	if !ok {
		return nil, auth.ErrKeyNotFound
	}
	return info, nil
}
