package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/gatherly/backend/pkg/utils"
)

func TestIssueTokenEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("POST /api/v1/auth/token without body mints default owner token", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/v1/auth/token", nil, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		if body["user_id"] != testDefaultOwnerID.String() {
			t.Fatalf("expected default owner id, got %v", body["user_id"])
		}

		token, _ := body["token"].(string)
		claims, err := utils.ValidateToken(token)
		if err != nil {
			t.Fatalf("minted token failed validation: %v", err)
		}
		if claims.UserID != testDefaultOwnerID {
			t.Fatalf("expected default owner claim, got %s", claims.UserID)
		}
	})

	t.Run("POST with explicit user_id names that owner", func(t *testing.T) {
		owner := uuid.New()
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/v1/auth/token", map[string]any{
			"user_id": owner.String(),
		}, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)

		if body["user_id"] != owner.String() {
			t.Fatalf("expected requested owner id, got %v", body["user_id"])
		}

		token, _ := body["token"].(string)
		claims, err := utils.ValidateToken(token)
		if err != nil {
			t.Fatalf("minted token failed validation: %v", err)
		}
		if claims.UserID != owner {
			t.Fatalf("expected requested owner claim, got %s", claims.UserID)
		}
	})

	t.Run("POST with malformed user_id rejected", func(t *testing.T) {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/v1/auth/token", map[string]any{
			"user_id": "not-a-uuid",
		}, nil)
		assertStatus(t, resp, http.StatusBadRequest)
	})
}
