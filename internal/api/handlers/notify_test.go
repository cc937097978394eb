package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-OS/command-center/internal/api/handlers"
	"github.com/BlackRoad-OS/command-center/internal/notify"
	"github.com/BlackRoad-OS/command-center/internal/store"
)

func newNotifyHandlers() *handlers.Handlers {
	return handlers.New(nil, nil, nil, nil, store.NewMemoryStore(), notify.NewService(), "test", nil)
}

func TestSendNotification_IgnoresUnknownChannels(t *testing.T) {
	h := newNotifyHandlers()

	rec := postJSON(t, h.SendNotification, map[string]any{
		"message":  "deploy finished",
		"channels": []string{"log", "unknown-channel"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string   `json:"message"`
		Sent    []string `json:"sent"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "deploy finished", resp.Message)
	assert.Equal(t, []string{"log"}, resp.Sent)
}

func TestSendNotification_DefaultsToLogChannel(t *testing.T) {
	h := newNotifyHandlers()

	rec := postJSON(t, h.SendNotification, map[string]any{"message": "hello"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Sent []string `json:"sent"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"log"}, resp.Sent)
}

func TestSendNotification_RequiresMessage(t *testing.T) {
	h := newNotifyHandlers()

	rec := postJSON(t, h.SendNotification, map[string]any{"channels": []string{"log"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
