package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"urbanfabric/internal/services"
	"urbanfabric/pkg/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGemini spins up a fake generateContent endpoint that replies with
// the given text for every prompt.
func stubGemini(t *testing.T, handler http.HandlerFunc) *gemini.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return gemini.NewClient(gemini.Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
}

func geminiReply(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func TestAssistantService_VoiceCommand(t *testing.T) {
	client := stubGemini(t, geminiReply(`{"action":"navigate","path":"/cart","elementId":null,"message":null}`))
	assistant := services.NewAssistantService(client)

	action := assistant.VoiceCommand(context.Background(), "go to my cart")
	assert.Equal(t, "navigate", action.Action)
	assert.Equal(t, "/cart", action.Path)
	assert.Empty(t, action.ElementID)
}

func TestAssistantService_VoiceCommand_FallbackOnUpstreamError(t *testing.T) {
	client := stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	assistant := services.NewAssistantService(client)

	action := assistant.VoiceCommand(context.Background(), "go to my cart")
	assert.Equal(t, "speak", action.Action)
	assert.NotEmpty(t, action.Message)
}

func TestAssistantService_VoiceCommand_FallbackOnUnparseableReply(t *testing.T) {
	client := stubGemini(t, geminiReply("sure, navigating to your cart!"))
	assistant := services.NewAssistantService(client)

	action := assistant.VoiceCommand(context.Background(), "go to my cart")
	assert.Equal(t, "speak", action.Action)
	assert.NotEmpty(t, action.Message)
}

func TestAssistantService_Chat(t *testing.T) {
	var captured string
	client := stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)
		require.NotEmpty(t, req.Contents[0].Parts)
		captured = req.Contents[0].Parts[0].Text
		geminiReply("We carry hoodies in sizes S through XL.")(w, r)
	})
	assistant := services.NewAssistantService(client)

	history := []services.ChatMessage{
		{Role: "user", Content: "Hi there"},
		{Role: "assistant", Content: "Hello! How can I help?"},
	}
	reply := assistant.Chat(context.Background(), "Do you have hoodies?", history)
	assert.Equal(t, "We carry hoodies in sizes S through XL.", reply)

	// The prompt should carry both the history and the current message
	assert.True(t, strings.Contains(captured, "user: Hi there"))
	assert.True(t, strings.Contains(captured, "assistant: Hello! How can I help?"))
	assert.True(t, strings.Contains(captured, "Do you have hoodies?"))
}

func TestAssistantService_Chat_FallbackOnUpstreamError(t *testing.T) {
	client := stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})
	assistant := services.NewAssistantService(client)

	reply := assistant.Chat(context.Background(), "Do you have hoodies?", nil)
	assert.Equal(t, "I'm sorry, I'm having trouble responding right now. Please try again in a moment.", reply)
}
