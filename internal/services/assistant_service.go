package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"urbanfabric/pkg/gemini"
)

// VoiceAction is the structured intent the voice assistant returns to
// the frontend: navigate somewhere, click something, or just speak.
type VoiceAction struct {
	Action    string `json:"action"`
	Path      string `json:"path"`
	ElementID string `json:"elementId"`
	Message   string `json:"message"`
}

// ChatMessage is one turn of chatbot conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const voicePromptTemplate = `You are a voice assistant for an e-commerce clothing website.
Based on the voice command, determine the user's intent.
The possible actions are "navigate", "click", or "speak".

- For navigation, provide a URL path (e.g., "/cart", "/products/123").
- For clicks, provide the elementId of the button or link (e.g., "add-to-cart-btn").
- If the command is unclear or a general question, use the "speak" action to reply.

Return a JSON object with this exact schema:
{
  "action": "navigate" | "click" | "speak",
  "path": string | null,
  "elementId": string | null,
  "message": string | null
}

Voice Command: "%s"
`

const chatPromptTemplate = `You are a friendly and helpful AI assistant for an e-commerce clothing store called "URBANFABRIC".
You help customers with product inquiries, shopping assistance, and general questions.

Context about the store:
- We sell clothing for Men, Women, and Kids
- We have categories like casual wear, formal wear, sportswear
- We offer various sizes and have a shopping cart system
- We provide voice navigation and assistance

Please respond in a natural, conversational way as if you're talking to a real person.
Keep responses concise but helpful. You can ask follow-up questions if needed.

Previous conversation context:
%s

Current user message: "%s"

Please respond naturally:
`

// Canned replies used when the upstream model is unreachable, so the
// widgets degrade to an apology instead of surfacing an error.
const (
	voiceFallbackMessage = "Sorry, I'm having a little trouble right now. Please try again."
	chatFallbackMessage  = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."
)

// AssistantService wraps the Gemini API for the storefront's voice
// assistant and chatbot widgets.
type AssistantService struct {
	client *gemini.Client
}

// NewAssistantService creates a new AssistantService.
func NewAssistantService(client *gemini.Client) *AssistantService {
	return &AssistantService{
		client: client,
	}
}

// VoiceCommand turns a free-text voice command into a VoiceAction.
// Upstream or parse failures never propagate; the caller gets a spoken
// apology action instead.
func (s *AssistantService) VoiceCommand(ctx context.Context, command string) VoiceAction {
	fallback := VoiceAction{
		Action:  "speak",
		Message: voiceFallbackMessage,
	}

	prompt := fmt.Sprintf(voicePromptTemplate, command)
	reply, err := s.client.GenerateContent(ctx, prompt, true)
	if err != nil {
		log.Printf("Voice command failed: %v", err)
		return fallback
	}

	var action VoiceAction
	if err := json.Unmarshal([]byte(reply), &action); err != nil {
		log.Printf("Voice command returned unparseable JSON: %v", err)
		return fallback
	}
	return action
}

// Chat produces a conversational reply to the user's message, feeding
// the prior turns back into the prompt for context.
func (s *AssistantService) Chat(ctx context.Context, message string, history []ChatMessage) string {
	var sb strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&sb, "%s: %s\n", turn.Role, turn.Content)
	}

	prompt := fmt.Sprintf(chatPromptTemplate, sb.String(), message)
	reply, err := s.client.GenerateContent(ctx, prompt, false)
	if err != nil {
		log.Printf("Chatbot request failed: %v", err)
		return chatFallbackMessage
	}
	return reply
}
