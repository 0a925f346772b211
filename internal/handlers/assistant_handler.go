package handlers

import (
	"log"
	"time"
	"urbanfabric/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AssistantHandler handles HTTP requests for the voice assistant and
// chatbot widgets.
type AssistantHandler struct {
	service *services.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(service *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		service: service,
	}
}

// RegisterRoutes registers the assistant routes. They are public but
// sit behind the supplied rate limiter; attaching middleware to this
// group only keeps it off sibling route groups.
func (h *AssistantHandler) RegisterRoutes(router fiber.Router, rateLimit fiber.Handler) {
	assistantRoutes := router.Group("/assistant", rateLimit)
	assistantRoutes.Post("/command", h.HandleCommand)
	assistantRoutes.Post("/chat", h.HandleChat)
}

// HandleCommand resolves a voice command into a structured action.
func (h *AssistantHandler) HandleCommand(c *fiber.Ctx) error {
	var req struct {
		Command string `json:"command"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing voice command body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Command == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Command is required",
		})
	}

	action := h.service.VoiceCommand(c.Context(), req.Command)
	return c.JSON(action)
}

// HandleChat produces a conversational chatbot reply.
func (h *AssistantHandler) HandleChat(c *fiber.Ctx) error {
	var req struct {
		Message             string                 `json:"message"`
		ConversationHistory []services.ChatMessage `json:"conversationHistory"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing chat body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	response := h.service.Chat(c.Context(), req.Message, req.ConversationHistory)
	return c.JSON(fiber.Map{
		"success":   true,
		"response":  response,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
