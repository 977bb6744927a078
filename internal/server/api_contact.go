package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	contactapp "github.com/lemono/storefront-api/internal/domains/contact/application"
	contactdomain "github.com/lemono/storefront-api/internal/domains/contact/domain"
	contactports "github.com/lemono/storefront-api/internal/domains/contact/ports"
)

const (
	defaultMessageLimit = 20
	maxMessageLimit     = 100
)

// ContactAPI wires HTTP transport with the contact bounded context.
type ContactAPI struct {
	service *contactapp.Service
}

// NewContactAPI creates a ContactAPI backed by the provided service.
func NewContactAPI(service *contactapp.Service) ContactAPI {
	return ContactAPI{service: service}
}

type contactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type newsletterRequest struct {
	Email string `json:"email"`
}

// contactMessageResponse is the outbound admin view of a message.
type contactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func toContactMessageResponse(message *contactdomain.Message) contactMessageResponse {
	return contactMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Body,
		Read:      message.Read,
		CreatedAt: message.CreatedAt,
	}
}

// Post /api/contact
// Submit a contact-form message
func (api *ContactAPI) SubmitMessage(c *gin.Context) {
	var payload contactMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	message, err := api.service.SubmitMessage(c.Request.Context(), payload.Name, payload.Email, payload.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for reaching out! We'll get back to you soon.",
		"id":      message.ID,
	})
}

// Get /api/contact/messages
// List contact messages for the admin inbox
func (api *ContactAPI) ListMessages(c *gin.Context) {
	var filter contactports.MessageFilter
	if raw := c.Query("read"); raw != "" {
		read := raw == "true"
		filter.Read = &read
	}
	page, ok := parsePage(c, defaultMessageLimit, maxMessageLimit)
	if !ok {
		return
	}

	messages, total, err := api.service.ListMessages(c.Request.Context(), filter, contactports.Page(page))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]contactMessageResponse, 0, len(messages))
	for _, message := range messages {
		result = append(result, toContactMessageResponse(message))
	}
	c.JSON(http.StatusOK, gin.H{
		"messages": result,
		"pagination": gin.H{
			"total":  total,
			"limit":  page.Limit,
			"offset": page.Offset,
		},
	})
}

// Patch /api/contact/messages/:id/read
// Mark a contact message as read
func (api *ContactAPI) MarkMessageRead(c *gin.Context) {
	message, err := api.service.MarkMessageRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContactMessageResponse(message))
}

// Post /api/contact/newsletter
// Subscribe an email to the newsletter
func (api *ContactAPI) Subscribe(c *gin.Context) {
	var payload newsletterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	outcome, err := api.service.Subscribe(c.Request.Context(), payload.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	switch outcome {
	case contactapp.AlreadySubscribed:
		c.JSON(http.StatusOK, gin.H{"message": "You're already subscribed!"})
	case contactapp.Resubscribed:
		c.JSON(http.StatusOK, gin.H{"message": "Welcome back! Your subscription has been reactivated."})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Thanks for subscribing!"})
	}
}
