package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../mocks/mock_notifier.go -package=pkgmocks github.com/chromacraft/chromacraft/pkg/notifier Notifier

// Notifier pushes short notifications to the shop owner's channel
// (a webhook the owner's phone app or chat tool listens on).
type Notifier interface {
	NotifyOwner(ctx context.Context, title, body string) error
}

// WebhookNotifier POSTs notifications to a configured webhook URL
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier creates a notifier that POSTs to the given URL
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// webhookPayload carries a unique event id so receivers can deduplicate
// redelivered notifications.
type webhookPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NotifyOwner delivers the notification to the webhook
func (n *WebhookNotifier) NotifyOwner(ctx context.Context, title, body string) error {
	payload, err := json.Marshal(webhookPayload{ID: uuid.NewString(), Title: title, Body: body})
	if err != nil {
		return fmt.Errorf("failed to encode notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}

	return nil
}

// ConsoleNotifier is a development implementation that just logs notifications
type ConsoleNotifier struct{}

// NewConsoleNotifier creates a new console notifier for development
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

// NotifyOwner logs the notification to console
func (n *ConsoleNotifier) NotifyOwner(ctx context.Context, title, body string) error {
	fmt.Println("==============================================================")
	fmt.Println("                 OWNER NOTIFICATION                           ")
	fmt.Println("==============================================================")
	fmt.Printf("Title: %s\n", title)
	fmt.Printf("Body: %s\n", body)
	fmt.Println("==============================================================")

	return nil
}
