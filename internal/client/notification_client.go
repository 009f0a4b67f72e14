package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"match-service/internal/metrics"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	NotificationPlayerJoined       NotificationType = "PLAYER_JOINED"
	NotificationPlayerWaitlisted   NotificationType = "PLAYER_WAITLISTED"
	NotificationPlayerLeft         NotificationType = "PLAYER_LEFT"
	NotificationPlayerPromoted     NotificationType = "PLAYER_PROMOTED"
	NotificationMatchFull          NotificationType = "MATCH_FULL"
	NotificationMatchStarted       NotificationType = "MATCH_STARTED"
	NotificationMatchFinished      NotificationType = "MATCH_FINISHED"
	NotificationMatchCanceled      NotificationType = "MATCH_CANCELED"
	NotificationInvitationReceived NotificationType = "INVITATION_RECEIVED"
	NotificationInvitationAccepted NotificationType = "INVITATION_ACCEPTED"
	NotificationInvitationDeclined NotificationType = "INVITATION_DECLINED"
)

// Resource types carried by notification events
const (
	ResourceTypeMatch      = "match"
	ResourceTypeInvitation = "invitation"
)

// NotificationEvent is a notification addressed to a single user
type NotificationEvent struct {
	Type         NotificationType       `json:"type"`
	ActorID      uuid.UUID              `json:"actorId"`
	TargetUserID uuid.UUID              `json:"targetUserId"`
	MatchID      uuid.UUID              `json:"matchId"`
	ResourceType string                 `json:"resourceType"`
	ResourceID   uuid.UUID              `json:"resourceId"`
	ResourceName string                 `json:"resourceName,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	OccurredAt   string                 `json:"occurredAt,omitempty"`
}

// BulkNotificationRequest represents a bulk notification request
type BulkNotificationRequest struct {
	Notifications []NotificationEvent `json:"notifications"`
}

// NotificationClient delivers notification events to one sink
type NotificationClient interface {
	// SendNotification sends a single notification
	SendNotification(ctx context.Context, event NotificationEvent) error
	// SendBulkNotifications sends multiple notifications at once
	SendBulkNotifications(ctx context.Context, events []NotificationEvent) error
}

// notificationClient posts events to the notification service internal API
type notificationClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewNotificationClient creates a new Notification API client
func NewNotificationClient(baseURL string, apiKey string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) NotificationClient {
	return &notificationClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// SendNotification sends a single notification to the notification service
func (c *notificationClient) SendNotification(ctx context.Context, event NotificationEvent) error {
	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}
	return c.post(ctx, "/api/internal/notifications", event, 1)
}

// SendBulkNotifications sends multiple notifications at once
func (c *notificationClient) SendBulkNotifications(ctx context.Context, events []NotificationEvent) error {
	if len(events) == 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i := range events {
		if events[i].OccurredAt == "" {
			events[i].OccurredAt = now
		}
	}
	return c.post(ctx, "/api/internal/notifications/bulk", BulkNotificationRequest{Notifications: events}, len(events))
}

func (c *notificationClient) post(ctx context.Context, path string, body interface{}, count int) error {
	url := c.baseURL + path

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal notifications: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-API-Key", c.apiKey)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	c.metrics.RecordExternalAPICall(url, http.MethodPost, statusCode, duration, err)

	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}

	c.logger.Debug("Notifications sent",
		zap.String("path", path),
		zap.Int("count", count),
		zap.Duration("duration", duration),
	)
	return nil
}

// NoOpNotificationClient is a no-op implementation for when notifications are disabled
type NoOpNotificationClient struct{}

func NewNoOpNotificationClient() NotificationClient {
	return &NoOpNotificationClient{}
}

func (c *NoOpNotificationClient) SendNotification(ctx context.Context, event NotificationEvent) error {
	return nil
}

func (c *NoOpNotificationClient) SendBulkNotifications(ctx context.Context, events []NotificationEvent) error {
	return nil
}
