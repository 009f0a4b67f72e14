package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"match-service/internal/metrics"
	"match-service/internal/middleware"
	"match-service/internal/repository"
	"match-service/internal/response"
	"match-service/internal/service"
	"match-service/internal/testutil"
)

const testUserHeader = "X-Test-User"

// fakeAuth stands in for the JWT middleware: the caller id comes from a header
func fakeAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(testUserHeader); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				c.Set(middleware.ContextUserIDKey, id)
			}
		}
		c.Next()
	}
}

func fastRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func newTestEngine(matches service.MatchService, invitations service.InvitationService, m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), fakeAuth())

	mh := NewMatchHandler(matches, fastRetry(), zap.NewNop(), m)
	ih := NewInvitationHandler(invitations, fastRetry(), zap.NewNop(), m)

	r.POST("/matches", mh.CreateMatch)
	r.GET("/matches/:matchId", mh.GetMatch)
	r.GET("/matches/:matchId/participants", mh.ListParticipants)
	r.POST("/matches/:matchId/publish", mh.PublishMatch)
	r.POST("/matches/:matchId/start", mh.StartMatch)
	r.POST("/matches/:matchId/finish", mh.FinishMatch)
	r.POST("/matches/:matchId/cancel", mh.CancelMatch)
	r.POST("/matches/:matchId/join", mh.JoinMatch)
	r.DELETE("/matches/:matchId/leave", mh.LeaveMatch)
	r.POST("/matches/:matchId/invitations", ih.CreateInvitation)
	r.GET("/invitations/me", ih.ListMyInvitations)
	r.POST("/invitations/:invitationId/respond", ih.RespondToInvitation)
	return r
}

// newSQLiteEngine wires real services over an in-memory database
func newSQLiteEngine(t *testing.T) *gin.Engine {
	t.Helper()
	store := repository.NewStore(testutil.NewSQLiteDB(t))
	matches := service.NewMatchService(store, nil, service.MatchOptions{MaxPlayers: 30}, zap.NewNop(), nil)
	invitations := service.NewInvitationService(store, nil, service.InvitationOptions{}, zap.NewNop(), nil)
	return newTestEngine(matches, invitations, nil)
}

type envelope struct {
	Data      json.RawMessage      `json:"data"`
	Error     response.ErrorDetail `json:"error"`
	RequestID string               `json:"requestId"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, user uuid.UUID, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != uuid.Nil {
		req.Header.Set(testUserHeader, user.String())
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	require.NotEmpty(t, env.RequestID)
	return w, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}
