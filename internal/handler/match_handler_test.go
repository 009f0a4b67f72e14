package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-service/internal/dto"
	"match-service/internal/response"
)

func createMatchBody(maxPlayers int) map[string]interface{} {
	return map[string]interface{}{
		"title":      "Wednesday 5-a-side",
		"sport":      "futsal",
		"date":       time.Now().UTC().Add(72 * time.Hour).Format(dto.DateLayout),
		"time":       "19:00",
		"maxPlayers": maxPlayers,
		"publish":    true,
	}
}

func TestMatchHandler_JoinLeaveLifecycle(t *testing.T) {
	r := newSQLiteEngine(t)
	owner, u1, u2, u3 := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	w, env := doRequest(t, r, http.MethodPost, "/matches", owner, createMatchBody(2))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var match dto.MatchResponse
	decodeData(t, env, &match)
	assert.Equal(t, "open", match.Status)
	assert.Equal(t, []string{"full", "canceled"}, match.AllowedTransitions)
	base := "/matches/" + match.ID.String()

	var join dto.JoinMatchResponse
	w, env = doRequest(t, r, http.MethodPost, base+"/join", u1, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeData(t, env, &join)
	assert.False(t, join.Waitlisted)
	assert.Equal(t, 1, join.Match.CurrentPlayers)

	w, env = doRequest(t, r, http.MethodPost, base+"/join", u2, map[string]interface{}{})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &join)
	assert.Equal(t, "full", join.Match.Status)

	w, env = doRequest(t, r, http.MethodPost, base+"/join", u3, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &join)
	assert.True(t, join.Waitlisted)
	assert.Equal(t, "waitlisted", join.Participation.Status)

	w, env = doRequest(t, r, http.MethodPost, base+"/join", u1, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, response.ErrCodeAlreadyJoined, env.Error.Code)

	var leave dto.LeaveMatchResponse
	w, env = doRequest(t, r, http.MethodDelete, base+"/leave", u1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &leave)
	require.NotNil(t, leave.PromotedUserID)
	assert.Equal(t, u3, *leave.PromotedUserID)
	assert.Equal(t, "full", leave.Match.Status)

	w, env = doRequest(t, r, http.MethodDelete, base+"/leave", u1, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.ErrCodeNotParticipant, env.Error.Code)

	var participants []dto.ParticipationResponse
	w, env = doRequest(t, r, http.MethodGet, base+"/participants", u2, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &participants)
	require.Len(t, participants, 2)
	assert.Equal(t, u2, participants[0].UserID)
	assert.Equal(t, u3, participants[1].UserID)
	assert.Equal(t, "confirmed", participants[1].Status)

	w, env = doRequest(t, r, http.MethodPost, base+"/start", u2, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, response.ErrCodeForbidden, env.Error.Code)

	w, env = doRequest(t, r, http.MethodPost, base+"/start", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &match)
	assert.Equal(t, "in_progress", match.Status)
	assert.NotNil(t, match.StartedAt)

	w, _ = doRequest(t, r, http.MethodPost, base+"/finish", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, r, http.MethodPost, base+"/cancel", owner, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, response.ErrCodeInvalidTransition, env.Error.Code)
	assert.Contains(t, env.Error.Details, "allowed: []")

	w, env = doRequest(t, r, http.MethodDelete, base+"/leave", u2, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, response.ErrCodeInvalidState, env.Error.Code)

	var detail dto.MatchDetailResponse
	w, env = doRequest(t, r, http.MethodGet, base, u2, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &detail)
	assert.Equal(t, "finished", detail.Status)
	assert.Len(t, detail.Participants, 2)
}

func TestMatchHandler_DraftPublish(t *testing.T) {
	r := newSQLiteEngine(t)
	owner := uuid.New()

	body := createMatchBody(4)
	body["publish"] = false
	w, env := doRequest(t, r, http.MethodPost, "/matches", owner, body)
	require.Equal(t, http.StatusCreated, w.Code)
	var match dto.MatchResponse
	decodeData(t, env, &match)
	assert.Equal(t, "draft", match.Status)
	base := "/matches/" + match.ID.String()

	// a draft already takes early sign-ups
	var join dto.JoinMatchResponse
	w, env = doRequest(t, r, http.MethodPost, base+"/join", uuid.New(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &join)
	assert.Equal(t, "draft", join.Match.Status)
	assert.Equal(t, 1, join.Match.CurrentPlayers)

	w, env = doRequest(t, r, http.MethodPost, base+"/publish", uuid.New(), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = doRequest(t, r, http.MethodPost, base+"/publish", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &match)
	assert.Equal(t, "open", match.Status)
	assert.NotNil(t, match.PublishedAt)

	w, env = doRequest(t, r, http.MethodPost, base+"/publish", owner, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, response.ErrCodeInvalidTransition, env.Error.Code)
}

func TestMatchHandler_RequestErrors(t *testing.T) {
	r := newSQLiteEngine(t)
	user := uuid.New()

	past := createMatchBody(4)
	past["date"] = time.Now().UTC().Add(-48 * time.Hour).Format(dto.DateLayout)

	badDate := createMatchBody(4)
	badDate["date"] = "next tuesday"

	tooSmall := createMatchBody(1)

	tests := []struct {
		name       string
		method     string
		path       string
		user       uuid.UUID
		body       interface{}
		wantStatus int
		wantCode   string
	}{
		{"실패: 인증 없음", http.MethodPost, "/matches", uuid.Nil, createMatchBody(4), http.StatusUnauthorized, response.ErrCodeUnauthorized},
		{"실패: 과거 일정", http.MethodPost, "/matches", user, past, http.StatusBadRequest, response.ErrCodeValidation},
		{"실패: 날짜 형식", http.MethodPost, "/matches", user, badDate, http.StatusBadRequest, response.ErrCodeValidation},
		{"실패: 정원 2 미만", http.MethodPost, "/matches", user, tooSmall, http.StatusBadRequest, response.ErrCodeValidation},
		{"실패: 잘못된 Match ID", http.MethodGet, "/matches/not-a-uuid", user, nil, http.StatusBadRequest, response.ErrCodeValidation},
		{"실패: 없는 Match", http.MethodGet, "/matches/" + uuid.NewString(), user, nil, http.StatusNotFound, response.ErrCodeNotFound},
		{"실패: 없는 Match 참가", http.MethodPost, "/matches/" + uuid.NewString() + "/join", user, nil, http.StatusNotFound, response.ErrCodeNotFound},
		{"실패: 잘못된 팀 ID", http.MethodPost, "/matches/" + uuid.NewString() + "/join", user, map[string]string{"teamId": "x"}, http.StatusBadRequest, response.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doRequest(t, r, tt.method, tt.path, tt.user, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestMapErrorCodeToHTTPStatus(t *testing.T) {
	tests := map[string]int{
		response.ErrCodeNotFound:            http.StatusNotFound,
		response.ErrCodeNotParticipant:      http.StatusNotFound,
		response.ErrCodeValidation:          http.StatusBadRequest,
		response.ErrCodeUnauthorized:        http.StatusUnauthorized,
		response.ErrCodeForbidden:           http.StatusForbidden,
		response.ErrCodeInvalidState:        http.StatusConflict,
		response.ErrCodeMatchFull:           http.StatusConflict,
		response.ErrCodeAlreadyJoined:       http.StatusConflict,
		response.ErrCodeAlreadyParticipant:  http.StatusConflict,
		response.ErrCodeDuplicateInvitation: http.StatusConflict,
		response.ErrCodeAlreadyResolved:     http.StatusConflict,
		response.ErrCodeInvalidTransition:   http.StatusUnprocessableEntity,
		response.ErrCodeInvitationExpired:   http.StatusGone,
		response.ErrCodeTransient:           http.StatusServiceUnavailable,
		response.ErrCodeInternal:            http.StatusInternalServerError,
		"SOMETHING_ELSE":                    http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, mapErrorCodeToHTTPStatus(code), code)
	}
}
