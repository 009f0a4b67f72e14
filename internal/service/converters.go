package service

import (
	"encoding/json"

	"match-service/internal/domain"
	"match-service/internal/dto"
	"match-service/internal/statemachine"
)

func toMatchResponse(m *domain.Match) dto.MatchResponse {
	allowed := statemachine.AllowedTransitions(m.Status)
	transitions := make([]string, len(allowed))
	for i, s := range allowed {
		transitions[i] = string(s)
	}

	available := m.MaxPlayers - m.CurrentPlayers
	if available < 0 {
		available = 0
	}

	var details json.RawMessage
	if len(m.Details) > 0 {
		details = json.RawMessage(m.Details)
	}

	return dto.MatchResponse{
		ID:                 m.ID,
		OwnerID:            m.OwnerID,
		Title:              m.Title,
		Sport:              m.Sport,
		Location:           m.Location,
		ScheduledAt:        m.ScheduledAt,
		MaxPlayers:         m.MaxPlayers,
		CurrentPlayers:     m.CurrentPlayers,
		AvailableSlots:     available,
		Status:             string(m.Status),
		AllowedTransitions: transitions,
		Details:            details,
		PublishedAt:        m.PublishedAt,
		StartedAt:          m.StartedAt,
		FinishedAt:         m.FinishedAt,
		CanceledAt:         m.CanceledAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toParticipationResponse(p *domain.Participation) dto.ParticipationResponse {
	return dto.ParticipationResponse{
		ID:       p.ID,
		MatchID:  p.MatchID,
		UserID:   p.UserID,
		TeamID:   p.TeamID,
		Status:   string(p.Status),
		JoinedAt: p.JoinedAt,
	}
}

func toInvitationResponse(inv *domain.Invitation) *dto.InvitationResponse {
	return &dto.InvitationResponse{
		ID:          inv.ID,
		MatchID:     inv.MatchID,
		InviterID:   inv.InviterID,
		InviteeID:   inv.InviteeID,
		TeamID:      inv.TeamID,
		Status:      string(inv.Status),
		ExpiresAt:   inv.ExpiresAt,
		RespondedAt: inv.RespondedAt,
		CreatedAt:   inv.CreatedAt,
	}
}
