package metrics

// Join outcomes
const (
	JoinResultConfirmed  = "confirmed"
	JoinResultWaitlisted = "waitlisted"
	JoinResultRejected   = "rejected"
)

// IncrementMatchCreated increments match creation counter
func (m *Metrics) IncrementMatchCreated() {
	m.safeExecute("IncrementMatchCreated", func() {
		m.MatchesCreatedTotal.Inc()
	})
}

// RecordTransition counts an applied status change
func (m *Metrics) RecordTransition(from, to string) {
	m.safeExecute("RecordTransition", func() {
		m.MatchTransitionsTotal.WithLabelValues(from, to).Inc()
	})
}

// RecordJoin counts a join attempt by outcome
func (m *Metrics) RecordJoin(result string) {
	m.safeExecute("RecordJoin", func() {
		m.MatchJoinsTotal.WithLabelValues(result).Inc()
	})
}

// IncrementLeave increments the leave counter
func (m *Metrics) IncrementLeave() {
	m.safeExecute("IncrementLeave", func() {
		m.MatchLeavesTotal.Inc()
	})
}

// IncrementPromotion increments the waitlist promotion counter
func (m *Metrics) IncrementPromotion() {
	m.safeExecute("IncrementPromotion", func() {
		m.WaitlistPromotionsTotal.Inc()
	})
}

// IncrementInvitationCreated increments invitation creation counter
func (m *Metrics) IncrementInvitationCreated() {
	m.safeExecute("IncrementInvitationCreated", func() {
		m.InvitationsCreatedTotal.Inc()
	})
}

// RecordInvitationResponse counts an invitation response by outcome
func (m *Metrics) RecordInvitationResponse(result string) {
	m.safeExecute("RecordInvitationResponse", func() {
		m.InvitationResponsesTotal.WithLabelValues(result).Inc()
	})
}

// AddInvitationsExpired adds the number of invitations expired by a sweep
func (m *Metrics) AddInvitationsExpired(count int64) {
	m.safeExecute("AddInvitationsExpired", func() {
		m.InvitationsExpiredTotal.Add(float64(count))
	})
}

// SetMatchesByStatus sets the per-status match gauge
func (m *Metrics) SetMatchesByStatus(status string, count int64) {
	m.safeExecute("SetMatchesByStatus", func() {
		m.MatchesByStatus.WithLabelValues(status).Set(float64(count))
	})
}

// SetPendingInvitations sets pending invitations gauge
func (m *Metrics) SetPendingInvitations(count int64) {
	m.safeExecute("SetPendingInvitations", func() {
		m.PendingInvitations.Set(float64(count))
	})
}

// IncrementTransientRetry counts a retry of operation after a store conflict
func (m *Metrics) IncrementTransientRetry(operation string) {
	m.safeExecute("IncrementTransientRetry", func() {
		m.TransientRetriesTotal.WithLabelValues(operation).Inc()
	})
}

// RecordNotificationDispatch counts an event handed to a sink
func (m *Metrics) RecordNotificationDispatch(notificationType, sink string, err error) {
	m.safeExecute("RecordNotificationDispatch", func() {
		result := "success"
		if err != nil {
			result = "error"
		}
		m.NotificationsDispatchedTotal.WithLabelValues(notificationType, sink, result).Inc()
	})
}

// IncrementNotificationDropped counts an event that never reached a sink
func (m *Metrics) IncrementNotificationDropped(reason string) {
	m.safeExecute("IncrementNotificationDropped", func() {
		m.NotificationsDroppedTotal.WithLabelValues(reason).Inc()
	})
}
