package ticket

import (
	"time"

	"github.com/google/uuid"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
)

// confirmation is a single-use answer token for a pending close or
// delete. It can be consumed once before expiry; anything else gets
// ErrConfirmationExpired.
type confirmation struct {
	ticketID string
	action   string
	expires  time.Time
}

// issueConfirmationLocked replaces the ticket's outstanding token, if
// any, with a fresh one.
func (s *service) issueConfirmationLocked(t *domain.Ticket, action string) string {
	if old, ok := s.pendingToken[t.ID]; ok {
		delete(s.confirmations, old)
	}
	token := uuid.NewString()
	s.confirmations[token] = &confirmation{
		ticketID: t.ID,
		action:   action,
		expires:  s.now().Add(s.confirmTimeout),
	}
	s.pendingToken[t.ID] = token
	return token
}

// takeConfirmationLocked consumes token and returns the ticket it
// guards. An unknown, already consumed, or expired token fails with
// ErrConfirmationExpired; expiry also reverts the ticket to revertTo so
// a fresh request can be made.
func (s *service) takeConfirmationLocked(token, action string, revertTo domain.TicketState) (*domain.Ticket, error) {
	c, ok := s.confirmations[token]
	if !ok || c.action != action {
		return nil, domain.ErrConfirmationExpired
	}
	delete(s.confirmations, token)
	t := s.tickets[c.ticketID]
	if s.pendingToken[c.ticketID] == token {
		delete(s.pendingToken, c.ticketID)
	}
	if s.now().After(c.expires) {
		if t != nil {
			t.State = revertTo
		}
		return nil, domain.ErrConfirmationExpired
	}
	if t == nil {
		return nil, domain.ErrTicketNotFound
	}
	return t, nil
}

// expirePendingLocked clears a timed-out confirmation so the ticket can
// accept a fresh request. A still-live token keeps the ticket pending.
func (s *service) expirePendingLocked(t *domain.Ticket) {
	token, ok := s.pendingToken[t.ID]
	if !ok {
		switch t.State {
		case domain.TicketPendingClose:
			t.State = domain.TicketOpen
		case domain.TicketPendingDelete:
			t.State = domain.TicketClosed
		}
		return
	}
	c := s.confirmations[token]
	if c == nil || s.now().After(c.expires) {
		delete(s.confirmations, token)
		delete(s.pendingToken, t.ID)
		switch t.State {
		case domain.TicketPendingClose:
			t.State = domain.TicketOpen
		case domain.TicketPendingDelete:
			t.State = domain.TicketClosed
		}
	}
}
