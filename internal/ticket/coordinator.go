// Package ticket runs the lifecycle of order tickets: private channels
// opened per order, closed and reopened under confirmation, and finally
// deleted. State only advances after the chat platform effect succeeds.
package ticket

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/logger"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/metrics"
)

const (
	actionClose      = "close"
	actionReopen     = "reopen"
	actionDelete     = "delete"
	actionTranscript = "transcript"
)

// Service coordinates ticket state transitions against the chat platform.
type Service interface {
	// Open creates a private ticket channel for owner and attaches order.
	Open(ctx context.Context, owner domain.Actor, order *domain.Order) (*domain.Ticket, error)

	// RequestClose asks for close confirmation and returns a single-use
	// token. Owner or staff only.
	RequestClose(ctx context.Context, ticketID string, actor domain.Actor) (string, error)

	// ConfirmClose resolves an outstanding close confirmation. Declining
	// returns the ticket to open with no side effects.
	ConfirmClose(ctx context.Context, token string, accept bool) (*domain.Ticket, error)

	// Reopen restores the owner's access to a closed ticket. Staff only.
	Reopen(ctx context.Context, ticketID string, actor domain.Actor) (*domain.Ticket, error)

	// RequestDelete asks for delete confirmation on a closed ticket and
	// returns a single-use token. Staff only.
	RequestDelete(ctx context.Context, ticketID string, actor domain.Actor) (string, error)

	// ConfirmDelete resolves an outstanding delete confirmation.
	// Accepting releases the channel; the ticket is then terminal.
	ConfirmDelete(ctx context.Context, token string, accept bool) (*domain.Ticket, error)

	// SendTranscript exports the channel history and delivers it to the
	// requester as a direct message. Ticket state is never changed.
	SendTranscript(ctx context.Context, ticketID string, requester domain.Actor) error

	// Get returns a snapshot of the ticket, if known.
	Get(ticketID string) (*domain.Ticket, bool)

	// ByChannel returns a snapshot of the ticket owning channelID.
	ByChannel(channelID string) (*domain.Ticket, bool)
}

type service struct {
	mu             sync.Mutex
	platform       Platform
	prefix         string
	confirmTimeout time.Duration
	tickets        map[string]*domain.Ticket
	byChannel      map[string]string
	usedNames      map[string]string
	confirmations  map[string]*confirmation
	pendingToken   map[string]string
	now            func() time.Time
}

// NewService creates a ticket coordinator over platform. prefix is the
// channel name prefix for open tickets; confirmTimeout bounds how long a
// close or delete confirmation stays answerable.
func NewService(platform Platform, prefix string, confirmTimeout time.Duration) Service {
	return &service{
		platform:       platform,
		prefix:         prefix,
		confirmTimeout: confirmTimeout,
		tickets:        make(map[string]*domain.Ticket),
		byChannel:      make(map[string]string),
		usedNames:      make(map[string]string),
		confirmations:  make(map[string]*confirmation),
		pendingToken:   make(map[string]string),
		now:            time.Now,
	}
}

func (s *service) Open(ctx context.Context, owner domain.Actor, order *domain.Order) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	name := s.claimNameLocked(s.prefix, owner.Username, id)

	channelID, err := s.platform.CreatePrivateChannel(ctx, owner, name)
	if err != nil {
		s.releaseNameLocked(name)
		metrics.PlatformErrors.WithLabelValues("create_channel").Inc()
		return nil, fmt.Errorf("%w: create channel: %v", domain.ErrExternalEffect, err)
	}

	t := &domain.Ticket{
		ID:        id,
		Owner:     owner,
		ChannelID: channelID,
		Name:      name,
		State:     domain.TicketOpen,
		Order:     order,
		CreatedAt: s.now().UTC(),
	}
	s.tickets[id] = t
	s.byChannel[channelID] = id

	metrics.TicketsOpened.Inc()
	logger.FromContext(ctx).Info("ticket opened",
		"ticket_id", id, "owner", owner.Username, "channel", name)
	return snapshot(t), nil
}

func (s *service) RequestClose(ctx context.Context, ticketID string, actor domain.Actor) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[ticketID]
	if !ok {
		return "", domain.ErrTicketNotFound
	}
	if !actor.Staff && actor.ID != t.Owner.ID {
		s.denyLocked(ctx, actionClose, t, actor)
		return "", domain.ErrUnauthorized
	}
	if t.State == domain.TicketPendingClose {
		s.expirePendingLocked(t)
	}
	if t.State != domain.TicketOpen {
		return "", fmt.Errorf("%w: cannot close a %s ticket", domain.ErrInvalidTransition, t.State)
	}

	t.State = domain.TicketPendingClose
	return s.issueConfirmationLocked(t, actionClose), nil
}

func (s *service) ConfirmClose(ctx context.Context, token string, accept bool) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.takeConfirmationLocked(token, actionClose, domain.TicketOpen)
	if err != nil {
		return nil, err
	}
	if !accept {
		t.State = domain.TicketOpen
		return snapshot(t), nil
	}

	if err := s.platform.RevokeAccess(ctx, t.ChannelID, t.Owner.ID); err != nil {
		t.State = domain.TicketOpen
		metrics.PlatformErrors.WithLabelValues("revoke_access").Inc()
		return nil, fmt.Errorf("%w: revoke access: %v", domain.ErrExternalEffect, err)
	}
	s.renameLocked(ctx, t, "closed")

	t.State = domain.TicketClosed
	metrics.TicketsClosed.Inc()
	logger.FromContext(ctx).Info("ticket closed", "ticket_id", t.ID, "owner", t.Owner.Username)
	return snapshot(t), nil
}

func (s *service) Reopen(ctx context.Context, ticketID string, actor domain.Actor) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[ticketID]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	if !actor.Staff {
		s.denyLocked(ctx, actionReopen, t, actor)
		return nil, domain.ErrUnauthorized
	}
	if t.State != domain.TicketClosed {
		return nil, fmt.Errorf("%w: cannot reopen a %s ticket", domain.ErrInvalidTransition, t.State)
	}

	if err := s.platform.GrantAccess(ctx, t.ChannelID, t.Owner.ID); err != nil {
		metrics.PlatformErrors.WithLabelValues("grant_access").Inc()
		return nil, fmt.Errorf("%w: grant access: %v", domain.ErrExternalEffect, err)
	}
	s.renameLocked(ctx, t, s.prefix)

	t.State = domain.TicketOpen
	metrics.TicketsReopened.Inc()
	logger.FromContext(ctx).Info("ticket reopened", "ticket_id", t.ID, "staff", actor.Username)
	return snapshot(t), nil
}

func (s *service) RequestDelete(ctx context.Context, ticketID string, actor domain.Actor) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[ticketID]
	if !ok {
		return "", domain.ErrTicketNotFound
	}
	if !actor.Staff {
		s.denyLocked(ctx, actionDelete, t, actor)
		return "", domain.ErrUnauthorized
	}
	if t.State == domain.TicketPendingDelete {
		s.expirePendingLocked(t)
	}
	if t.State != domain.TicketClosed {
		return "", fmt.Errorf("%w: cannot delete a %s ticket", domain.ErrInvalidTransition, t.State)
	}

	t.State = domain.TicketPendingDelete
	return s.issueConfirmationLocked(t, actionDelete), nil
}

func (s *service) ConfirmDelete(ctx context.Context, token string, accept bool) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.takeConfirmationLocked(token, actionDelete, domain.TicketClosed)
	if err != nil {
		return nil, err
	}
	if !accept {
		t.State = domain.TicketClosed
		return snapshot(t), nil
	}

	if err := s.platform.DeleteChannel(ctx, t.ChannelID); err != nil {
		t.State = domain.TicketClosed
		metrics.PlatformErrors.WithLabelValues("delete_channel").Inc()
		return nil, fmt.Errorf("%w: delete channel: %v", domain.ErrExternalEffect, err)
	}

	delete(s.byChannel, t.ChannelID)
	s.releaseNameLocked(t.Name)
	t.State = domain.TicketDeleted
	metrics.TicketsDeleted.Inc()
	logger.FromContext(ctx).Info("ticket deleted", "ticket_id", t.ID, "owner", t.Owner.Username)
	return snapshot(t), nil
}

func (s *service) SendTranscript(ctx context.Context, ticketID string, requester domain.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[ticketID]
	if !ok {
		return domain.ErrTicketNotFound
	}
	if t.State == domain.TicketDeleted {
		return fmt.Errorf("%w: ticket is deleted", domain.ErrInvalidTransition)
	}
	closed := t.State == domain.TicketClosed || t.State == domain.TicketPendingDelete
	if closed && !requester.Staff {
		s.denyLocked(ctx, actionTranscript, t, requester)
		return domain.ErrUnauthorized
	}
	if !closed && !requester.Staff && requester.ID != t.Owner.ID {
		s.denyLocked(ctx, actionTranscript, t, requester)
		return domain.ErrUnauthorized
	}

	history, err := s.platform.FetchHistory(ctx, t.ChannelID)
	if err != nil {
		metrics.PlatformErrors.WithLabelValues("fetch_history").Inc()
		return fmt.Errorf("%w: fetch history: %v", domain.ErrExternalEffect, err)
	}
	content := RenderTranscript(t, history)
	if err := s.platform.SendDirectMessage(ctx, requester.ID, content); err != nil {
		metrics.PlatformErrors.WithLabelValues("send_dm").Inc()
		return fmt.Errorf("%w: send transcript: %v", domain.ErrExternalEffect, err)
	}

	metrics.TranscriptsDelivered.Inc()
	logger.FromContext(ctx).Info("transcript delivered",
		"ticket_id", t.ID, "requester", requester.Username)
	return nil
}

func (s *service) Get(ticketID string) (*domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[ticketID]
	if !ok {
		return nil, false
	}
	return snapshot(t), true
}

func (s *service) ByChannel(channelID string) (*domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byChannel[channelID]
	if !ok {
		return nil, false
	}
	return snapshot(s.tickets[id]), true
}

// renameLocked moves the ticket's channel to a fresh deduplicated name
// under prefix. Rename failures are logged and do not block the
// transition; access control is the effect that matters.
func (s *service) renameLocked(ctx context.Context, t *domain.Ticket, prefix string) {
	s.releaseNameLocked(t.Name)
	name := s.claimNameLocked(prefix, t.Owner.Username, t.ID)
	if err := s.platform.RenameChannel(ctx, t.ChannelID, name); err != nil {
		metrics.PlatformErrors.WithLabelValues("rename_channel").Inc()
		logger.FromContext(ctx).Warn("channel rename failed",
			"ticket_id", t.ID, "name", name, "error", err)
	}
	t.Name = name
}

func (s *service) denyLocked(ctx context.Context, action string, t *domain.Ticket, actor domain.Actor) {
	metrics.UnauthorizedAttempts.WithLabelValues(action).Inc()
	logger.FromContext(ctx).Warn("unauthorized ticket action",
		"action", action, "ticket_id", t.ID, "actor", actor.Username)
}

func snapshot(t *domain.Ticket) *domain.Ticket {
	copied := *t
	return &copied
}
