package ticket

import (
	"context"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
)

// Platform is the chat platform the coordinator drives. Implementations
// perform the actual channel and permission work; the coordinator only
// reacts to success or failure.
type Platform interface {
	// CreatePrivateChannel creates a channel visible to owner and staff
	// and returns its ID.
	CreatePrivateChannel(ctx context.Context, owner domain.Actor, name string) (string, error)

	// GrantAccess lets userID view and send in the channel.
	GrantAccess(ctx context.Context, channelID, userID string) error

	// RevokeAccess removes userID's view and send permissions.
	RevokeAccess(ctx context.Context, channelID, userID string) error

	// RenameChannel sets the channel's display name.
	RenameChannel(ctx context.Context, channelID, name string) error

	// DeleteChannel removes the channel and its history.
	DeleteChannel(ctx context.Context, channelID string) error

	// FetchHistory returns the channel's messages oldest first.
	FetchHistory(ctx context.Context, channelID string) ([]domain.TranscriptMessage, error)

	// SendDirectMessage delivers content to userID privately.
	SendDirectMessage(ctx context.Context, userID, content string) error
}
