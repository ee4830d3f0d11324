package discord

// Friendly message constants for Discord responses
const (
	MsgBadNumber      = "⚠️ **Invalid Number**\nThat doesn't look like a number. Please try again."
	MsgBadXPRange     = "⚠️ **Invalid Range**\n'To XP' must be larger than 'From XP'."
	MsgNoPricingData  = "❓ **No Pricing Data**\nWe don't have prices for that yet. Open a quote ticket instead."
	MsgEmptySelection = "📜 **Nothing Selected**\nSelect at least one item first."
	MsgSessionExpired = "⏳ **Session Expired**\nThat panel timed out. Please start again."
	MsgNotAllowed     = "🔒 **Not Allowed**\nYou don't have permission to do that."
	MsgConfirmExpired = "⏳ **Confirmation Expired**\nThe prompt timed out or was already used. Please try again."
	MsgDMFailed       = "📪 **Couldn't DM You**\nPlease enable direct messages from server members and try again."
	MsgGenericError   = "❌ Something went wrong."
)
