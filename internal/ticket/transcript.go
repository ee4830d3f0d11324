package ticket

import (
	"fmt"
	"strings"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
)

const transcriptTimeLayout = "2006-01-02 15:04:05"

// RenderTranscript formats a channel history as a plain text export,
// one "[timestamp] author: content" line per message under a header.
func RenderTranscript(t *domain.Ticket, history []domain.TranscriptMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transcript of #%s\n", t.Name)
	fmt.Fprintf(&b, "Opened by %s on %s\n\n", t.Owner.Username, t.CreatedAt.Format(transcriptTimeLayout))
	for _, msg := range history {
		fmt.Fprintf(&b, "[%s] %s: %s\n", msg.Timestamp.Format(transcriptTimeLayout), msg.Author, msg.Content)
	}
	if len(history) == 0 {
		b.WriteString("(no messages)\n")
	}
	return b.String()
}
