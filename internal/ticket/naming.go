package ticket

import (
	"fmt"
	"strings"
)

// sanitizeChannelName lowercases the owner's name and keeps only the
// characters the platform accepts in channel names.
func sanitizeChannelName(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "user"
	}
	return out
}

// claimNameLocked reserves a channel name of the form
// "<prefix>-<owner>", appending "-N" when the base name is already held
// by another ticket.
func (s *service) claimNameLocked(prefix, owner, ticketID string) string {
	base := prefix + "-" + sanitizeChannelName(owner)
	name := base
	for n := 1; ; n++ {
		holder, taken := s.usedNames[name]
		if !taken || holder == ticketID {
			break
		}
		name = fmt.Sprintf("%s-%d", base, n)
	}
	s.usedNames[name] = ticketID
	return name
}

func (s *service) releaseNameLocked(name string) {
	delete(s.usedNames, name)
}
