package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

const (
	icsProdID        = "-//CampusConnect//Campus Events//EN"
	icsOrganizerName = "CampusConnect"
	icsOrganizerMail = "noreply@campusconnect.app"
)

// GenerateICS renders events as an RFC 5545 iCalendar document. Returns an
// empty string for an empty event list. Each event gets a stable uid so
// re-imports update rather than duplicate.
func GenerateICS(events []*domain.Event) string {
	if len(events) == 0 {
		return ""
	}

	var sb strings.Builder
	writeLine(&sb, "BEGIN:VCALENDAR")
	writeLine(&sb, "VERSION:2.0")
	writeLine(&sb, "PRODID:"+icsProdID)
	writeLine(&sb, "CALSCALE:GREGORIAN")
	writeLine(&sb, "METHOD:PUBLISH")

	now := time.Now().UTC().Format("20060102T150405Z")
	for _, event := range events {
		writeLine(&sb, "BEGIN:VEVENT")
		writeLine(&sb, fmt.Sprintf("UID:event-%d@campusconnect", event.ID))
		writeLine(&sb, "DTSTAMP:"+now)
		writeLine(&sb, "DTSTART:"+icsTime(event.StartTime))
		writeLine(&sb, "DTEND:"+icsTime(event.EndTime))
		writeLine(&sb, "SUMMARY:"+escapeICS(event.Name))
		writeLine(&sb, "DESCRIPTION:"+escapeICS(event.Description))
		writeLine(&sb, "LOCATION:"+escapeICS(event.Location))
		if event.ExternalURL != nil && *event.ExternalURL != "" {
			writeLine(&sb, "URL:"+*event.ExternalURL)
		}
		writeLine(&sb, "STATUS:CONFIRMED")
		writeLine(&sb, "TRANSP:OPAQUE")
		writeLine(&sb, fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s", icsOrganizerName, icsOrganizerMail))
		writeLine(&sb, "END:VEVENT")
	}

	writeLine(&sb, "END:VCALENDAR")
	return sb.String()
}

func icsTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func writeLine(sb *strings.Builder, line string) {
	sb.WriteString(line)
	sb.WriteString("\r\n")
}

// escapeICS escapes text per RFC 5545 section 3.3.11.
func escapeICS(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(s)
}
