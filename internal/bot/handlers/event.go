// Package handlers contains the update classifier, the table-driven event
// dispatcher, and the per-event handlers for the calculator bot.
package handlers

import (
	"strings"

	"github.com/go-telegram/bot/models"
)

// EventKind identifies the variant of a classified inbound update.
type EventKind int

// The closed set of event variants. Classification is total: every update
// maps to exactly one of these, EventUnrecognized being the catch-all.
const (
	EventUnrecognized EventKind = iota
	EventCommand
	EventWebAppData
	EventWebAppOpened
)

// String returns the variant name, used in logs.
func (k EventKind) String() string {
	switch k {
	case EventCommand:
		return "command"
	case EventWebAppData:
		return "web_app_data"
	case EventWebAppOpened:
		return "web_app_opened"
	default:
		return "unrecognized"
	}
}

// Event is the classified form of an inbound Telegram update. Only the fields
// relevant to the variant are populated.
type Event struct {
	Kind EventKind

	// Command name (without slash, lower-cased) and its trailing text.
	Command string
	Args    string

	// Raw history payload for EventWebAppData.
	Payload string

	ChatID int64
	Sender *models.User
}

// Classify maps a Telegram update onto the Event union. It is pure and total:
// any update that is not a command, a Web App payload, or a Web App session
// notification comes back as EventUnrecognized. botUsername disambiguates
// /cmd@SomeBot commands addressed to other bots.
func Classify(update *models.Update, botUsername string) Event {
	if update == nil || update.Message == nil {
		return Event{Kind: EventUnrecognized}
	}

	msg := update.Message
	ev := Event{
		ChatID: msg.Chat.ID,
		Sender: msg.From,
	}

	switch {
	case msg.WebAppData != nil:
		ev.Kind = EventWebAppData
		ev.Payload = msg.WebAppData.Data
		return ev

	case msg.ConnectedWebsite != "":
		ev.Kind = EventWebAppOpened
		return ev

	case strings.HasPrefix(msg.Text, "/"):
		name, args := splitCommand(msg.Text)
		if name == "" || !commandAddressedTo(msg.Text, botUsername) {
			return Event{Kind: EventUnrecognized}
		}
		ev.Kind = EventCommand
		ev.Command = name
		ev.Args = args
		return ev
	}

	return Event{Kind: EventUnrecognized}
}

// splitCommand splits "/name@bot trailing text" into the lower-cased command
// name and the trimmed trailing text.
func splitCommand(text string) (name, args string) {
	token := text[1:]
	if idx := strings.IndexAny(token, " \t\n"); idx != -1 {
		args = strings.TrimSpace(token[idx+1:])
		token = token[:idx]
	}
	if idx := strings.Index(token, "@"); idx != -1 {
		token = token[:idx]
	}
	return strings.ToLower(token), args
}

// commandAddressedTo reports whether the command's optional @mention targets
// this bot. Commands without a mention are always addressed to us.
func commandAddressedTo(text, botUsername string) bool {
	token := text[1:]
	if idx := strings.IndexAny(token, " \t\n"); idx != -1 {
		token = token[:idx]
	}
	idx := strings.Index(token, "@")
	if idx == -1 {
		return true
	}
	mention := token[idx+1:]
	return botUsername != "" && strings.EqualFold(mention, botUsername)
}
