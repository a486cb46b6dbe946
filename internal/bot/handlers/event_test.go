package handlers_test

import (
	"testing"

	"github.com/go-telegram/bot/models"

	"github.com/edgard/calcbot/internal/bot/handlers"
)

const botUsername = "CalcBot"

func TestClassify(t *testing.T) {
	t.Parallel()

	sender := &models.User{ID: 42, Username: "someone"}

	testCases := []struct {
		name            string
		update          *models.Update
		expectedKind    handlers.EventKind
		expectedCommand string
		expectedArgs    string
		expectedPayload string
	}{
		{
			name:         "nil update",
			update:       nil,
			expectedKind: handlers.EventUnrecognized,
		},
		{
			name:         "update without message",
			update:       &models.Update{ID: 1},
			expectedKind: handlers.EventUnrecognized,
		},
		{
			name: "start command",
			update: &models.Update{Message: &models.Message{
				Text: "/start", From: sender, Chat: models.Chat{ID: 7},
			}},
			expectedKind:    handlers.EventCommand,
			expectedCommand: "start",
		},
		{
			name: "command name is lower-cased",
			update: &models.Update{Message: &models.Message{
				Text: "/HELP", From: sender, Chat: models.Chat{ID: 7},
			}},
			expectedKind:    handlers.EventCommand,
			expectedCommand: "help",
		},
		{
			name: "feedback command with trailing text",
			update: &models.Update{Message: &models.Message{
				Text: "/feedback Hello admin", From: sender, Chat: models.Chat{ID: 7},
			}},
			expectedKind:    handlers.EventCommand,
			expectedCommand: "feedback",
			expectedArgs:    "Hello admin",
		},
		{
			name: "command addressed to this bot",
			update: &models.Update{Message: &models.Message{
				Text: "/calc@CalcBot", From: sender, Chat: models.Chat{ID: 7},
			}},
			expectedKind:    handlers.EventCommand,
			expectedCommand: "calc",
		},
		{
			name: "command addressed to another bot",
			update: &models.Update{Message: &models.Message{
				Text: "/calc@OtherBot", From: sender, Chat: models.Chat{ID: 7},
			}},
			expectedKind: handlers.EventUnrecognized,
		},
		{
			name: "web app payload",
			update: &models.Update{Message: &models.Message{
				From: sender, Chat: models.Chat{ID: 7},
				WebAppData: &models.WebAppData{Data: "1+1=2\n2+2=4"},
			}},
			expectedKind:    handlers.EventWebAppData,
			expectedPayload: "1+1=2\n2+2=4",
		},
		{
			name: "web app session opened",
			update: &models.Update{Message: &models.Message{
				From: sender, Chat: models.Chat{ID: 7},
				ConnectedWebsite: "https://calculator.example.com",
			}},
			expectedKind: handlers.EventWebAppOpened,
		},
		{
			name: "plain text message",
			update: &models.Update{Message: &models.Message{
				Text: "hello there", From: sender, Chat: models.Chat{ID: 7},
			}},
			expectedKind: handlers.EventUnrecognized,
		},
		{
			name: "bare slash",
			update: &models.Update{Message: &models.Message{
				Text: "/", From: sender, Chat: models.Chat{ID: 7},
			}},
			expectedKind: handlers.EventUnrecognized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ev := handlers.Classify(tc.update, botUsername)
			if ev.Kind != tc.expectedKind {
				t.Fatalf("Kind = %v, want %v", ev.Kind, tc.expectedKind)
			}
			if ev.Command != tc.expectedCommand {
				t.Errorf("Command = %q, want %q", ev.Command, tc.expectedCommand)
			}
			if ev.Args != tc.expectedArgs {
				t.Errorf("Args = %q, want %q", ev.Args, tc.expectedArgs)
			}
			if ev.Payload != tc.expectedPayload {
				t.Errorf("Payload = %q, want %q", ev.Payload, tc.expectedPayload)
			}
		})
	}
}

func TestClassifyCarriesSenderAndChat(t *testing.T) {
	t.Parallel()

	sender := &models.User{ID: 99, Username: "u1"}
	update := &models.Update{Message: &models.Message{
		Text: "/start", From: sender, Chat: models.Chat{ID: 1234},
	}}

	ev := handlers.Classify(update, botUsername)
	if ev.ChatID != 1234 {
		t.Errorf("ChatID = %d, want 1234", ev.ChatID)
	}
	if ev.Sender == nil || ev.Sender.ID != 99 {
		t.Errorf("Sender = %+v, want user 99", ev.Sender)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	t.Parallel()

	update := &models.Update{Message: &models.Message{
		Text: "/feedback some text", From: &models.User{ID: 1}, Chat: models.Chat{ID: 2},
	}}

	first := handlers.Classify(update, botUsername)
	second := handlers.Classify(update, botUsername)

	if first.Kind != second.Kind || first.Command != second.Command || first.Args != second.Args {
		t.Errorf("Classify is not deterministic: %+v vs %+v", first, second)
	}
}
