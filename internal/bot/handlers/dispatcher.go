package handlers

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandlerFunc processes one classified event.
type HandlerFunc func(ctx context.Context, b MessageSender, ev Event)

// Middleware wraps a HandlerFunc.
type Middleware func(HandlerFunc) HandlerFunc

// Dispatcher routes classified events to their handlers through a fixed table.
// It is registered as the bot's default handler so that every update flows
// through Classify exactly once. The dispatcher holds no per-event state.
type Dispatcher struct {
	deps     HandlerDeps
	commands map[string]HandlerFunc
	byKind   map[EventKind]HandlerFunc
}

// NewDispatcher builds the routing table. The command set and the per-kind
// handlers are closed here; there is no runtime registration.
func NewDispatcher(deps HandlerDeps) *Dispatcher {
	return &Dispatcher{
		deps: deps,
		commands: map[string]HandlerFunc{
			"start":    NewStartHandler(deps),
			"help":     NewHelpHandler(deps),
			"calc":     NewCalcHandler(deps),
			"feedback": NewFeedbackHandler(deps),
			"reports":  applyMiddleware(NewReportsHandler(deps), AdminOnly(deps)),
		},
		byKind: map[EventKind]HandlerFunc{
			EventWebAppData:   NewWebAppDataHandler(deps),
			EventWebAppOpened: NewWebAppOpenedHandler(deps),
		},
	}
}

// Handle classifies the update and dispatches it. Exported with the
// go-telegram/bot handler signature so it can be wired as the default handler.
func (d *Dispatcher) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	var botUsername string
	if d.deps.Config.Telegram.BotInfo != nil {
		botUsername = d.deps.Config.Telegram.BotInfo.Username
	}
	d.Dispatch(ctx, b, Classify(update, botUsername))
}

// Dispatch routes a classified event to exactly one handler. Unrecognized
// events and unknown commands are dropped without a reply; that is a valid
// outcome, not a failure.
func (d *Dispatcher) Dispatch(ctx context.Context, b MessageSender, ev Event) {
	switch ev.Kind {
	case EventCommand:
		handler, ok := d.commands[ev.Command]
		if !ok {
			d.deps.Logger.DebugContext(ctx, "Dropping unknown command", "command", ev.Command, "chat_id", ev.ChatID)
			return
		}
		handler(ctx, b, ev)
	case EventWebAppData, EventWebAppOpened:
		d.byKind[ev.Kind](ctx, b, ev)
	case EventUnrecognized:
		// No action by contract.
	}
}

// applyMiddleware wraps a handler with middleware, first one outermost.
func applyMiddleware(handler HandlerFunc, mw ...Middleware) HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return handler
}
