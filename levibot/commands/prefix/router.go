// Package prefix implements the "!" chat commands of the card game.
package prefix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/game"
	"github.com/ellavondegurechaff/levibot/levibot/handlers"
	"github.com/ellavondegurechaff/levibot/levibot/messenger"
	"github.com/ellavondegurechaff/levibot/levibot/metrics"
	"github.com/ellavondegurechaff/levibot/levibot/services"
	"github.com/ellavondegurechaff/levibot/levibot/spawn"
)

const genericFailure = "Tch. Something went wrong. How disappointing."

var leviExpressions = []string{"Tch.", "Hmph.", "Listen well.", "Oi."}

type Deps struct {
	Messenger messenger.Messenger
	Spawner   Spawner
	Throttle  *spawn.Throttle
	Battles   Battles
	Trades    Trades
	Decks     Decks
	Economy   Economy
	Accounts  Accounts
	Catalog   Catalog
	Renderer  Renderer
	// Artwork is optional; spawns are announced without an image when nil.
	Artwork services.ArtworkSource
	Metrics *metrics.Metrics
	Rand    game.Rand

	Prefix  string
	OwnerID string
	Version string
}

type Router struct {
	Deps
	commands map[string]handlers.PrefixHandler
	started  time.Time
}

func New(d Deps) *Router {
	if d.Prefix == "" {
		d.Prefix = config.DefaultPrefix
	}
	if d.Rand == nil {
		d.Rand = game.NewTimeSeededRand()
	}
	if d.Throttle == nil {
		d.Throttle = spawn.NewThrottle(config.ForceSpawnLimit, config.ForceSpawnPeriod)
	}

	r := &Router{Deps: d, commands: make(map[string]handlers.PrefixHandler), started: time.Now()}

	r.register("spawn", r.spawnCmd)
	r.register("catch", r.catchCmd)

	r.register("battle", r.battleCmd)
	r.register("accept", r.acceptCmd)
	r.register("decline", r.declineCmd)

	r.register("trade", r.tradeCmd)
	r.register("offer", r.offerCmd)
	r.register("offercoin", r.offerCoinCmd)
	r.register("viewtrade", r.viewTradeCmd)

	r.register("deck", r.deckCmd)

	r.register("shop", r.shopCmd)
	r.register("daily", r.dailyCmd)
	r.register("train", r.trainCmd)

	r.register("cards", r.cardsCmd)
	r.register("card", r.cardCmd)
	r.register("balance", r.balanceCmd)
	r.register("stats", r.statsCmd)
	r.register("leaderboard", r.leaderboardCmd)
	r.register("help", r.helpCmd)
	r.register("block", r.blockCmd(true))
	r.register("unblock", r.blockCmd(false))
	return r
}

// register wraps h so that denials become replies instead of failures.
func (r *Router) register(name string, h handlers.PrefixHandler) {
	r.commands[name] = handlers.WrapPrefixWithLogging(name, func(ctx context.Context, e *handlers.PrefixEvent) error {
		err := h(ctx, e)
		if text, ok := denial(err); ok {
			return r.say(ctx, e.Message, text)
		}
		return err
	})
}

// Handle is the messenger callback. Each message is processed on its own
// goroutine so the gateway is never blocked.
func (r *Router) Handle(msg messenger.IncomingMessage) {
	go r.HandleContext(context.Background(), msg)
}

// HandleContext blocks until the message has been fully processed.
func (r *Router) HandleContext(ctx context.Context, msg messenger.IncomingMessage) {
	r.Metrics.IncMessagesReceived()

	if msg.SenderID != r.OwnerID {
		blocked, err := r.Accounts.Blocked(ctx, msg.SenderID)
		if err != nil {
			slog.Warn("Failed to check blocked status",
				slog.String("type", "db"),
				slog.String("user_id", msg.SenderID),
				slog.Any("error", err))
		} else if blocked {
			return
		}
	}

	if msg.IsGroup {
		r.rollSpawn(ctx, msg.RoomID)
	}

	name, args, ok := r.parse(msg.Text)
	if !ok {
		return
	}
	h, ok := r.commands[name]
	if !ok {
		return
	}

	if _, err := r.Accounts.Touch(ctx, msg.SenderID, msg.SenderName, name); err != nil {
		slog.Warn("Failed to record command use",
			slog.String("type", "db"),
			slog.String("name", name),
			slog.String("user_id", msg.SenderID),
			slog.Any("error", err))
	}

	if err := h(ctx, &handlers.PrefixEvent{Message: msg, Name: name, Args: args}); err != nil {
		_ = r.send(ctx, messenger.Room(msg.RoomID), messenger.Content{Text: genericFailure})
	}
}

func (r *Router) parse(text string) (string, []string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, r.Prefix) {
		return "", nil, false
	}
	fields := strings.Fields(text[len(r.Prefix):])
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// argText joins the arguments into one free-text value, capped in length.
func argText(args []string) string {
	s := strings.Join(args, " ")
	if runes := []rune(s); len(runes) > config.MaxCommandArgument {
		s = string(runes[:config.MaxCommandArgument])
	}
	return s
}

func (r *Router) flavor(text string) string {
	if r.Rand.Float64() >= config.LeviFlavorChance || strings.HasPrefix(text, leviExpressions[0]) {
		return text
	}
	return leviExpressions[r.Rand.Intn(len(leviExpressions))] + " " + text
}

// say replies in the room the message came from.
func (r *Router) say(ctx context.Context, msg messenger.IncomingMessage, text string, mentions ...string) error {
	return r.send(ctx, messenger.Room(msg.RoomID), messenger.Content{Text: r.flavor(text), Mentions: mentions})
}

func (r *Router) send(ctx context.Context, target messenger.Target, content messenger.Content) error {
	if err := r.Messenger.SendMessage(ctx, target, content); err != nil {
		slog.Error("Failed to deliver reply",
			slog.String("type", "sys"),
			slog.String("target", target.ID),
			slog.Any("error", err))
		return err
	}
	return nil
}

// usageError is a denial carrying the correct command syntax.
type usageError string

func (u usageError) Error() string {
	return "usage: " + string(u)
}

func (r *Router) usage(format string, args ...any) error {
	return usageError(r.Prefix + fmt.Sprintf(format, args...))
}

// formatWait renders a remaining duration the way users read it: "Xh Ym" or
// "Xm Ys", seconds rounded up.
func formatWait(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 0 {
		secs = 0
	}
	if secs >= 3600 {
		return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
	}
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}

func (r *Router) isOwner(userID string) bool {
	return r.OwnerID != "" && userID == r.OwnerID
}

var errGroupOnly = errors.New("this command can only be used in group chats")
