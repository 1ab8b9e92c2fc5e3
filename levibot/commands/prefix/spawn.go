package prefix

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
	"github.com/ellavondegurechaff/levibot/levibot/handlers"
	"github.com/ellavondegurechaff/levibot/levibot/messenger"
	"github.com/ellavondegurechaff/levibot/levibot/services"
	"github.com/ellavondegurechaff/levibot/levibot/spawn"
)

func (r *Router) rollSpawn(ctx context.Context, roomID string) {
	spawned, err := r.Spawner.OnMessage(ctx, roomID)
	if err != nil {
		slog.Error("Spawn roll failed",
			slog.String("type", "sys"),
			slog.String("room_id", roomID),
			slog.Any("error", err))
		return
	}
	if spawned != nil {
		r.announceSpawn(ctx, roomID, spawned)
	}
}

func (r *Router) spawnCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	if !msg.IsGroup {
		return errGroupOnly
	}

	if len(e.Args) > 0 {
		if !r.isOwner(msg.SenderID) {
			return r.say(ctx, msg, fmt.Sprintf("Only the bot owner can spawn specific cards. Use %sspawn without arguments for a random card.", r.Prefix))
		}
		card, err := r.Catalog.FindByName(ctx, argText(e.Args))
		if err != nil {
			return err
		}
		spawned, err := r.Spawner.Force(ctx, msg.RoomID, card)
		if err != nil {
			return err
		}
		r.announceSpawn(ctx, msg.RoomID, spawned)
		return r.send(ctx, messenger.Direct(msg.SenderID), messenger.Content{
			Text: fmt.Sprintf("Spawned %s (%s) in the group.", card.Name, card.Rarity),
		})
	}

	ok, left, wait := r.Throttle.Allow(msg.SenderID)
	if !ok {
		return r.say(ctx, msg, fmt.Sprintf("You've reached your spawn limit. Wait %s before spawning again.", formatWait(wait)))
	}

	spawned, err := r.Spawner.Force(ctx, msg.RoomID, nil)
	if err != nil {
		return err
	}
	r.announceSpawn(ctx, msg.RoomID, spawned)

	switch left {
	case 1:
		return r.say(ctx, msg, "Card spawned. You have 1 more spawn before cooldown.")
	case 0:
		return r.say(ctx, msg, fmt.Sprintf("Card spawned. That was your last one. Wait %s before spawning again.", formatWait(r.Throttle.Period())))
	}
	return nil
}

func (r *Router) catchCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	if !msg.IsGroup {
		return errGroupOnly
	}
	if len(e.Args) == 0 {
		return r.usage("catch <name>")
	}

	caught, err := r.Spawner.Catch(ctx, msg.RoomID, msg.SenderID, msg.SenderName, argText(e.Args))
	if err != nil {
		return err
	}

	r.Metrics.IncCatch(caught.Card.Rarity)
	r.Metrics.AddCoins("catch", caught.Reward)
	return r.say(ctx, msg,
		fmt.Sprintf("%s caught %s! You earned %d coins!", messenger.Mention(msg.SenderID), caught.Card.Name, caught.Reward),
		msg.SenderID)
}

func (r *Router) announceSpawn(ctx context.Context, roomID string, s *spawn.Spawned) {
	card := s.Card
	r.Metrics.IncSpawn(card.Rarity, s.Spawn.Forced)

	content := messenger.Content{
		Title: fmt.Sprintf("🎴 A wild %s appeared! 🎴", card.Name),
		Text:  spawnText(card, r.Prefix),
		Color: services.RarityColor(card.Tier()),
	}
	if art := r.fetchArtwork(ctx, card); art != nil {
		content.Image = art.Data
		content.ImageName = artworkName(card, art)
	}
	_ = r.send(ctx, messenger.Room(roomID), content)
}

func (r *Router) fetchArtwork(ctx context.Context, card *models.Card) *services.Artwork {
	if r.Artwork == nil || card.ImageURL == "" {
		return nil
	}
	art, err := r.Artwork.FetchArtwork(ctx, card.ImageURL)
	if err != nil {
		slog.Warn("Announcing spawn without artwork",
			slog.String("type", "sys"),
			slog.String("card_id", card.ID),
			slog.Any("error", err))
		return nil
	}
	return art
}

func artworkName(card *models.Card, art *services.Artwork) string {
	ext := path.Ext(art.Name)
	if ext == "" {
		ext = ".png"
	}
	return card.ID + ext
}

func spawnText(card *models.Card, prefix string) string {
	var b strings.Builder
	tier := card.Tier()
	fmt.Fprintf(&b, "**Anime:** %s\n", orUnknown(card.Anime))
	fmt.Fprintf(&b, "**Rarity:** %s %s\n", rarity.Emoji(tier), tier.Title())
	fmt.Fprintf(&b, "**Type:** %s\n\n", sentence(orUnknown(card.Type)))
	b.WriteString("**Stats:**\n")
	fmt.Fprintf(&b, "⚔️ Attack: %d\n🛡️ Defense: %d\n⚡ Speed: %d\n\n", card.Attack, card.Defense, card.Speed)
	if card.Ability != nil && card.Ability.Name != "" {
		fmt.Fprintf(&b, "**Ability:** %s\n", card.Ability.Name)
		if card.Ability.Description != "" {
			fmt.Fprintf(&b, "**Effect:** %s\n\n", card.Ability.Description)
		}
	}
	fmt.Fprintf(&b, "Use %scatch %s to catch this character!", prefix, card.Name)
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// AnnounceExpiredSpawns tells each room which card got away.
func (r *Router) AnnounceExpiredSpawns(ctx context.Context, expired []spawn.Spawned) {
	for _, s := range expired {
		name := "card"
		if s.Card != nil {
			name = s.Card.Name
		}
		_ = r.send(ctx, messenger.Room(s.Spawn.RoomID), messenger.Content{Text: fmt.Sprintf("The %s got away!", name)})
	}
}
