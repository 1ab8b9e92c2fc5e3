package messenger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

const membersPageSize = 1000

// Discord is the Messenger backed by a disgo client. It is also the gateway
// listener that feeds OnIncomingMessage handlers.
type Discord struct {
	mu       sync.RWMutex
	client   bot.Client
	handlers []func(IncomingMessage)
}

var (
	_ Messenger         = (*Discord)(nil)
	_ bot.EventListener = (*Discord)(nil)
)

func NewDiscord() *Discord {
	return &Discord{}
}

// SetClient binds the client once the bot is built; the listener has to
// exist before that.
func (d *Discord) SetClient(client bot.Client) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.client = client
}

func (d *Discord) rest() (rest.Rest, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.client == nil {
		return nil, fmt.Errorf("discord messenger has no client")
	}
	return d.client.Rest(), nil
}

func (d *Discord) OnIncomingMessage(handler func(IncomingMessage)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, handler)
}

func (d *Discord) OnEvent(event bot.Event) {
	e, ok := event.(*events.MessageCreate)
	if !ok || e.Message.Author.Bot || e.Message.Author.System {
		return
	}

	msg := IncomingMessage{
		MessageID:  e.MessageID.String(),
		SenderID:   e.Message.Author.ID.String(),
		SenderName: e.Message.Author.EffectiveName(),
		RoomID:     e.ChannelID.String(),
		Text:       e.Message.Content,
	}
	if e.GuildID != nil {
		msg.GroupID = e.GuildID.String()
		msg.IsGroup = true
	}
	for _, u := range e.Message.Mentions {
		msg.Mentions = append(msg.Mentions, Member{ID: u.ID.String(), Name: u.EffectiveName(), Bot: u.Bot})
	}

	d.mu.RLock()
	handlers := d.handlers
	d.mu.RUnlock()
	for _, h := range handlers {
		h(msg)
	}
}

func (d *Discord) SendMessage(ctx context.Context, target Target, content Content) error {
	r, err := d.rest()
	if err != nil {
		return err
	}

	channelID, err := d.channel(ctx, r, target)
	if err != nil {
		return err
	}

	_, err = r.CreateMessage(channelID, buildMessage(content), rest.WithCtx(ctx))
	if err != nil {
		slog.Error("Failed to send message",
			slog.String("type", "sys"),
			slog.String("target", target.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (d *Discord) channel(ctx context.Context, r rest.Rest, target Target) (snowflake.ID, error) {
	id, err := snowflake.Parse(target.ID)
	if err != nil {
		return 0, fmt.Errorf("invalid target id %q: %w", target.ID, err)
	}
	if target.Kind == TargetRoom {
		return id, nil
	}

	dm, err := r.CreateDMChannel(id, rest.WithCtx(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to open direct channel: %w", err)
	}
	return dm.ID(), nil
}

func buildMessage(content Content) discord.MessageCreate {
	b := discord.NewMessageCreateBuilder()

	mentions := &discord.AllowedMentions{}
	for _, id := range content.Mentions {
		if sf, err := snowflake.Parse(id); err == nil {
			mentions.Users = append(mentions.Users, sf)
		}
	}
	b.SetAllowedMentions(mentions)

	if content.Title != "" || content.Color != 0 {
		embed := discord.NewEmbedBuilder().
			SetTitle(content.Title).
			SetDescription(content.Text).
			SetColor(content.Color)
		if len(content.Image) > 0 {
			embed.SetImage("attachment://" + content.ImageName)
			if content.Caption != "" {
				embed.SetFooterText(content.Caption)
			}
		}
		b.AddEmbeds(embed.Build())
	} else {
		text := content.Text
		if text == "" {
			text = content.Caption
		}
		b.SetContent(text)
	}

	if len(content.Image) > 0 {
		name := content.ImageName
		if name == "" {
			name = "image.png"
		}
		b.AddFile(name, content.Caption, bytes.NewReader(content.Image))
	}
	return b.Build()
}

func (d *Discord) GetGroupMembers(ctx context.Context, groupID string) ([]Member, error) {
	r, err := d.rest()
	if err != nil {
		return nil, err
	}
	guildID, err := snowflake.Parse(groupID)
	if err != nil {
		return nil, fmt.Errorf("invalid group id %q: %w", groupID, err)
	}

	var (
		out   []Member
		after snowflake.ID
	)
	for {
		page, err := r.GetMembers(guildID, membersPageSize, after, rest.WithCtx(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}
		for _, m := range page {
			out = append(out, Member{ID: m.User.ID.String(), Name: m.EffectiveName(), Bot: m.User.Bot})
		}
		if len(page) < membersPageSize {
			return out, nil
		}
		after = page[len(page)-1].User.ID
	}
}
