package services

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
)

//go:embed templates/card.html
var cardTemplate string

var cardTmpl = template.Must(template.New("card").Parse(cardTemplate))

type cardView struct {
	Name        string
	Anime       string
	Rarity      string
	Emoji       string
	Color       template.CSS
	Type        string
	Attack      int
	Defense     int
	Speed       int
	Level       int
	AbilityName string
	AbilityText string
	Artwork     template.URL
}

// CardRenderer draws a card into a PNG with headless Chrome.
type CardRenderer struct {
	artwork ArtworkSource
	logger  *slog.Logger
}

func NewCardRenderer(artwork ArtworkSource) *CardRenderer {
	return &CardRenderer{
		artwork: artwork,
		logger:  slog.With(slog.String("service", "card_renderer")),
	}
}

func RarityColor(t rarity.Tier) int {
	switch t {
	case rarity.Legendary:
		return config.RarityLegendaryColor
	case rarity.Epic:
		return config.RarityEpicColor
	case rarity.Rare:
		return config.RarityRareColor
	case rarity.Uncommon:
		return config.RarityUncommonColor
	default:
		return config.RarityCommonColor
	}
}

// Render draws the catalog card, at the owned level when uc is given. Missing
// artwork renders a placeholder instead of failing.
func (r *CardRenderer) Render(ctx context.Context, card *models.Card, uc *models.UserCard) ([]byte, error) {
	start := time.Now()

	html, err := r.html(ctx, card, uc)
	if err != nil {
		return nil, err
	}

	chromedpCtx, cancel := chromedp.NewContext(ctx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()
	chromedpCtx, cancel = context.WithTimeout(chromedpCtx, config.RenderTimeout)
	defer cancel()

	var image []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("data:text/html,"+html),
		chromedp.WaitVisible("#card-container", chromedp.ByID),
		chromedp.Sleep(100*time.Millisecond),
		chromedp.Screenshot("#card-container", &image, chromedp.ByID),
	)
	if err != nil {
		r.logger.Error("Failed to render card",
			slog.String("card_id", card.ID),
			slog.String("error", err.Error()),
			slog.Duration("took", time.Since(start)))
		return nil, fmt.Errorf("failed to render card: %w", err)
	}

	r.logger.Debug("Card rendered",
		slog.String("card_id", card.ID),
		slog.Int("bytes", len(image)),
		slog.Duration("took", time.Since(start)))
	return image, nil
}

func (r *CardRenderer) html(ctx context.Context, card *models.Card, uc *models.UserCard) (string, error) {
	tier := card.Tier()
	v := cardView{
		Name:    card.Name,
		Anime:   card.Anime,
		Rarity:  tier.Title(),
		Emoji:   rarity.Emoji(tier),
		Color:   template.CSS(fmt.Sprintf("#%06X", RarityColor(tier))),
		Type:    card.Type,
		Attack:  card.Attack,
		Defense: card.Defense,
		Speed:   card.Speed,
	}
	if uc != nil {
		v.Name = uc.DisplayName()
		v.Level = uc.Level
	}
	if card.Ability != nil {
		v.AbilityName = card.Ability.Name
		v.AbilityText = card.Ability.Description
	}

	if r.artwork != nil && card.ImageURL != "" {
		art, err := r.artwork.FetchArtwork(ctx, card.ImageURL)
		if err != nil {
			r.logger.Warn("Rendering card without artwork",
				slog.String("card_id", card.ID),
				slog.String("error", err.Error()))
		} else {
			contentType := art.ContentType
			if contentType == "" {
				contentType = "image/png"
			}
			v.Artwork = template.URL("data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(art.Data))
		}
	}

	var buf bytes.Buffer
	if err := cardTmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	out := strings.ReplaceAll(buf.String(), "#", "%23")
	return strings.ReplaceAll(out, "\n", ""), nil
}
