package messenger

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMention(t *testing.T) {
	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{token: "<@123456>", want: "123456", ok: true},
		{token: "<@!987>", want: "987", ok: true},
		{token: "@bob", ok: false},
		{token: "<@abc>", ok: false},
		{token: "<@123> trailing", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseMention(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "<@42>", Mention("42"))
}

func TestBuildMessage(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		msg := buildMessage(Content{Text: "Tch.", Mentions: []string{"42", "nope"}})
		assert.Equal(t, "Tch.", msg.Content)
		assert.Empty(t, msg.Embeds)
		require.NotNil(t, msg.AllowedMentions)
		assert.Len(t, msg.AllowedMentions.Users, 1)
	})

	t.Run("caption only", func(t *testing.T) {
		msg := buildMessage(Content{Image: []byte{1}, ImageName: "levi.png", Caption: "A wild card"})
		assert.Equal(t, "A wild card", msg.Content)
		require.Len(t, msg.Files, 1)
		assert.Equal(t, "levi.png", msg.Files[0].Name)
	})

	t.Run("embed with image", func(t *testing.T) {
		msg := buildMessage(Content{Title: "Spawn", Text: "body", Color: 0xFFD700, Image: []byte{1}, ImageName: "c.png"})
		require.Len(t, msg.Embeds, 1)
		assert.Equal(t, "body", msg.Embeds[0].Description)
		require.NotNil(t, msg.Embeds[0].Image)
		assert.Equal(t, "attachment://c.png", msg.Embeds[0].Image.URL)
		assert.IsType(t, []*discord.File{}, msg.Files)
	})
}
