package prefix

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ellavondegurechaff/levibot/levibot/commands/prefix/mock"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/game/gametest"
	"github.com/ellavondegurechaff/levibot/levibot/messenger"
	msgmock "github.com/ellavondegurechaff/levibot/levibot/messenger/mock"
	"github.com/ellavondegurechaff/levibot/levibot/services"
	"github.com/ellavondegurechaff/levibot/levibot/spawn"
)

type sent struct {
	target  messenger.Target
	content messenger.Content
}

type routerFixture struct {
	messenger *msgmock.MockMessenger
	spawner   *mock.MockSpawner
	battles   *mock.MockBattles
	trades    *mock.MockTrades
	decks     *mock.MockDecks
	economy   *mock.MockEconomy
	accounts  *mock.MockAccounts
	catalog   *mock.MockCatalog
	router    *Router

	mu   sync.Mutex
	sent []sent
}

func newRouterFixture(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)
	f := &routerFixture{
		messenger: msgmock.NewMockMessenger(ctrl),
		spawner:   mock.NewMockSpawner(ctrl),
		battles:   mock.NewMockBattles(ctrl),
		trades:    mock.NewMockTrades(ctrl),
		decks:     mock.NewMockDecks(ctrl),
		economy:   mock.NewMockEconomy(ctrl),
		accounts:  mock.NewMockAccounts(ctrl),
		catalog:   mock.NewMockCatalog(ctrl),
	}
	f.messenger.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, target messenger.Target, content messenger.Content) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.sent = append(f.sent, sent{target, content})
			return nil
		}).AnyTimes()

	f.router = New(Deps{
		Messenger: f.messenger,
		Spawner:   f.spawner,
		Throttle:  spawn.NewThrottle(2, time.Minute),
		Battles:   f.battles,
		Trades:    f.trades,
		Decks:     f.decks,
		Economy:   f.economy,
		Accounts:  f.accounts,
		Catalog:   f.catalog,
		// never adds flavor
		Rand:    gametest.FixedRand{Float: 0.99},
		OwnerID: "owner",
		Version: "test",
	})
	return f
}

func (f *routerFixture) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sent))
	for _, s := range f.sent {
		out = append(out, s.content.Text)
	}
	return out
}

// command expects the bookkeeping every parsed command goes through.
func (f *routerFixture) command(userID, name string) {
	f.accounts.EXPECT().Blocked(gomock.Any(), userID).Return(false, nil).AnyTimes()
	f.accounts.EXPECT().Touch(gomock.Any(), userID, gomock.Any(), name).Return(&models.User{ID: userID}, nil)
}

func groupMessage(sender, text string) messenger.IncomingMessage {
	return messenger.IncomingMessage{
		MessageID:  "m-1",
		SenderID:   sender,
		SenderName: "Eren",
		RoomID:     "room",
		GroupID:    "guild",
		IsGroup:    true,
		Text:       text,
	}
}

func directMessage(sender, text string) messenger.IncomingMessage {
	return messenger.IncomingMessage{SenderID: sender, SenderName: "Eren", RoomID: "dm", Text: text}
}

var levi = &models.Card{ID: "levi", Name: "Levi Ackerman", Anime: "Attack on Titan", Rarity: "legendary", Type: "attack", Attack: 95, Defense: 80, Speed: 99}

func TestHandle_BlockedUserIgnored(t *testing.T) {
	f := newRouterFixture(t)
	f.accounts.EXPECT().Blocked(gomock.Any(), "eren").Return(true, nil)

	f.router.HandleContext(context.Background(), groupMessage("eren", "!catch levi"))
	assert.Empty(t, f.texts())
}

func TestHandle_OwnerSkipsBlockCheck(t *testing.T) {
	f := newRouterFixture(t)
	f.accounts.EXPECT().Touch(gomock.Any(), "owner", gomock.Any(), "balance").Return(&models.User{}, nil)
	f.accounts.EXPECT().Balance(gomock.Any(), "owner", gomock.Any()).Return(int64(42), nil)

	f.router.HandleContext(context.Background(), directMessage("owner", "!balance"))
	assert.Equal(t, []string{"💰 <@owner> has 42 coins."}, f.texts())
}

func TestHandle_PlainGroupMessageRollsSpawn(t *testing.T) {
	f := newRouterFixture(t)
	f.accounts.EXPECT().Blocked(gomock.Any(), "eren").Return(false, nil)
	f.spawner.EXPECT().OnMessage(gomock.Any(), "room").Return(&spawn.Spawned{
		Spawn: &models.Spawn{RoomID: "room", CardID: "levi"},
		Card:  levi,
	}, nil)

	f.router.HandleContext(context.Background(), groupMessage("eren", "anyone up for training?"))

	require.Len(t, f.sent, 1)
	got := f.sent[0]
	assert.Equal(t, messenger.Room("room"), got.target)
	assert.Equal(t, "🎴 A wild Levi Ackerman appeared! 🎴", got.content.Title)
	assert.Contains(t, got.content.Text, "!catch Levi Ackerman")
	assert.Equal(t, services.RarityColor(levi.Tier()), got.content.Color)
}

func TestHandle_UnknownCommandIgnored(t *testing.T) {
	f := newRouterFixture(t)
	f.accounts.EXPECT().Blocked(gomock.Any(), "eren").Return(false, nil)

	f.router.HandleContext(context.Background(), directMessage("eren", "!dance"))
	assert.Empty(t, f.texts())
}

func TestHandle_Catch(t *testing.T) {
	f := newRouterFixture(t)
	f.command("eren", "catch")
	f.spawner.EXPECT().OnMessage(gomock.Any(), "room").Return(nil, nil)
	f.spawner.EXPECT().Catch(gomock.Any(), "room", "eren", "Eren", "levi").Return(&spawn.Caught{Card: levi, Reward: 500}, nil)

	f.router.HandleContext(context.Background(), groupMessage("eren", "!catch levi"))
	assert.Equal(t, []string{"<@eren> caught Levi Ackerman! You earned 500 coins!"}, f.texts())
}

func TestHandle_DenialsBecomeReplies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"wrong guess", spawn.ErrWrongGuess, "That's not its name. Look closer."},
		{"wrapped", errors.Join(errors.New("ctx"), spawn.ErrNoActiveSpawn), "There's no character to catch right now!"},
		{"cooldown", &services.CooldownError{Err: services.ErrDailyClaimed, Remaining: 90 * time.Minute}, "Daily reward already claimed. Come back in 1h 30m."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)
			f.command("eren", "catch")
			f.spawner.EXPECT().OnMessage(gomock.Any(), "room").Return(nil, nil)
			f.spawner.EXPECT().Catch(gomock.Any(), "room", "eren", "Eren", "x").Return(nil, tt.err)

			f.router.HandleContext(context.Background(), groupMessage("eren", "!catch x"))
			assert.Equal(t, []string{tt.want}, f.texts())
		})
	}
}

func TestHandle_UnexpectedErrorRepliesGeneric(t *testing.T) {
	f := newRouterFixture(t)
	f.command("eren", "balance")
	f.accounts.EXPECT().Balance(gomock.Any(), "eren", "Eren").Return(int64(0), errors.New("db down"))

	f.router.HandleContext(context.Background(), directMessage("eren", "!balance"))
	assert.Equal(t, []string{genericFailure}, f.texts())
}

func TestHandle_CatchOutsideGroup(t *testing.T) {
	f := newRouterFixture(t)
	f.command("eren", "catch")

	f.router.HandleContext(context.Background(), directMessage("eren", "!catch levi"))
	assert.Equal(t, []string{"This command can only be used in group chats where card spawning happens."}, f.texts())
}

func TestHandle_CatchUsage(t *testing.T) {
	f := newRouterFixture(t)
	f.command("eren", "catch")
	f.spawner.EXPECT().OnMessage(gomock.Any(), "room").Return(nil, nil)

	f.router.HandleContext(context.Background(), groupMessage("eren", "!CATCH"))
	assert.Equal(t, []string{"Use !catch <name>"}, f.texts())
}

func TestSpawnCmd_Throttle(t *testing.T) {
	f := newRouterFixture(t)
	f.accounts.EXPECT().Blocked(gomock.Any(), "eren").Return(false, nil).AnyTimes()
	f.accounts.EXPECT().Touch(gomock.Any(), "eren", gomock.Any(), "spawn").Return(&models.User{}, nil).Times(3)
	f.spawner.EXPECT().OnMessage(gomock.Any(), "room").Return(nil, nil).Times(3)
	f.spawner.EXPECT().Force(gomock.Any(), "room", nil).Return(&spawn.Spawned{Spawn: &models.Spawn{}, Card: levi}, nil).Times(2)

	for i := 0; i < 3; i++ {
		f.router.HandleContext(context.Background(), groupMessage("eren", "!spawn"))
	}

	texts := f.texts()
	require.Len(t, texts, 5)
	assert.Equal(t, "Card spawned. You have 1 more spawn before cooldown.", texts[1])
	assert.Equal(t, "Card spawned. That was your last one. Wait 1m 0s before spawning again.", texts[3])
	assert.Contains(t, texts[4], "You've reached your spawn limit.")
}

func TestSpawnCmd_NamedIsOwnerOnly(t *testing.T) {
	f := newRouterFixture(t)
	f.command("eren", "spawn")
	f.spawner.EXPECT().OnMessage(gomock.Any(), "room").Return(nil, nil)

	f.router.HandleContext(context.Background(), groupMessage("eren", "!spawn levi"))
	assert.Equal(t, []string{"Only the bot owner can spawn specific cards. Use !spawn without arguments for a random card."}, f.texts())
}

func TestSpawnCmd_OwnerNamedSpawn(t *testing.T) {
	f := newRouterFixture(t)
	f.accounts.EXPECT().Touch(gomock.Any(), "owner", gomock.Any(), "spawn").Return(&models.User{}, nil)
	f.spawner.EXPECT().OnMessage(gomock.Any(), "room").Return(nil, nil)
	f.catalog.EXPECT().FindByName(gomock.Any(), "levi ackerman").Return(levi, nil)
	f.spawner.EXPECT().Force(gomock.Any(), "room", levi).Return(&spawn.Spawned{Spawn: &models.Spawn{Forced: true}, Card: levi}, nil)

	f.router.HandleContext(context.Background(), groupMessage("owner", "!spawn levi ackerman"))

	require.Len(t, f.sent, 2)
	assert.Equal(t, messenger.Room("room"), f.sent[0].target)
	assert.Equal(t, messenger.Direct("owner"), f.sent[1].target)
}

func TestAcceptCmd_FallsBackToTrade(t *testing.T) {
	f := newRouterFixture(t)
	f.command("bob", "accept")
	f.battles.EXPECT().Accept(gomock.Any(), "bob").Return(nil, services.ErrNoPendingBattle)
	f.trades.EXPECT().Accept(gomock.Any(), "bob").Return(&services.TradeOutcome{
		Trade: &models.Trade{InitiatorID: "alice", CounterpartID: "bob"},
	}, nil)

	f.router.HandleContext(context.Background(), directMessage("bob", "!accept"))
	assert.Equal(t, []string{"✅ Trade complete between <@alice> and <@bob>. 0 card(s) changed hands."}, f.texts())
}

func TestAcceptCmd_NothingPending(t *testing.T) {
	f := newRouterFixture(t)
	f.command("bob", "accept")
	f.battles.EXPECT().Accept(gomock.Any(), "bob").Return(nil, services.ErrNoPendingBattle)
	f.trades.EXPECT().Accept(gomock.Any(), "bob").Return(nil, services.ErrNoOpenTrade)

	f.router.HandleContext(context.Background(), directMessage("bob", "!accept"))
	assert.Equal(t, []string{"You have no pending battle or trade to accept."}, f.texts())
}

func TestBattleCmd(t *testing.T) {
	t.Run("invalid wager", func(t *testing.T) {
		f := newRouterFixture(t)
		f.command("eren", "battle")

		f.router.HandleContext(context.Background(), directMessage("eren", "!battle <@123> lots"))
		assert.Equal(t, []string{"Wager must be zero or a positive number."}, f.texts())
	})

	t.Run("bot opponent", func(t *testing.T) {
		f := newRouterFixture(t)
		f.command("eren", "battle")
		f.spawner.EXPECT().OnMessage(gomock.Any(), "room").Return(nil, nil)
		f.messenger.EXPECT().GetGroupMembers(gomock.Any(), "guild").Return([]messenger.Member{
			{ID: "eren", Name: "Eren"},
			{ID: "99", Name: "Levibot", Bot: true},
		}, nil)

		f.router.HandleContext(context.Background(), groupMessage("eren", "!battle <@99>"))
		assert.Equal(t, []string{"Bots don't play cards. Pick a real opponent."}, f.texts())
	})

	t.Run("not in group", func(t *testing.T) {
		f := newRouterFixture(t)
		f.command("eren", "battle")
		f.spawner.EXPECT().OnMessage(gomock.Any(), "room").Return(nil, nil)
		f.messenger.EXPECT().GetGroupMembers(gomock.Any(), "guild").Return([]messenger.Member{{ID: "eren"}}, nil)

		f.router.HandleContext(context.Background(), groupMessage("eren", "!battle <@123>"))
		assert.Equal(t, []string{"That user isn't in this group."}, f.texts())
	})

	t.Run("challenge", func(t *testing.T) {
		f := newRouterFixture(t)
		f.command("eren", "battle")
		f.spawner.EXPECT().OnMessage(gomock.Any(), "room").Return(nil, nil)
		f.messenger.EXPECT().GetGroupMembers(gomock.Any(), "guild").Return([]messenger.Member{{ID: "eren"}, {ID: "123", Name: "Mikasa"}}, nil)
		f.battles.EXPECT().Challenge(gomock.Any(), services.ChallengeRequest{
			RoomID:         "room",
			ChallengerID:   "eren",
			ChallengerName: "Eren",
			OpponentID:     "123",
			OpponentName:   "Mikasa",
			Wager:          50,
		}).Return(&models.Battle{ChallengerID: "eren", OpponentID: "123", Wager: 50, ExpiresAt: time.Now().Add(time.Hour)}, nil)

		f.router.HandleContext(context.Background(), groupMessage("eren", "!battle <@123> 50"))

		require.Len(t, f.sent, 1)
		assert.Contains(t, f.sent[0].content.Text, "<@eren> has challenged <@123> to a battle for 50 coins!")
		assert.ElementsMatch(t, []string{"eren", "123"}, f.sent[0].content.Mentions)
	})
}

func TestOfferCoinCmd_InvalidAmount(t *testing.T) {
	f := newRouterFixture(t)
	f.command("eren", "offercoin")

	f.router.HandleContext(context.Background(), directMessage("eren", "!offercoin -5"))
	assert.Equal(t, []string{"The amount has to be a positive number."}, f.texts())
}

func TestBlockCmd(t *testing.T) {
	t.Run("owner only", func(t *testing.T) {
		f := newRouterFixture(t)
		f.command("eren", "block")

		f.router.HandleContext(context.Background(), directMessage("eren", "!block <@5>"))
		assert.Equal(t, []string{"Only the bot owner can do that."}, f.texts())
	})

	t.Run("owner blocks", func(t *testing.T) {
		f := newRouterFixture(t)
		f.accounts.EXPECT().Touch(gomock.Any(), "owner", gomock.Any(), "block").Return(&models.User{}, nil)
		f.accounts.EXPECT().SetBlocked(gomock.Any(), "5", true).Return(nil)

		f.router.HandleContext(context.Background(), directMessage("owner", "!block <@5>"))
		assert.Equal(t, []string{"<@5> has been blocked."}, f.texts())
	})
}

func TestFlavor(t *testing.T) {
	r := &Router{Deps: Deps{Rand: gametest.FixedRand{Int: 1, Float: 0.1}}}
	assert.Equal(t, "Hmph. Clean your room.", r.flavor("Clean your room."))
	assert.Equal(t, "Tch. Already grumpy.", r.flavor("Tch. Already grumpy."))

	r.Rand = gametest.FixedRand{Float: 0.5}
	assert.Equal(t, "Clean your room.", r.flavor("Clean your room."))
}

func TestParse(t *testing.T) {
	r := &Router{Deps: Deps{Prefix: "!"}}
	tests := []struct {
		text string
		name string
		args []string
		ok   bool
	}{
		{"!catch levi ackerman", "catch", []string{"levi", "ackerman"}, true},
		{"  !Deck   add  Levi ", "deck", []string{"add", "Levi"}, true},
		{"!", "", nil, false},
		{"hello", "", nil, false},
	}
	for _, tt := range tests {
		name, args, ok := r.parse(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.name, name, tt.text)
		if tt.ok {
			assert.Equal(t, tt.args, args, tt.text)
		}
	}
}

func TestFormatWait(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m 0s"},
		{1500 * time.Millisecond, "0m 2s"},
		{90 * time.Second, "1m 30s"},
		{59*time.Minute + 59*time.Second, "59m 59s"},
		{4 * time.Hour, "4h 0m"},
		{-time.Second, "0m 0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatWait(tt.d), tt.d.String())
	}
}

func TestAnnounceExpiredBattles(t *testing.T) {
	f := newRouterFixture(t)

	f.router.AnnounceExpiredBattles(context.Background(), []*models.Battle{
		{ID: "b-1", ChallengerID: "eren", OpponentID: "levi", RoomID: "room"},
		{ID: "b-2", ChallengerID: "armin", OpponentID: "annie", RoomID: "room", OpponentDeck: []string{"c1"}},
		{ID: "b-3", ChallengerID: "hange", OpponentID: "erwin"},
	})

	assert.Equal(t, []string{
		"The challenge from <@eren> to <@levi> expired.",
		"The battle between <@armin> and <@annie> was called off. Nothing changed hands.",
	}, f.texts())
}
