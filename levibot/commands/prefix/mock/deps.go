package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/ellavondegurechaff/levibot/levibot/database/models"
	repositories "github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	services "github.com/ellavondegurechaff/levibot/levibot/services"
	spawn "github.com/ellavondegurechaff/levibot/levibot/spawn"
	gomock "go.uber.org/mock/gomock"
)

// MockSpawner is a mock of Spawner interface.
type MockSpawner struct {
	ctrl     *gomock.Controller
	recorder *MockSpawnerMockRecorder
	isgomock struct{}
}

// MockSpawnerMockRecorder is the mock recorder for MockSpawner.
type MockSpawnerMockRecorder struct {
	mock *MockSpawner
}

// NewMockSpawner creates a new mock instance.
func NewMockSpawner(ctrl *gomock.Controller) *MockSpawner {
	mock := &MockSpawner{ctrl: ctrl}
	mock.recorder = &MockSpawnerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSpawner) EXPECT() *MockSpawnerMockRecorder {
	return m.recorder
}

// Catch mocks base method.
func (m *MockSpawner) Catch(ctx context.Context, roomID string, userID string, userName string, guess string) (*spawn.Caught, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Catch", ctx, roomID, userID, userName, guess)
	ret0, _ := ret[0].(*spawn.Caught)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Catch indicates an expected call of Catch.
func (mr *MockSpawnerMockRecorder) Catch(ctx, roomID, userID, userName, guess any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Catch", reflect.TypeOf((*MockSpawner)(nil).Catch), ctx, roomID, userID, userName, guess)
}

// Force mocks base method.
func (m *MockSpawner) Force(ctx context.Context, roomID string, card *models.Card) (*spawn.Spawned, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Force", ctx, roomID, card)
	ret0, _ := ret[0].(*spawn.Spawned)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Force indicates an expected call of Force.
func (mr *MockSpawnerMockRecorder) Force(ctx, roomID, card any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Force", reflect.TypeOf((*MockSpawner)(nil).Force), ctx, roomID, card)
}

// OnMessage mocks base method.
func (m *MockSpawner) OnMessage(ctx context.Context, roomID string) (*spawn.Spawned, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OnMessage", ctx, roomID)
	ret0, _ := ret[0].(*spawn.Spawned)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OnMessage indicates an expected call of OnMessage.
func (mr *MockSpawnerMockRecorder) OnMessage(ctx, roomID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnMessage", reflect.TypeOf((*MockSpawner)(nil).OnMessage), ctx, roomID)
}

// MockBattles is a mock of Battles interface.
type MockBattles struct {
	ctrl     *gomock.Controller
	recorder *MockBattlesMockRecorder
	isgomock struct{}
}

// MockBattlesMockRecorder is the mock recorder for MockBattles.
type MockBattlesMockRecorder struct {
	mock *MockBattles
}

// NewMockBattles creates a new mock instance.
func NewMockBattles(ctrl *gomock.Controller) *MockBattles {
	mock := &MockBattles{ctrl: ctrl}
	mock.recorder = &MockBattlesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBattles) EXPECT() *MockBattlesMockRecorder {
	return m.recorder
}

// Accept mocks base method.
func (m *MockBattles) Accept(ctx context.Context, userID string) (*services.BattleOutcome, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Accept", ctx, userID)
	ret0, _ := ret[0].(*services.BattleOutcome)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Accept indicates an expected call of Accept.
func (mr *MockBattlesMockRecorder) Accept(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Accept", reflect.TypeOf((*MockBattles)(nil).Accept), ctx, userID)
}

// Challenge mocks base method.
func (m *MockBattles) Challenge(ctx context.Context, req services.ChallengeRequest) (*models.Battle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Challenge", ctx, req)
	ret0, _ := ret[0].(*models.Battle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Challenge indicates an expected call of Challenge.
func (mr *MockBattlesMockRecorder) Challenge(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Challenge", reflect.TypeOf((*MockBattles)(nil).Challenge), ctx, req)
}

// Decline mocks base method.
func (m *MockBattles) Decline(ctx context.Context, userID string) (*models.Battle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Decline", ctx, userID)
	ret0, _ := ret[0].(*models.Battle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Decline indicates an expected call of Decline.
func (mr *MockBattlesMockRecorder) Decline(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Decline", reflect.TypeOf((*MockBattles)(nil).Decline), ctx, userID)
}

// MockTrades is a mock of Trades interface.
type MockTrades struct {
	ctrl     *gomock.Controller
	recorder *MockTradesMockRecorder
	isgomock struct{}
}

// MockTradesMockRecorder is the mock recorder for MockTrades.
type MockTradesMockRecorder struct {
	mock *MockTrades
}

// NewMockTrades creates a new mock instance.
func NewMockTrades(ctrl *gomock.Controller) *MockTrades {
	mock := &MockTrades{ctrl: ctrl}
	mock.recorder = &MockTradesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTrades) EXPECT() *MockTradesMockRecorder {
	return m.recorder
}

// Accept mocks base method.
func (m *MockTrades) Accept(ctx context.Context, userID string) (*services.TradeOutcome, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Accept", ctx, userID)
	ret0, _ := ret[0].(*services.TradeOutcome)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Accept indicates an expected call of Accept.
func (mr *MockTradesMockRecorder) Accept(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Accept", reflect.TypeOf((*MockTrades)(nil).Accept), ctx, userID)
}

// Decline mocks base method.
func (m *MockTrades) Decline(ctx context.Context, userID string) (*models.Trade, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Decline", ctx, userID)
	ret0, _ := ret[0].(*models.Trade)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Decline indicates an expected call of Decline.
func (mr *MockTradesMockRecorder) Decline(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Decline", reflect.TypeOf((*MockTrades)(nil).Decline), ctx, userID)
}

// OfferCard mocks base method.
func (m *MockTrades) OfferCard(ctx context.Context, userID string, name string) (*models.Trade, *models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OfferCard", ctx, userID, name)
	ret0, _ := ret[0].(*models.Trade)
	ret1, _ := ret[1].(*models.UserCard)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// OfferCard indicates an expected call of OfferCard.
func (mr *MockTradesMockRecorder) OfferCard(ctx, userID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OfferCard", reflect.TypeOf((*MockTrades)(nil).OfferCard), ctx, userID, name)
}

// OfferCoins mocks base method.
func (m *MockTrades) OfferCoins(ctx context.Context, userID string, amount int64) (*models.Trade, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OfferCoins", ctx, userID, amount)
	ret0, _ := ret[0].(*models.Trade)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OfferCoins indicates an expected call of OfferCoins.
func (mr *MockTradesMockRecorder) OfferCoins(ctx, userID, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OfferCoins", reflect.TypeOf((*MockTrades)(nil).OfferCoins), ctx, userID, amount)
}

// Start mocks base method.
func (m *MockTrades) Start(ctx context.Context, req services.TradeRequest) (*models.Trade, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Start", ctx, req)
	ret0, _ := ret[0].(*models.Trade)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Start indicates an expected call of Start.
func (mr *MockTradesMockRecorder) Start(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockTrades)(nil).Start), ctx, req)
}

// View mocks base method.
func (m *MockTrades) View(ctx context.Context, userID string) (*services.TradeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "View", ctx, userID)
	ret0, _ := ret[0].(*services.TradeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// View indicates an expected call of View.
func (mr *MockTradesMockRecorder) View(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "View", reflect.TypeOf((*MockTrades)(nil).View), ctx, userID)
}

// MockDecks is a mock of Decks interface.
type MockDecks struct {
	ctrl     *gomock.Controller
	recorder *MockDecksMockRecorder
	isgomock struct{}
}

// MockDecksMockRecorder is the mock recorder for MockDecks.
type MockDecksMockRecorder struct {
	mock *MockDecks
}

// NewMockDecks creates a new mock instance.
func NewMockDecks(ctrl *gomock.Controller) *MockDecks {
	mock := &MockDecks{ctrl: ctrl}
	mock.recorder = &MockDecksMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDecks) EXPECT() *MockDecksMockRecorder {
	return m.recorder
}

// Add mocks base method.
func (m *MockDecks) Add(ctx context.Context, userID string, name string) (*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Add", ctx, userID, name)
	ret0, _ := ret[0].(*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Add indicates an expected call of Add.
func (mr *MockDecksMockRecorder) Add(ctx, userID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockDecks)(nil).Add), ctx, userID, name)
}

// Clear mocks base method.
func (m *MockDecks) Clear(ctx context.Context, userID string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clear", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Clear indicates an expected call of Clear.
func (mr *MockDecksMockRecorder) Clear(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clear", reflect.TypeOf((*MockDecks)(nil).Clear), ctx, userID)
}

// Remove mocks base method.
func (m *MockDecks) Remove(ctx context.Context, userID string, name string) (*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", ctx, userID, name)
	ret0, _ := ret[0].(*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Remove indicates an expected call of Remove.
func (mr *MockDecksMockRecorder) Remove(ctx, userID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockDecks)(nil).Remove), ctx, userID, name)
}

// View mocks base method.
func (m *MockDecks) View(ctx context.Context, userID string) ([]*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "View", ctx, userID)
	ret0, _ := ret[0].([]*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// View indicates an expected call of View.
func (mr *MockDecksMockRecorder) View(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "View", reflect.TypeOf((*MockDecks)(nil).View), ctx, userID)
}

// MockEconomy is a mock of Economy interface.
type MockEconomy struct {
	ctrl     *gomock.Controller
	recorder *MockEconomyMockRecorder
	isgomock struct{}
}

// MockEconomyMockRecorder is the mock recorder for MockEconomy.
type MockEconomyMockRecorder struct {
	mock *MockEconomy
}

// NewMockEconomy creates a new mock instance.
func NewMockEconomy(ctrl *gomock.Controller) *MockEconomy {
	mock := &MockEconomy{ctrl: ctrl}
	mock.recorder = &MockEconomyMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEconomy) EXPECT() *MockEconomyMockRecorder {
	return m.recorder
}

// BuyPack mocks base method.
func (m *MockEconomy) BuyPack(ctx context.Context, userID string, userName string, packKey string, anime string) (*services.PackResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BuyPack", ctx, userID, userName, packKey, anime)
	ret0, _ := ret[0].(*services.PackResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BuyPack indicates an expected call of BuyPack.
func (mr *MockEconomyMockRecorder) BuyPack(ctx, userID, userName, packKey, anime any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BuyPack", reflect.TypeOf((*MockEconomy)(nil).BuyPack), ctx, userID, userName, packKey, anime)
}

// ClaimDaily mocks base method.
func (m *MockEconomy) ClaimDaily(ctx context.Context, userID string, userName string) (*services.DailyResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimDaily", ctx, userID, userName)
	ret0, _ := ret[0].(*services.DailyResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClaimDaily indicates an expected call of ClaimDaily.
func (mr *MockEconomyMockRecorder) ClaimDaily(ctx, userID, userName any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimDaily", reflect.TypeOf((*MockEconomy)(nil).ClaimDaily), ctx, userID, userName)
}

// Train mocks base method.
func (m *MockEconomy) Train(ctx context.Context, userID string, userName string) (*services.TrainingResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Train", ctx, userID, userName)
	ret0, _ := ret[0].(*services.TrainingResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Train indicates an expected call of Train.
func (mr *MockEconomyMockRecorder) Train(ctx, userID, userName any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Train", reflect.TypeOf((*MockEconomy)(nil).Train), ctx, userID, userName)
}

// MockAccounts is a mock of Accounts interface.
type MockAccounts struct {
	ctrl     *gomock.Controller
	recorder *MockAccountsMockRecorder
	isgomock struct{}
}

// MockAccountsMockRecorder is the mock recorder for MockAccounts.
type MockAccountsMockRecorder struct {
	mock *MockAccounts
}

// NewMockAccounts creates a new mock instance.
func NewMockAccounts(ctrl *gomock.Controller) *MockAccounts {
	mock := &MockAccounts{ctrl: ctrl}
	mock.recorder = &MockAccountsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccounts) EXPECT() *MockAccountsMockRecorder {
	return m.recorder
}

// Balance mocks base method.
func (m *MockAccounts) Balance(ctx context.Context, userID string, name string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Balance", ctx, userID, name)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Balance indicates an expected call of Balance.
func (mr *MockAccountsMockRecorder) Balance(ctx, userID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Balance", reflect.TypeOf((*MockAccounts)(nil).Balance), ctx, userID, name)
}

// Blocked mocks base method.
func (m *MockAccounts) Blocked(ctx context.Context, userID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Blocked", ctx, userID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Blocked indicates an expected call of Blocked.
func (mr *MockAccountsMockRecorder) Blocked(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Blocked", reflect.TypeOf((*MockAccounts)(nil).Blocked), ctx, userID)
}

// Collection mocks base method.
func (m *MockAccounts) Collection(ctx context.Context, userID string, page int) (*services.CollectionPage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Collection", ctx, userID, page)
	ret0, _ := ret[0].(*services.CollectionPage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Collection indicates an expected call of Collection.
func (mr *MockAccountsMockRecorder) Collection(ctx, userID, page any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Collection", reflect.TypeOf((*MockAccounts)(nil).Collection), ctx, userID, page)
}

// Leaderboard mocks base method.
func (m *MockAccounts) Leaderboard(ctx context.Context, metric string) ([]repositories.LeaderboardEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Leaderboard", ctx, metric)
	ret0, _ := ret[0].([]repositories.LeaderboardEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Leaderboard indicates an expected call of Leaderboard.
func (mr *MockAccountsMockRecorder) Leaderboard(ctx, metric any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Leaderboard", reflect.TypeOf((*MockAccounts)(nil).Leaderboard), ctx, metric)
}

// OwnedCard mocks base method.
func (m *MockAccounts) OwnedCard(ctx context.Context, userID, name string) (*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OwnedCard", ctx, userID, name)
	ret0, _ := ret[0].(*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OwnedCard indicates an expected call of OwnedCard.
func (mr *MockAccountsMockRecorder) OwnedCard(ctx, userID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OwnedCard", reflect.TypeOf((*MockAccounts)(nil).OwnedCard), ctx, userID, name)
}

// Profile mocks base method.
func (m *MockAccounts) Profile(ctx context.Context, userID string, name string) (*services.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Profile", ctx, userID, name)
	ret0, _ := ret[0].(*services.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Profile indicates an expected call of Profile.
func (mr *MockAccountsMockRecorder) Profile(ctx, userID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Profile", reflect.TypeOf((*MockAccounts)(nil).Profile), ctx, userID, name)
}

// SetBlocked mocks base method.
func (m *MockAccounts) SetBlocked(ctx context.Context, userID string, blocked bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBlocked", ctx, userID, blocked)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetBlocked indicates an expected call of SetBlocked.
func (mr *MockAccountsMockRecorder) SetBlocked(ctx, userID, blocked any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBlocked", reflect.TypeOf((*MockAccounts)(nil).SetBlocked), ctx, userID, blocked)
}

// Stats mocks base method.
func (m *MockAccounts) Stats(ctx context.Context, userID string, name string) (*services.Stats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stats", ctx, userID, name)
	ret0, _ := ret[0].(*services.Stats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Stats indicates an expected call of Stats.
func (mr *MockAccountsMockRecorder) Stats(ctx, userID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stats", reflect.TypeOf((*MockAccounts)(nil).Stats), ctx, userID, name)
}

// Touch mocks base method.
func (m *MockAccounts) Touch(ctx context.Context, userID string, name string, command string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Touch", ctx, userID, name, command)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Touch indicates an expected call of Touch.
func (mr *MockAccountsMockRecorder) Touch(ctx, userID, name, command any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Touch", reflect.TypeOf((*MockAccounts)(nil).Touch), ctx, userID, name, command)
}

// MockCatalog is a mock of Catalog interface.
type MockCatalog struct {
	ctrl     *gomock.Controller
	recorder *MockCatalogMockRecorder
	isgomock struct{}
}

// MockCatalogMockRecorder is the mock recorder for MockCatalog.
type MockCatalogMockRecorder struct {
	mock *MockCatalog
}

// NewMockCatalog creates a new mock instance.
func NewMockCatalog(ctrl *gomock.Controller) *MockCatalog {
	mock := &MockCatalog{ctrl: ctrl}
	mock.recorder = &MockCatalogMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCatalog) EXPECT() *MockCatalogMockRecorder {
	return m.recorder
}

// FindByName mocks base method.
func (m *MockCatalog) FindByName(ctx context.Context, name string) (*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByName", ctx, name)
	ret0, _ := ret[0].(*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByName indicates an expected call of FindByName.
func (mr *MockCatalogMockRecorder) FindByName(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByName", reflect.TypeOf((*MockCatalog)(nil).FindByName), ctx, name)
}

// MockRenderer is a mock of Renderer interface.
type MockRenderer struct {
	ctrl     *gomock.Controller
	recorder *MockRendererMockRecorder
	isgomock struct{}
}

// MockRendererMockRecorder is the mock recorder for MockRenderer.
type MockRendererMockRecorder struct {
	mock *MockRenderer
}

// NewMockRenderer creates a new mock instance.
func NewMockRenderer(ctrl *gomock.Controller) *MockRenderer {
	mock := &MockRenderer{ctrl: ctrl}
	mock.recorder = &MockRendererMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRenderer) EXPECT() *MockRendererMockRecorder {
	return m.recorder
}

// Render mocks base method.
func (m *MockRenderer) Render(ctx context.Context, card *models.Card, uc *models.UserCard) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Render", ctx, card, uc)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Render indicates an expected call of Render.
func (mr *MockRendererMockRecorder) Render(ctx, card, uc any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Render", reflect.TypeOf((*MockRenderer)(nil).Render), ctx, card, uc)
}
