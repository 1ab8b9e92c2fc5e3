package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/ellavondegurechaff/levibot/levibot/database/models"
	repositories "github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"
)

// MockBattleRepository is a mock of BattleRepository interface.
type MockBattleRepository struct {
	ctrl     *gomock.Controller
	recorder *MockBattleRepositoryMockRecorder
	isgomock struct{}
}

// MockBattleRepositoryMockRecorder is the mock recorder for MockBattleRepository.
type MockBattleRepositoryMockRecorder struct {
	mock *MockBattleRepository
}

// NewMockBattleRepository creates a new mock instance.
func NewMockBattleRepository(ctrl *gomock.Controller) *MockBattleRepository {
	mock := &MockBattleRepository{ctrl: ctrl}
	mock.recorder = &MockBattleRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBattleRepository) EXPECT() *MockBattleRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockBattleRepository) Create(ctx context.Context, b *models.Battle) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, b)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockBattleRepositoryMockRecorder) Create(ctx, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockBattleRepository)(nil).Create), ctx, b)
}

// ExpireDue mocks base method.
func (m *MockBattleRepository) ExpireDue(ctx context.Context, now time.Time) ([]*models.Battle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExpireDue", ctx, now)
	ret0, _ := ret[0].([]*models.Battle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExpireDue indicates an expected call of ExpireDue.
func (mr *MockBattleRepositoryMockRecorder) ExpireDue(ctx, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExpireDue", reflect.TypeOf((*MockBattleRepository)(nil).ExpireDue), ctx, now)
}

// GetByID mocks base method.
func (m *MockBattleRepository) GetByID(ctx context.Context, id string) (*models.Battle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Battle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockBattleRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockBattleRepository)(nil).GetByID), ctx, id)
}

// GetPendingFor mocks base method.
func (m *MockBattleRepository) GetPendingFor(ctx context.Context, userID string) (*models.Battle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPendingFor", ctx, userID)
	ret0, _ := ret[0].(*models.Battle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPendingFor indicates an expected call of GetPendingFor.
func (mr *MockBattleRepositoryMockRecorder) GetPendingFor(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPendingFor", reflect.TypeOf((*MockBattleRepository)(nil).GetPendingFor), ctx, userID)
}

// Start mocks base method.
func (m *MockBattleRepository) Start(ctx context.Context, id string, opponentDeck []string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Start", ctx, id, opponentDeck)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Start indicates an expected call of Start.
func (mr *MockBattleRepositoryMockRecorder) Start(ctx, id, opponentDeck any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockBattleRepository)(nil).Start), ctx, id, opponentDeck)
}

// Transition mocks base method.
func (m *MockBattleRepository) Transition(ctx context.Context, id string, from models.BattleStatus, to models.BattleStatus) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transition", ctx, id, from, to)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Transition indicates an expected call of Transition.
func (mr *MockBattleRepositoryMockRecorder) Transition(ctx, id, from, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transition", reflect.TypeOf((*MockBattleRepository)(nil).Transition), ctx, id, from, to)
}

// MockCardRepository is a mock of CardRepository interface.
type MockCardRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCardRepositoryMockRecorder
	isgomock struct{}
}

// MockCardRepositoryMockRecorder is the mock recorder for MockCardRepository.
type MockCardRepositoryMockRecorder struct {
	mock *MockCardRepository
}

// NewMockCardRepository creates a new mock instance.
func NewMockCardRepository(ctrl *gomock.Controller) *MockCardRepository {
	mock := &MockCardRepository{ctrl: ctrl}
	mock.recorder = &MockCardRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCardRepository) EXPECT() *MockCardRepositoryMockRecorder {
	return m.recorder
}

// Animes mocks base method.
func (m *MockCardRepository) Animes(ctx context.Context) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Animes", ctx)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Animes indicates an expected call of Animes.
func (mr *MockCardRepositoryMockRecorder) Animes(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Animes", reflect.TypeOf((*MockCardRepository)(nil).Animes), ctx)
}

// BulkUpsert mocks base method.
func (m *MockCardRepository) BulkUpsert(ctx context.Context, cards []*models.Card) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BulkUpsert", ctx, cards)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BulkUpsert indicates an expected call of BulkUpsert.
func (mr *MockCardRepositoryMockRecorder) BulkUpsert(ctx, cards any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BulkUpsert", reflect.TypeOf((*MockCardRepository)(nil).BulkUpsert), ctx, cards)
}

// Count mocks base method.
func (m *MockCardRepository) Count(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockCardRepositoryMockRecorder) Count(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockCardRepository)(nil).Count), ctx)
}

// Create mocks base method.
func (m *MockCardRepository) Create(ctx context.Context, card *models.Card) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, card)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockCardRepositoryMockRecorder) Create(ctx, card any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCardRepository)(nil).Create), ctx, card)
}

// GetAll mocks base method.
func (m *MockCardRepository) GetAll(ctx context.Context) ([]*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx)
	ret0, _ := ret[0].([]*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockCardRepositoryMockRecorder) GetAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockCardRepository)(nil).GetAll), ctx)
}

// GetByAnimeAndRarity mocks base method.
func (m *MockCardRepository) GetByAnimeAndRarity(ctx context.Context, anime string, rarity string) ([]*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByAnimeAndRarity", ctx, anime, rarity)
	ret0, _ := ret[0].([]*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByAnimeAndRarity indicates an expected call of GetByAnimeAndRarity.
func (mr *MockCardRepositoryMockRecorder) GetByAnimeAndRarity(ctx, anime, rarity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByAnimeAndRarity", reflect.TypeOf((*MockCardRepository)(nil).GetByAnimeAndRarity), ctx, anime, rarity)
}

// GetByID mocks base method.
func (m *MockCardRepository) GetByID(ctx context.Context, id string) (*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockCardRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockCardRepository)(nil).GetByID), ctx, id)
}

// GetByIDs mocks base method.
func (m *MockCardRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDs", ctx, ids)
	ret0, _ := ret[0].([]*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDs indicates an expected call of GetByIDs.
func (mr *MockCardRepositoryMockRecorder) GetByIDs(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDs", reflect.TypeOf((*MockCardRepository)(nil).GetByIDs), ctx, ids)
}

// GetByRarity mocks base method.
func (m *MockCardRepository) GetByRarity(ctx context.Context, rarity string) ([]*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByRarity", ctx, rarity)
	ret0, _ := ret[0].([]*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByRarity indicates an expected call of GetByRarity.
func (mr *MockCardRepositoryMockRecorder) GetByRarity(ctx, rarity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByRarity", reflect.TypeOf((*MockCardRepository)(nil).GetByRarity), ctx, rarity)
}

// SearchByName mocks base method.
func (m *MockCardRepository) SearchByName(ctx context.Context, query string, limit int) ([]*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchByName", ctx, query, limit)
	ret0, _ := ret[0].([]*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchByName indicates an expected call of SearchByName.
func (mr *MockCardRepositoryMockRecorder) SearchByName(ctx, query, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchByName", reflect.TypeOf((*MockCardRepository)(nil).SearchByName), ctx, query, limit)
}

// MockTradeRepository is a mock of TradeRepository interface.
type MockTradeRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTradeRepositoryMockRecorder
	isgomock struct{}
}

// MockTradeRepositoryMockRecorder is the mock recorder for MockTradeRepository.
type MockTradeRepositoryMockRecorder struct {
	mock *MockTradeRepository
}

// NewMockTradeRepository creates a new mock instance.
func NewMockTradeRepository(ctrl *gomock.Controller) *MockTradeRepository {
	mock := &MockTradeRepository{ctrl: ctrl}
	mock.recorder = &MockTradeRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTradeRepository) EXPECT() *MockTradeRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockTradeRepository) Create(ctx context.Context, t *models.Trade) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, t)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTradeRepositoryMockRecorder) Create(ctx, t any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTradeRepository)(nil).Create), ctx, t)
}

// ExpireDue mocks base method.
func (m *MockTradeRepository) ExpireDue(ctx context.Context, now time.Time) ([]*models.Trade, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExpireDue", ctx, now)
	ret0, _ := ret[0].([]*models.Trade)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExpireDue indicates an expected call of ExpireDue.
func (mr *MockTradeRepositoryMockRecorder) ExpireDue(ctx, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExpireDue", reflect.TypeOf((*MockTradeRepository)(nil).ExpireDue), ctx, now)
}

// GetByID mocks base method.
func (m *MockTradeRepository) GetByID(ctx context.Context, id string) (*models.Trade, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Trade)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockTradeRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTradeRepository)(nil).GetByID), ctx, id)
}

// GetIncomingFor mocks base method.
func (m *MockTradeRepository) GetIncomingFor(ctx context.Context, userID string) (*models.Trade, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIncomingFor", ctx, userID)
	ret0, _ := ret[0].(*models.Trade)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIncomingFor indicates an expected call of GetIncomingFor.
func (mr *MockTradeRepositoryMockRecorder) GetIncomingFor(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIncomingFor", reflect.TypeOf((*MockTradeRepository)(nil).GetIncomingFor), ctx, userID)
}

// GetOpenFor mocks base method.
func (m *MockTradeRepository) GetOpenFor(ctx context.Context, userID string) (*models.Trade, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOpenFor", ctx, userID)
	ret0, _ := ret[0].(*models.Trade)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOpenFor indicates an expected call of GetOpenFor.
func (mr *MockTradeRepositoryMockRecorder) GetOpenFor(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOpenFor", reflect.TypeOf((*MockTradeRepository)(nil).GetOpenFor), ctx, userID)
}

// Mutate mocks base method.
func (m *MockTradeRepository) Mutate(ctx context.Context, id string, fn func(context.Context, bun.Tx, *models.Trade) error) (*models.Trade, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Mutate", ctx, id, fn)
	ret0, _ := ret[0].(*models.Trade)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Mutate indicates an expected call of Mutate.
func (mr *MockTradeRepositoryMockRecorder) Mutate(ctx, id, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Mutate", reflect.TypeOf((*MockTradeRepository)(nil).Mutate), ctx, id, fn)
}

// Transition mocks base method.
func (m *MockTradeRepository) Transition(ctx context.Context, id string, from models.TradeStatus, to models.TradeStatus) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transition", ctx, id, from, to)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Transition indicates an expected call of Transition.
func (mr *MockTradeRepositoryMockRecorder) Transition(ctx, id, from, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transition", reflect.TypeOf((*MockTradeRepository)(nil).Transition), ctx, id, from, to)
}

// MockUserCardRepository is a mock of UserCardRepository interface.
type MockUserCardRepository struct {
	ctrl     *gomock.Controller
	recorder *MockUserCardRepositoryMockRecorder
	isgomock struct{}
}

// MockUserCardRepositoryMockRecorder is the mock recorder for MockUserCardRepository.
type MockUserCardRepositoryMockRecorder struct {
	mock *MockUserCardRepository
}

// NewMockUserCardRepository creates a new mock instance.
func NewMockUserCardRepository(ctrl *gomock.Controller) *MockUserCardRepository {
	mock := &MockUserCardRepository{ctrl: ctrl}
	mock.recorder = &MockUserCardRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserCardRepository) EXPECT() *MockUserCardRepositoryMockRecorder {
	return m.recorder
}

// BulkInsert mocks base method.
func (m *MockUserCardRepository) BulkInsert(ctx context.Context, cards []*models.UserCard) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BulkInsert", ctx, cards)
	ret0, _ := ret[0].(error)
	return ret0
}

// BulkInsert indicates an expected call of BulkInsert.
func (mr *MockUserCardRepositoryMockRecorder) BulkInsert(ctx, cards any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BulkInsert", reflect.TypeOf((*MockUserCardRepository)(nil).BulkInsert), ctx, cards)
}

// CountByUserID mocks base method.
func (m *MockUserCardRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByUserID", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByUserID indicates an expected call of CountByUserID.
func (mr *MockUserCardRepositoryMockRecorder) CountByUserID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByUserID", reflect.TypeOf((*MockUserCardRepository)(nil).CountByUserID), ctx, userID)
}

// Create mocks base method.
func (m *MockUserCardRepository) Create(ctx context.Context, userCard *models.UserCard) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, userCard)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockUserCardRepositoryMockRecorder) Create(ctx, userCard any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUserCardRepository)(nil).Create), ctx, userCard)
}

// GetAllByUserID mocks base method.
func (m *MockUserCardRepository) GetAllByUserID(ctx context.Context, userID string) ([]*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllByUserID", ctx, userID)
	ret0, _ := ret[0].([]*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllByUserID indicates an expected call of GetAllByUserID.
func (mr *MockUserCardRepositoryMockRecorder) GetAllByUserID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllByUserID", reflect.TypeOf((*MockUserCardRepository)(nil).GetAllByUserID), ctx, userID)
}

// GetByID mocks base method.
func (m *MockUserCardRepository) GetByID(ctx context.Context, id string) (*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockUserCardRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockUserCardRepository)(nil).GetByID), ctx, id)
}

// GetByIDs mocks base method.
func (m *MockUserCardRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDs", ctx, ids)
	ret0, _ := ret[0].([]*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDs indicates an expected call of GetByIDs.
func (mr *MockUserCardRepositoryMockRecorder) GetByIDs(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDs", reflect.TypeOf((*MockUserCardRepository)(nil).GetByIDs), ctx, ids)
}

// GetDeck mocks base method.
func (m *MockUserCardRepository) GetDeck(ctx context.Context, userID string) ([]*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDeck", ctx, userID)
	ret0, _ := ret[0].([]*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDeck indicates an expected call of GetDeck.
func (mr *MockUserCardRepositoryMockRecorder) GetDeck(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDeck", reflect.TypeOf((*MockUserCardRepository)(nil).GetDeck), ctx, userID)
}

// MockUserRepository is a mock of UserRepository interface.
type MockUserRepository struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepositoryMockRecorder
	isgomock struct{}
}

// MockUserRepositoryMockRecorder is the mock recorder for MockUserRepository.
type MockUserRepositoryMockRecorder struct {
	mock *MockUserRepository
}

// NewMockUserRepository creates a new mock instance.
func NewMockUserRepository(ctrl *gomock.Controller) *MockUserRepository {
	mock := &MockUserRepository{ctrl: ctrl}
	mock.recorder = &MockUserRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserRepository) EXPECT() *MockUserRepositoryMockRecorder {
	return m.recorder
}

// BulkInsert mocks base method.
func (m *MockUserRepository) BulkInsert(ctx context.Context, users []*models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BulkInsert", ctx, users)
	ret0, _ := ret[0].(error)
	return ret0
}

// BulkInsert indicates an expected call of BulkInsert.
func (mr *MockUserRepositoryMockRecorder) BulkInsert(ctx, users any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BulkInsert", reflect.TypeOf((*MockUserRepository)(nil).BulkInsert), ctx, users)
}

// GetBalance mocks base method.
func (m *MockUserRepository) GetBalance(ctx context.Context, id string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBalance", ctx, id)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBalance indicates an expected call of GetBalance.
func (mr *MockUserRepositoryMockRecorder) GetBalance(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBalance", reflect.TypeOf((*MockUserRepository)(nil).GetBalance), ctx, id)
}

// GetByID mocks base method.
func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockUserRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockUserRepository)(nil).GetByID), ctx, id)
}

// GetOrCreate mocks base method.
func (m *MockUserRepository) GetOrCreate(ctx context.Context, id string, name string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrCreate", ctx, id, name)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrCreate indicates an expected call of GetOrCreate.
func (mr *MockUserRepositoryMockRecorder) GetOrCreate(ctx, id, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrCreate", reflect.TypeOf((*MockUserRepository)(nil).GetOrCreate), ctx, id, name)
}

// Leaderboard mocks base method.
func (m *MockUserRepository) Leaderboard(ctx context.Context, metric string, limit int) ([]repositories.LeaderboardEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Leaderboard", ctx, metric, limit)
	ret0, _ := ret[0].([]repositories.LeaderboardEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Leaderboard indicates an expected call of Leaderboard.
func (mr *MockUserRepositoryMockRecorder) Leaderboard(ctx, metric, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Leaderboard", reflect.TypeOf((*MockUserRepository)(nil).Leaderboard), ctx, metric, limit)
}

// RecordCommand mocks base method.
func (m *MockUserRepository) RecordCommand(ctx context.Context, id string, name string, command string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordCommand", ctx, id, name, command)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecordCommand indicates an expected call of RecordCommand.
func (mr *MockUserRepositoryMockRecorder) RecordCommand(ctx, id, name, command any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordCommand", reflect.TypeOf((*MockUserRepository)(nil).RecordCommand), ctx, id, name, command)
}

// SetBlocked mocks base method.
func (m *MockUserRepository) SetBlocked(ctx context.Context, id string, blocked bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBlocked", ctx, id, blocked)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetBlocked indicates an expected call of SetBlocked.
func (mr *MockUserRepositoryMockRecorder) SetBlocked(ctx, id, blocked any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBlocked", reflect.TypeOf((*MockUserRepository)(nil).SetBlocked), ctx, id, blocked)
}

// Totals mocks base method.
func (m *MockUserRepository) Totals(ctx context.Context) (*repositories.Totals, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Totals", ctx)
	ret0, _ := ret[0].(*repositories.Totals)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Totals indicates an expected call of Totals.
func (mr *MockUserRepositoryMockRecorder) Totals(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Totals", reflect.TypeOf((*MockUserRepository)(nil).Totals), ctx)
}

// Update mocks base method.
func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockUserRepositoryMockRecorder) Update(ctx, user any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockUserRepository)(nil).Update), ctx, user)
}
