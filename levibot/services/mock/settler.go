package mock

import (
	context "context"
	reflect "reflect"

	battle "github.com/ellavondegurechaff/levibot/levibot/game/battle"
	deck "github.com/ellavondegurechaff/levibot/levibot/game/deck"
	trade "github.com/ellavondegurechaff/levibot/levibot/game/trade"
	gomock "go.uber.org/mock/gomock"
)

// MockSettler is a mock of Settler interface.
type MockSettler struct {
	ctrl     *gomock.Controller
	recorder *MockSettlerMockRecorder
	isgomock struct{}
}

// MockSettlerMockRecorder is the mock recorder for MockSettler.
type MockSettlerMockRecorder struct {
	mock *MockSettler
}

// NewMockSettler creates a new mock instance.
func NewMockSettler(ctrl *gomock.Controller) *MockSettler {
	mock := &MockSettler{ctrl: ctrl}
	mock.recorder = &MockSettlerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSettler) EXPECT() *MockSettlerMockRecorder {
	return m.recorder
}

// EditDeck mocks base method.
func (m *MockSettler) EditDeck(ctx context.Context, fn func(context.Context, deck.Ledger) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EditDeck", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// EditDeck indicates an expected call of EditDeck.
func (mr *MockSettlerMockRecorder) EditDeck(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EditDeck", reflect.TypeOf((*MockSettler)(nil).EditDeck), ctx, fn)
}

// SettleBattle mocks base method.
func (m *MockSettler) SettleBattle(ctx context.Context, fn func(context.Context, battle.Ledger) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SettleBattle", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// SettleBattle indicates an expected call of SettleBattle.
func (mr *MockSettlerMockRecorder) SettleBattle(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SettleBattle", reflect.TypeOf((*MockSettler)(nil).SettleBattle), ctx, fn)
}

// SettleTrade mocks base method.
func (m *MockSettler) SettleTrade(ctx context.Context, fn func(context.Context, trade.Ledger) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SettleTrade", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// SettleTrade indicates an expected call of SettleTrade.
func (mr *MockSettlerMockRecorder) SettleTrade(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SettleTrade", reflect.TypeOf((*MockSettler)(nil).SettleTrade), ctx, fn)
}
