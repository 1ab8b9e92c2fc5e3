package mock

import (
	context "context"
	reflect "reflect"

	deck "github.com/ellavondegurechaff/levibot/levibot/game/deck"
	gomock "go.uber.org/mock/gomock"
)

// MockLedger is a mock of Ledger interface.
type MockLedger struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerMockRecorder
	isgomock struct{}
}

// MockLedgerMockRecorder is the mock recorder for MockLedger.
type MockLedgerMockRecorder struct {
	mock *MockLedger
}

// NewMockLedger creates a new mock instance.
func NewMockLedger(ctrl *gomock.Controller) *MockLedger {
	mock := &MockLedger{ctrl: ctrl}
	mock.recorder = &MockLedgerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedger) EXPECT() *MockLedgerMockRecorder {
	return m.recorder
}

// ClearSlots mocks base method.
func (m *MockLedger) ClearSlots(ctx context.Context, userID string, ids []string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearSlots", ctx, userID, ids)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClearSlots indicates an expected call of ClearSlots.
func (mr *MockLedgerMockRecorder) ClearSlots(ctx, userID, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearSlots", reflect.TypeOf((*MockLedger)(nil).ClearSlots), ctx, userID, ids)
}

// LockDeck mocks base method.
func (m *MockLedger) LockDeck(ctx context.Context, userID string) ([]deck.Slot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LockDeck", ctx, userID)
	ret0, _ := ret[0].([]deck.Slot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LockDeck indicates an expected call of LockDeck.
func (mr *MockLedgerMockRecorder) LockDeck(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LockDeck", reflect.TypeOf((*MockLedger)(nil).LockDeck), ctx, userID)
}

// LockOwnedCard mocks base method.
func (m *MockLedger) LockOwnedCard(ctx context.Context, userID, userCardID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LockOwnedCard", ctx, userID, userCardID)
	ret0, _ := ret[0].(error)
	return ret0
}

// LockOwnedCard indicates an expected call of LockOwnedCard.
func (mr *MockLedgerMockRecorder) LockOwnedCard(ctx, userID, userCardID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LockOwnedCard", reflect.TypeOf((*MockLedger)(nil).LockOwnedCard), ctx, userID, userCardID)
}

// WriteSlots mocks base method.
func (m *MockLedger) WriteSlots(ctx context.Context, slots []deck.Slot) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteSlots", ctx, slots)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteSlots indicates an expected call of WriteSlots.
func (mr *MockLedgerMockRecorder) WriteSlots(ctx, slots any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteSlots", reflect.TypeOf((*MockLedger)(nil).WriteSlots), ctx, slots)
}
