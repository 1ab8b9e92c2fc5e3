package mock

import (
	context "context"
	reflect "reflect"

	cardleveling "github.com/ellavondegurechaff/levibot/levibot/cardleveling"
	battle "github.com/ellavondegurechaff/levibot/levibot/game/battle"
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

// ApplyBattle mocks base method.
func (m *MockLedger) ApplyBattle(ctx context.Context, s *battle.Settlement) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyBattle", ctx, s)
	ret0, _ := ret[0].(error)
	return ret0
}

// ApplyBattle indicates an expected call of ApplyBattle.
func (mr *MockLedgerMockRecorder) ApplyBattle(ctx, s any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyBattle", reflect.TypeOf((*MockLedger)(nil).ApplyBattle), ctx, s)
}

// Balance mocks base method.
func (m *MockLedger) Balance(ctx context.Context, userID string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Balance", ctx, userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Balance indicates an expected call of Balance.
func (mr *MockLedgerMockRecorder) Balance(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Balance", reflect.TypeOf((*MockLedger)(nil).Balance), ctx, userID)
}

// Progress mocks base method.
func (m *MockLedger) Progress(ctx context.Context, userCardIDs []string) ([]cardleveling.CardProgress, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Progress", ctx, userCardIDs)
	ret0, _ := ret[0].([]cardleveling.CardProgress)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Progress indicates an expected call of Progress.
func (mr *MockLedgerMockRecorder) Progress(ctx, userCardIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Progress", reflect.TypeOf((*MockLedger)(nil).Progress), ctx, userCardIDs)
}
