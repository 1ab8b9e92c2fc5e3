package mock

import (
	context "context"
	reflect "reflect"

	trade "github.com/ellavondegurechaff/levibot/levibot/game/trade"
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

// ApplyTrade mocks base method.
func (m *MockLedger) ApplyTrade(ctx context.Context, plan *trade.Settlement) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyTrade", ctx, plan)
	ret0, _ := ret[0].(error)
	return ret0
}

// ApplyTrade indicates an expected call of ApplyTrade.
func (mr *MockLedgerMockRecorder) ApplyTrade(ctx, plan any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyTrade", reflect.TypeOf((*MockLedger)(nil).ApplyTrade), ctx, plan)
}

// Holdings mocks base method.
func (m *MockLedger) Holdings(ctx context.Context, s trade.Session) (trade.Holdings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Holdings", ctx, s)
	ret0, _ := ret[0].(trade.Holdings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Holdings indicates an expected call of Holdings.
func (mr *MockLedgerMockRecorder) Holdings(ctx, s any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Holdings", reflect.TypeOf((*MockLedger)(nil).Holdings), ctx, s)
}

// Session mocks base method.
func (m *MockLedger) Session(ctx context.Context, tradeID string) (trade.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Session", ctx, tradeID)
	ret0, _ := ret[0].(trade.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Session indicates an expected call of Session.
func (mr *MockLedgerMockRecorder) Session(ctx, tradeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Session", reflect.TypeOf((*MockLedger)(nil).Session), ctx, tradeID)
}
