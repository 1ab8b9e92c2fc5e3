package mock

import (
	context "context"
	reflect "reflect"

	messenger "github.com/ellavondegurechaff/levibot/levibot/messenger"
	gomock "go.uber.org/mock/gomock"
)

// MockMessenger is a mock of Messenger interface.
type MockMessenger struct {
	ctrl     *gomock.Controller
	recorder *MockMessengerMockRecorder
	isgomock struct{}
}

// MockMessengerMockRecorder is the mock recorder for MockMessenger.
type MockMessengerMockRecorder struct {
	mock *MockMessenger
}

// NewMockMessenger creates a new mock instance.
func NewMockMessenger(ctrl *gomock.Controller) *MockMessenger {
	mock := &MockMessenger{ctrl: ctrl}
	mock.recorder = &MockMessengerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMessenger) EXPECT() *MockMessengerMockRecorder {
	return m.recorder
}

// GetGroupMembers mocks base method.
func (m *MockMessenger) GetGroupMembers(ctx context.Context, groupID string) ([]messenger.Member, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetGroupMembers", ctx, groupID)
	ret0, _ := ret[0].([]messenger.Member)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGroupMembers indicates an expected call of GetGroupMembers.
func (mr *MockMessengerMockRecorder) GetGroupMembers(ctx, groupID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGroupMembers", reflect.TypeOf((*MockMessenger)(nil).GetGroupMembers), ctx, groupID)
}

// OnIncomingMessage mocks base method.
func (m *MockMessenger) OnIncomingMessage(handler func(messenger.IncomingMessage)) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnIncomingMessage", handler)
}

// OnIncomingMessage indicates an expected call of OnIncomingMessage.
func (mr *MockMessengerMockRecorder) OnIncomingMessage(handler any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnIncomingMessage", reflect.TypeOf((*MockMessenger)(nil).OnIncomingMessage), handler)
}

// SendMessage mocks base method.
func (m *MockMessenger) SendMessage(ctx context.Context, target messenger.Target, content messenger.Content) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMessage", ctx, target, content)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendMessage indicates an expected call of SendMessage.
func (mr *MockMessengerMockRecorder) SendMessage(ctx, target, content any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMessage", reflect.TypeOf((*MockMessenger)(nil).SendMessage), ctx, target, content)
}
