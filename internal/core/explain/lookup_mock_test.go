package explain_test

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	explain "github.com/LeJamon/goXRPLwallet/internal/core/explain"
)

// MockLedgerLookup is a mock of LedgerLookup interface.
type MockLedgerLookup struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerLookupMockRecorder
}

// MockLedgerLookupMockRecorder is the mock recorder for MockLedgerLookup.
type MockLedgerLookupMockRecorder struct {
	mock *MockLedgerLookup
}

// NewMockLedgerLookup creates a new mock instance.
func NewMockLedgerLookup(ctrl *gomock.Controller) *MockLedgerLookup {
	mock := &MockLedgerLookup{ctrl: ctrl}
	mock.recorder = &MockLedgerLookupMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerLookup) EXPECT() *MockLedgerLookupMockRecorder {
	return m.recorder
}

// AccountInfo mocks base method.
func (m *MockLedgerLookup) AccountInfo(ctx context.Context, account string) (*explain.AccountInfo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AccountInfo", ctx, account)
	ret0, _ := ret[0].(*explain.AccountInfo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AccountInfo indicates an expected call of AccountInfo.
func (mr *MockLedgerLookupMockRecorder) AccountInfo(ctx, account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AccountInfo", reflect.TypeOf((*MockLedgerLookup)(nil).AccountInfo), ctx, account)
}

// Reserves mocks base method.
func (m *MockLedgerLookup) Reserves(ctx context.Context) (*explain.Reserves, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reserves", ctx)
	ret0, _ := ret[0].(*explain.Reserves)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Reserves indicates an expected call of Reserves.
func (mr *MockLedgerLookupMockRecorder) Reserves(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reserves", reflect.TypeOf((*MockLedgerLookup)(nil).Reserves), ctx)
}

// TrustLines mocks base method.
func (m *MockLedgerLookup) TrustLines(ctx context.Context, account string) ([]explain.TrustLine, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TrustLines", ctx, account)
	ret0, _ := ret[0].([]explain.TrustLine)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TrustLines indicates an expected call of TrustLines.
func (mr *MockLedgerLookupMockRecorder) TrustLines(ctx, account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TrustLines", reflect.TypeOf((*MockLedgerLookup)(nil).TrustLines), ctx, account)
}
