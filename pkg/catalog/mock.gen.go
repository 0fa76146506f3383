// Code generated by MockGen. DO NOT EDIT.
// Source: catalog.go
//
// Generated by this command:
//
//	mockgen -source=catalog.go -destination=mock.gen.go -package=catalog
//

// Package catalog is a generated GoMock package.
package catalog

import (
	reflect "reflect"

	deploy "github.com/gemsw/gemver/pkg/deploy"
	gomock "go.uber.org/mock/gomock"
)

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

// EpicsVersions mocks base method.
func (m_2 *MockCatalog) EpicsVersions(m deploy.Maturity) []string {
	m_2.ctrl.T.Helper()
	ret := m_2.ctrl.Call(m_2, "EpicsVersions", m)
	ret0, _ := ret[0].([]string)
	return ret0
}

// EpicsVersions indicates an expected call of EpicsVersions.
func (mr *MockCatalogMockRecorder) EpicsVersions(m any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EpicsVersions", reflect.TypeOf((*MockCatalog)(nil).EpicsVersions), m)
}

// IOCVersions mocks base method.
func (m *MockCatalog) IOCVersions(target, epics, site string) []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IOCVersions", target, epics, site)
	ret0, _ := ret[0].([]string)
	return ret0
}

// IOCVersions indicates an expected call of IOCVersions.
func (mr *MockCatalogMockRecorder) IOCVersions(target, epics, site any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IOCVersions", reflect.TypeOf((*MockCatalog)(nil).IOCVersions), target, epics, site)
}

// IOCs mocks base method.
func (m_2 *MockCatalog) IOCs(epics string, m deploy.Maturity) []string {
	m_2.ctrl.T.Helper()
	ret := m_2.ctrl.Call(m_2, "IOCs", epics, m)
	ret0, _ := ret[0].([]string)
	return ret0
}

// IOCs indicates an expected call of IOCs.
func (mr *MockCatalogMockRecorder) IOCs(epics, m any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IOCs", reflect.TypeOf((*MockCatalog)(nil).IOCs), epics, m)
}

// LatestEpicsVersion mocks base method.
func (m_2 *MockCatalog) LatestEpicsVersion(m deploy.Maturity) string {
	m_2.ctrl.T.Helper()
	ret := m_2.ctrl.Call(m_2, "LatestEpicsVersion", m)
	ret0, _ := ret[0].(string)
	return ret0
}

// LatestEpicsVersion indicates an expected call of LatestEpicsVersion.
func (mr *MockCatalogMockRecorder) LatestEpicsVersion(m any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestEpicsVersion", reflect.TypeOf((*MockCatalog)(nil).LatestEpicsVersion), m)
}

// RedirectorLinks mocks base method.
func (m *MockCatalog) RedirectorLinks() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RedirectorLinks")
	ret0, _ := ret[0].([]string)
	return ret0
}

// RedirectorLinks indicates an expected call of RedirectorLinks.
func (mr *MockCatalogMockRecorder) RedirectorLinks() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RedirectorLinks", reflect.TypeOf((*MockCatalog)(nil).RedirectorLinks))
}

// SupportModuleVersions mocks base method.
func (m *MockCatalog) SupportModuleVersions(name, epics string) []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SupportModuleVersions", name, epics)
	ret0, _ := ret[0].([]string)
	return ret0
}

// SupportModuleVersions indicates an expected call of SupportModuleVersions.
func (mr *MockCatalogMockRecorder) SupportModuleVersions(name, epics any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SupportModuleVersions", reflect.TypeOf((*MockCatalog)(nil).SupportModuleVersions), name, epics)
}

// SupportModules mocks base method.
func (m_2 *MockCatalog) SupportModules(epics string, m deploy.Maturity) []string {
	m_2.ctrl.T.Helper()
	ret := m_2.ctrl.Call(m_2, "SupportModules", epics, m)
	ret0, _ := ret[0].([]string)
	return ret0
}

// SupportModules indicates an expected call of SupportModules.
func (mr *MockCatalogMockRecorder) SupportModules(epics, m any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SupportModules", reflect.TypeOf((*MockCatalog)(nil).SupportModules), epics, m)
}
