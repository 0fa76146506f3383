// Code generated by MockGen. DO NOT EDIT.
// Source: graph.go
//
// Generated by this command:
//
//	mockgen -source=graph.go -destination=mock.gen.go -package=depgraph
//

// Package depgraph is a generated GoMock package.
package depgraph

import (
	reflect "reflect"

	deploy "github.com/gemsw/gemver/pkg/deploy"
	gomock "go.uber.org/mock/gomock"
)

// MockGraph is a mock of Graph interface.
type MockGraph struct {
	ctrl     *gomock.Controller
	recorder *MockGraphMockRecorder
	isgomock struct{}
}

// MockGraphMockRecorder is the mock recorder for MockGraph.
type MockGraphMockRecorder struct {
	mock *MockGraph
}

// NewMockGraph creates a new mock instance.
func NewMockGraph(ctrl *gomock.Controller) *MockGraph {
	mock := &MockGraph{ctrl: ctrl}
	mock.recorder = &MockGraphMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGraph) EXPECT() *MockGraphMockRecorder {
	return m.recorder
}

// DependenciesOf mocks base method.
func (m *MockGraph) DependenciesOf(e deploy.Entity) (DependencyMap, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DependenciesOf", e)
	ret0, _ := ret[0].(DependencyMap)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DependenciesOf indicates an expected call of DependenciesOf.
func (mr *MockGraphMockRecorder) DependenciesOf(e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DependenciesOf", reflect.TypeOf((*MockGraph)(nil).DependenciesOf), e)
}

// SecondHop mocks base method.
func (m *MockGraph) SecondHop(e deploy.Entity) (map[string]DependencyMap, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SecondHop", e)
	ret0, _ := ret[0].(map[string]DependencyMap)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SecondHop indicates an expected call of SecondHop.
func (mr *MockGraphMockRecorder) SecondHop(e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SecondHop", reflect.TypeOf((*MockGraph)(nil).SecondHop), e)
}
