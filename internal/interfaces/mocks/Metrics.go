package mocks

import (
	prometheus "github.com/prometheus/client_golang/prometheus"
	mock "github.com/stretchr/testify/mock"
)

// MockMetrics is a mock type for the Metrics type
type MockMetrics struct {
	mock.Mock
}

// GetRegistry provides a mock function with no fields
func (_m *MockMetrics) GetRegistry() *prometheus.Registry {
	ret := _m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(*prometheus.Registry)
}

// IncCounterVec provides a mock function with given fields: name, labels
func (_m *MockMetrics) IncCounterVec(name string, labels ...string) {
	_m.Called(name, labels)
}

// ObserveHistogramVec provides a mock function with given fields: name, value, labels
func (_m *MockMetrics) ObserveHistogramVec(name string, value float64, labels ...string) {
	_m.Called(name, value, labels)
}

// RegisterCounterVec provides a mock function with given fields: name, help, labels
func (_m *MockMetrics) RegisterCounterVec(name string, help string, labels []string) error {
	ret := _m.Called(name, help, labels)
	return ret.Error(0)
}

// RegisterGauge provides a mock function with given fields: name, help
func (_m *MockMetrics) RegisterGauge(name string, help string) error {
	ret := _m.Called(name, help)
	return ret.Error(0)
}

// RegisterHistogramVec provides a mock function with given fields: name, help, buckets, labels
func (_m *MockMetrics) RegisterHistogramVec(name string, help string, buckets []float64, labels []string) error {
	ret := _m.Called(name, help, buckets, labels)
	return ret.Error(0)
}

// SetGauge provides a mock function with given fields: name, value
func (_m *MockMetrics) SetGauge(name string, value float64) {
	_m.Called(name, value)
}

// NewMockMetrics creates a new instance of MockMetrics. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMetrics(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMetrics {
	m := &MockMetrics{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
