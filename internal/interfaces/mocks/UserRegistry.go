package mocks

import (
	models "github.com/haguru/userdirectory/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// MockUserRegistry is a mock type for the UserRegistry type
type MockUserRegistry struct {
	mock.Mock
}

// ContainsKey provides a mock function with given fields: key
func (_m *MockUserRegistry) ContainsKey(key string) bool {
	ret := _m.Called(key)
	return ret.Get(0).(bool)
}

// Get provides a mock function with given fields: key
func (_m *MockUserRegistry) Get(key string) (models.User, bool) {
	ret := _m.Called(key)
	return ret.Get(0).(models.User), ret.Get(1).(bool)
}

// Len provides a mock function with no fields
func (_m *MockUserRegistry) Len() int {
	ret := _m.Called()
	return ret.Get(0).(int)
}

// List provides a mock function with no fields
func (_m *MockUserRegistry) List() []models.User {
	ret := _m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).([]models.User)
}

// Put provides a mock function with given fields: key, user
func (_m *MockUserRegistry) Put(key string, user models.User) {
	_m.Called(key, user)
}

// PutIfAbsent provides a mock function with given fields: key, user
func (_m *MockUserRegistry) PutIfAbsent(key string, user models.User) bool {
	ret := _m.Called(key, user)
	return ret.Get(0).(bool)
}

// Remove provides a mock function with given fields: key
func (_m *MockUserRegistry) Remove(key string) {
	_m.Called(key)
}

// Update provides a mock function with given fields: key, fn
func (_m *MockUserRegistry) Update(key string, fn func(*models.User)) bool {
	ret := _m.Called(key, fn)
	return ret.Get(0).(bool)
}

// NewMockUserRegistry creates a new instance of MockUserRegistry. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserRegistry(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRegistry {
	m := &MockUserRegistry{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
