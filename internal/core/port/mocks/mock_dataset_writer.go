package mocks

import (
	context "context"
	time "time"

	calendar "marketing-datagen/internal/calendar"
	domain "marketing-datagen/internal/core/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockDatasetWriter is a mock type for the DatasetWriter type
type MockDatasetWriter struct {
	mock.Mock
}

type MockDatasetWriter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDatasetWriter) EXPECT() *MockDatasetWriter_Expecter {
	return &MockDatasetWriter_Expecter{mock: &_m.Mock}
}

// WriteAds provides a mock function with given fields: ctx, ads
func (_m *MockDatasetWriter) WriteAds(ctx context.Context, ads []domain.Ad) error {
	ret := _m.Called(ctx, ads)
	if rf, ok := ret.Get(0).(func(context.Context, []domain.Ad) error); ok {
		return rf(ctx, ads)
	}
	return ret.Error(0)
}

// MockDatasetWriter_WriteAds_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WriteAds'
type MockDatasetWriter_WriteAds_Call struct {
	*mock.Call
}

// WriteAds is a helper method to define mock.On call
func (_e *MockDatasetWriter_Expecter) WriteAds(ctx interface{}, ads interface{}) *MockDatasetWriter_WriteAds_Call {
	return &MockDatasetWriter_WriteAds_Call{Call: _e.mock.On("WriteAds", ctx, ads)}
}

func (_c *MockDatasetWriter_WriteAds_Call) Run(run func(ctx context.Context, ads []domain.Ad)) *MockDatasetWriter_WriteAds_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]domain.Ad))
	})
	return _c
}

func (_c *MockDatasetWriter_WriteAds_Call) Return(_a0 error) *MockDatasetWriter_WriteAds_Call {
	_c.Call.Return(_a0)
	return _c
}

// WriteWeeklyImpressions provides a mock function with given fields: ctx, weekStart, imps
func (_m *MockDatasetWriter) WriteWeeklyImpressions(ctx context.Context, weekStart time.Time, imps []domain.Impression) error {
	ret := _m.Called(ctx, weekStart, imps)
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, []domain.Impression) error); ok {
		return rf(ctx, weekStart, imps)
	}
	return ret.Error(0)
}

// MockDatasetWriter_WriteWeeklyImpressions_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WriteWeeklyImpressions'
type MockDatasetWriter_WriteWeeklyImpressions_Call struct {
	*mock.Call
}

// WriteWeeklyImpressions is a helper method to define mock.On call
func (_e *MockDatasetWriter_Expecter) WriteWeeklyImpressions(ctx interface{}, weekStart interface{}, imps interface{}) *MockDatasetWriter_WriteWeeklyImpressions_Call {
	return &MockDatasetWriter_WriteWeeklyImpressions_Call{Call: _e.mock.On("WriteWeeklyImpressions", ctx, weekStart, imps)}
}

func (_c *MockDatasetWriter_WriteWeeklyImpressions_Call) Run(run func(ctx context.Context, weekStart time.Time, imps []domain.Impression)) *MockDatasetWriter_WriteWeeklyImpressions_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(time.Time), args[2].([]domain.Impression))
	})
	return _c
}

func (_c *MockDatasetWriter_WriteWeeklyImpressions_Call) Return(_a0 error) *MockDatasetWriter_WriteWeeklyImpressions_Call {
	_c.Call.Return(_a0)
	return _c
}

// WriteMonthlyImpressions provides a mock function with given fields: ctx, month, imps
func (_m *MockDatasetWriter) WriteMonthlyImpressions(ctx context.Context, month calendar.Month, imps []domain.Impression) error {
	ret := _m.Called(ctx, month, imps)
	if rf, ok := ret.Get(0).(func(context.Context, calendar.Month, []domain.Impression) error); ok {
		return rf(ctx, month, imps)
	}
	return ret.Error(0)
}

// MockDatasetWriter_WriteMonthlyImpressions_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WriteMonthlyImpressions'
type MockDatasetWriter_WriteMonthlyImpressions_Call struct {
	*mock.Call
}

// WriteMonthlyImpressions is a helper method to define mock.On call
func (_e *MockDatasetWriter_Expecter) WriteMonthlyImpressions(ctx interface{}, month interface{}, imps interface{}) *MockDatasetWriter_WriteMonthlyImpressions_Call {
	return &MockDatasetWriter_WriteMonthlyImpressions_Call{Call: _e.mock.On("WriteMonthlyImpressions", ctx, month, imps)}
}

func (_c *MockDatasetWriter_WriteMonthlyImpressions_Call) Run(run func(ctx context.Context, month calendar.Month, imps []domain.Impression)) *MockDatasetWriter_WriteMonthlyImpressions_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(calendar.Month), args[2].([]domain.Impression))
	})
	return _c
}

func (_c *MockDatasetWriter_WriteMonthlyImpressions_Call) Return(_a0 error) *MockDatasetWriter_WriteMonthlyImpressions_Call {
	_c.Call.Return(_a0)
	return _c
}

// WriteConversions provides a mock function with given fields: ctx, month, convs
func (_m *MockDatasetWriter) WriteConversions(ctx context.Context, month calendar.Month, convs []domain.Conversion) error {
	ret := _m.Called(ctx, month, convs)
	if rf, ok := ret.Get(0).(func(context.Context, calendar.Month, []domain.Conversion) error); ok {
		return rf(ctx, month, convs)
	}
	return ret.Error(0)
}

// MockDatasetWriter_WriteConversions_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WriteConversions'
type MockDatasetWriter_WriteConversions_Call struct {
	*mock.Call
}

// WriteConversions is a helper method to define mock.On call
func (_e *MockDatasetWriter_Expecter) WriteConversions(ctx interface{}, month interface{}, convs interface{}) *MockDatasetWriter_WriteConversions_Call {
	return &MockDatasetWriter_WriteConversions_Call{Call: _e.mock.On("WriteConversions", ctx, month, convs)}
}

func (_c *MockDatasetWriter_WriteConversions_Call) Run(run func(ctx context.Context, month calendar.Month, convs []domain.Conversion)) *MockDatasetWriter_WriteConversions_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(calendar.Month), args[2].([]domain.Conversion))
	})
	return _c
}

func (_c *MockDatasetWriter_WriteConversions_Call) Return(_a0 error) *MockDatasetWriter_WriteConversions_Call {
	_c.Call.Return(_a0)
	return _c
}

// WriteRevenue provides a mock function with given fields: ctx, day, txns
func (_m *MockDatasetWriter) WriteRevenue(ctx context.Context, day time.Time, txns []domain.RevenueTransaction) error {
	ret := _m.Called(ctx, day, txns)
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, []domain.RevenueTransaction) error); ok {
		return rf(ctx, day, txns)
	}
	return ret.Error(0)
}

// MockDatasetWriter_WriteRevenue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WriteRevenue'
type MockDatasetWriter_WriteRevenue_Call struct {
	*mock.Call
}

// WriteRevenue is a helper method to define mock.On call
func (_e *MockDatasetWriter_Expecter) WriteRevenue(ctx interface{}, day interface{}, txns interface{}) *MockDatasetWriter_WriteRevenue_Call {
	return &MockDatasetWriter_WriteRevenue_Call{Call: _e.mock.On("WriteRevenue", ctx, day, txns)}
}

func (_c *MockDatasetWriter_WriteRevenue_Call) Run(run func(ctx context.Context, day time.Time, txns []domain.RevenueTransaction)) *MockDatasetWriter_WriteRevenue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(time.Time), args[2].([]domain.RevenueTransaction))
	})
	return _c
}

func (_c *MockDatasetWriter_WriteRevenue_Call) Return(_a0 error) *MockDatasetWriter_WriteRevenue_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockDatasetWriter creates a new instance of MockDatasetWriter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDatasetWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDatasetWriter {
	m := &MockDatasetWriter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
