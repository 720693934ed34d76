package doctor

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCheck struct {
	mock.Mock
}

func (m *mockCheck) Name() string     { return m.Called().String(0) }
func (m *mockCheck) Category() string { return m.Called().String(0) }

func (m *mockCheck) Run(ctx context.Context) *CheckResult {
	res, _ := m.Called(ctx).Get(0).(*CheckResult)
	return res
}

func newMockCheck(t *testing.T, name string, result *CheckResult) *mockCheck {
	t.Helper()
	m := &mockCheck{}
	m.On("Name").Return(name).Maybe()
	m.On("Category").Return("test").Maybe()
	m.On("Run", mock.Anything).Return(result).Once()
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func TestRunner_RunsInOrder(t *testing.T) {
	r := NewRunner(
		newMockCheck(t, "first", &CheckResult{Status: SeverityPass}),
		newMockCheck(t, "second", &CheckResult{Status: SeverityWarning}),
	)
	r.AddCheck(newMockCheck(t, "third", &CheckResult{Status: SeverityInfo}))

	report := r.Run(context.Background())

	require.Len(t, report.Results, 3)
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, report.Results[i].Name)
		assert.Equal(t, "test", report.Results[i].Category)
	}
	assert.Equal(t, Summary{Passed: 1, Info: 1, Warnings: 1}, report.Summary)
	assert.True(t, report.HasWarnings())
	assert.False(t, report.HasErrors())
}

func TestRunner_NilResult(t *testing.T) {
	report := NewRunner(newMockCheck(t, "broken", nil)).Run(context.Background())

	require.Len(t, report.Results, 1)
	assert.Equal(t, SeverityError, report.Results[0].Status)
	assert.True(t, report.HasErrors())
}

type panicCheck struct{}

func (panicCheck) Name() string                     { return "panics" }
func (panicCheck) Category() string                 { return "test" }
func (panicCheck) Run(context.Context) *CheckResult { panic("boom") }

func TestRunner_RecoversPanics(t *testing.T) {
	report := NewRunner(panicCheck{}, newMockCheck(t, "after", &CheckResult{Status: SeverityPass})).
		Run(context.Background())

	require.Len(t, report.Results, 2)
	assert.Equal(t, SeverityError, report.Results[0].Status)
	assert.Contains(t, report.Results[0].Message, "boom")
	assert.Equal(t, SeverityPass, report.Results[1].Status)
}

func TestRunner_Timestamp(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r := NewRunner()
	r.now = func() time.Time { return fixed }

	report := r.Run(context.Background())
	assert.Equal(t, fixed, report.Timestamp)
	assert.Empty(t, report.Results)
}

func TestSeverity_JSON(t *testing.T) {
	for sev := SeverityPass; sev <= SeverityError; sev++ {
		data, err := json.Marshal(sev)
		require.NoError(t, err)
		assert.JSONEq(t, `"`+sev.String()+`"`, string(data))

		var got Severity
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, sev, got)
	}

	var s Severity
	assert.Error(t, json.Unmarshal([]byte(`"fatal"`), &s))
	assert.Equal(t, "unknown", Severity(42).String())
}
