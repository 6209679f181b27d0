package eventlog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gasproni/eventlog"
)

func TestCorrelationIDStartsUnset(t *testing.T) {
	corr := eventlog.NewCorrelationID(func() string { return "generated" })

	_, ok := corr.Get()
	require.False(t, ok)
}

func TestCorrelationIDSetAndGet(t *testing.T) {
	corr := eventlog.NewCorrelationID(func() string { return "generated" })

	corr.Set("req-1")

	got, ok := corr.Get()
	require.True(t, ok)
	require.Equal(t, "req-1", got)
}

func TestCorrelationIDResetClearsValue(t *testing.T) {
	corr := eventlog.NewCorrelationID(func() string { return "generated" })
	corr.Set("something")

	corr.Reset()

	_, ok := corr.Get()
	require.False(t, ok)
}

func TestCorrelationIDGeneratesWhenSetEmpty(t *testing.T) {
	corr := eventlog.NewCorrelationID(func() string { return "fresh id" })

	corr.Set("")

	got, ok := corr.Get()
	require.True(t, ok)
	require.Equal(t, "fresh id", got)
}

func TestCorrelationIDDefaultGeneratorIsUUID(t *testing.T) {
	corr := eventlog.NewCorrelationID(nil)

	corr.Set("")

	got, ok := corr.Get()
	require.True(t, ok)
	require.Regexp(t,
		"^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$",
		got)
}
