package debuggler_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/0xalexb/debuggler"
	"github.com/0xalexb/debuggler/logging"
	"github.com/0xalexb/debuggler/namespace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModule_ProvidesFactory(t *testing.T) {
	t.Parallel()

	var factory *debuggler.Factory

	app := fxtest.New(t,
		debuggler.Module(debuggler.WithFilter("")),
		fx.Populate(&factory),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	require.NotNil(t, factory)

	ns, err := factory.Resolve("", namespace.Fixed("TEST"))
	require.NoError(t, err)
	assert.Equal(t, "TEST", ns)
}

func TestModule_UsesContainerLogger(t *testing.T) {
	t.Parallel()

	var (
		buf     bytes.Buffer
		factory *debuggler.Factory
	)

	logger := logging.NewLogger(logging.Config{Level: "debug"}, &buf)

	app := fxtest.New(t,
		fx.Supply(logger),
		debuggler.Module(debuggler.WithFilter("")),
		fx.Populate(&factory),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	_, err := factory.Resolve("", namespace.Fixed("TEST"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "skipping resolution")
}

func TestModule_ExplicitLoggerWins(t *testing.T) {
	t.Parallel()

	var (
		containerBuf bytes.Buffer
		explicitBuf  bytes.Buffer
		factory      *debuggler.Factory
	)

	app := fxtest.New(t,
		fx.Supply(logging.NewLogger(logging.Config{Level: "debug"}, &containerBuf)),
		debuggler.Module(
			debuggler.WithFilter(""),
			debuggler.WithLogger(slog.New(slog.NewJSONHandler(&explicitBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		),
		fx.Populate(&factory),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	_, err := factory.Resolve("", namespace.Fixed("TEST"))
	require.NoError(t, err)

	assert.Empty(t, containerBuf.String())
	assert.Contains(t, explicitBuf.String(), "skipping resolution")
}
