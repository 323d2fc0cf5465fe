package demo_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/askiada/go-bootstrapper/internal/demo"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/configuration"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
)

const sections = `
section "Store" {
  path    = "/tmp/demo.db"
  timeout = "3s"
}

section "Cache" {
  size = 256
  ttl  = "1m"
}

section "http" {
  address = ":9090"
  tls     = false
}
`

func TestNewExtension(t *testing.T) {
	t.Parallel()

	tcs := map[string]any{
		demo.StoreName:  &demo.Store{},
		demo.CacheName:  &demo.Cache{},
		demo.ServerName: &demo.Server{},
	}

	for name, expected := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			extension, err := demo.NewExtension(name, nil)
			require.NoError(t, err)
			assert.IsType(t, expected, extension)
		})
	}

	_, err := demo.NewExtension("queue", nil)
	assert.ErrorIs(t, err, demo.ErrUnknownExtension)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	store, err := demo.NewExtension(demo.StoreName, nil)
	require.NoError(t, err)
	server, err := demo.NewExtension(demo.ServerName, nil)
	require.NoError(t, err)

	r, err := demo.NewRegistry()
	require.NoError(t, err)

	require.NoError(t, r.Check(slices.Values([]demo.Extension{store, server})))
	assert.Error(t, r.Check(slices.Values([]demo.Extension{store, store})))

	require.NoError(t, r.Register(store))
	require.NoError(t, r.Register(server))
	assert.Equal(t, []string{"Store", "http"}, r.Names())

	assert.Error(t, r.Register(store))
	assert.Error(t, r.Check(slices.Values([]demo.Extension{store})))
}

func TestBootstrapDemo(t *testing.T) {
	t.Parallel()

	loader, err := configuration.ParseHCL([]byte(sections), "sections.hcl")
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	var added []demo.Extension
	var report *reporting.Context

	strategy := bootstrapper.NewDefaultStrategy(
		demo.DefineRun(loader, logger),
		demo.DefineShutdown,
		bootstrapper.WithExtensionResolver(demo.Resolver([]string{demo.StoreName, demo.CacheName, demo.ServerName}, logger)),
	)
	b := bootstrapper.New(bootstrapper.WithReporter[demo.Extension](reporting.ReporterFunc(func(ctx *reporting.Context) error {
		report = ctx

		return nil
	})))
	require.NoError(t, b.Initialize(strategy))

	require.NoError(t, b.Run())
	added = b.Extensions()
	require.Len(t, added, 3)

	store := added[0].(*demo.Store)
	cache := added[1].(*demo.Cache)
	server := added[2].(*demo.Server)

	assert.Equal(t, "/tmp/demo.db", store.Path)
	assert.Equal(t, 3*time.Second, store.Timeout)
	assert.Equal(t, 256, cache.Size)
	assert.Equal(t, time.Minute, cache.TTL)
	assert.Equal(t, "Cache", cache.Section().Name)
	assert.Equal(t, ":9090", server.Address)
	assert.Equal(t, map[string]string{"address": ":9090", "tls": "false"}, server.Configuration())

	for _, extension := range added {
		assert.True(t, extension.(interface{ Started() bool }).Started())
	}

	assert.Equal(t, 3, logs.FilterMessage("registering extension").Len())

	require.NoError(t, b.Close())

	assert.False(t, store.Started())
	assert.True(t, store.Closed())
	assert.False(t, cache.Closed())

	require.NotNil(t, report)
	require.Len(t, report.Run().Executables(), 3)
	assert.Len(t, report.Run().Executables()[2].Behaviors(), 2)
	assert.Equal(t, "Checks that the extensions have distinct names.", report.Run().Executables()[2].Behaviors()[0].Description())

	shutdown := report.Shutdown().Executables()
	require.Len(t, shutdown, 2)
	assert.Equal(t, `Executes "Stop" on each extension during bootstrapping.`, shutdown[0].Description())
	assert.Equal(t, "Closes all extensions which implement io.Closer.", shutdown[1].Behaviors()[0].Description())
}

func TestBootstrapDemoInvalidCache(t *testing.T) {
	t.Parallel()

	loader, err := configuration.ParseHCL([]byte(`section "Cache" { size = 0 }`), "sections.hcl")
	require.NoError(t, err)

	strategy := bootstrapper.NewDefaultStrategy(
		demo.DefineRun(loader, nil),
		demo.DefineShutdown,
		bootstrapper.WithExtensionResolver(demo.Resolver([]string{demo.CacheName}, nil)),
	)
	b := bootstrapper.New[demo.Extension]()
	require.NoError(t, b.Initialize(strategy))

	assert.ErrorContains(t, b.Run(), "invalid cache size 0")
	assert.NoError(t, b.Close())
}

func TestResolverUnknownExtension(t *testing.T) {
	t.Parallel()

	strategy := bootstrapper.NewDefaultStrategy(
		demo.DefineRun(nil, nil),
		demo.DefineShutdown,
		bootstrapper.WithExtensionResolver(demo.Resolver([]string{"queue"}, nil)),
	)
	b := bootstrapper.New[demo.Extension]()
	require.NoError(t, b.Initialize(strategy))

	assert.ErrorIs(t, b.Run(), demo.ErrUnknownExtension)
}
