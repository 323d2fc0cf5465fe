package cli

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/askiada/go-bootstrapper/internal/config"
	"github.com/askiada/go-bootstrapper/internal/demo"
	"github.com/askiada/go-bootstrapper/internal/logger"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/configuration"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/measure"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting/drawer"
)

func newRunCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs then shuts down the extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, cmd.Flag("config").Value.String())
			if err != nil {
				return err
			}

			log, err := logger.New(logger.Config{Debug: cfg.Debug, Format: cfg.LogFormat})
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			return Bootstrap(cfg, log)
		},
	}

	flags := cmd.Flags()
	flags.String("sections", "", "YAML or HCL file holding the extension sections")
	flags.String("dot", "", "file the bootstrapping graph is written to")
	flags.StringSlice("extensions", nil, "extensions to bootstrap (default store,cache,server)")

	_ = v.BindPFlag("sections", flags.Lookup("sections"))
	_ = v.BindPFlag("dot", flags.Lookup("dot"))
	_ = v.BindPFlag("extensions", flags.Lookup("extensions"))

	return cmd
}

// Bootstrap runs then closes the extensions named in cfg.
func Bootstrap(cfg *config.Config, log *zap.Logger) error {
	loader, err := LoadSections(cfg.Sections)
	if err != nil {
		return err
	}

	runMeasure := measure.NewDefaultMeasure()
	shutdownMeasure := measure.NewDefaultMeasure()

	strategy := bootstrapper.NewDefaultStrategy(
		demo.DefineRun(loader, log),
		demo.DefineShutdown,
		bootstrapper.WithExtensionResolver(demo.Resolver(cfg.Extensions, log)),
		bootstrapper.WithRunMeasure[demo.Extension](runMeasure),
		bootstrapper.WithShutdownMeasure[demo.Extension](shutdownMeasure),
		bootstrapper.WithExecutorLogger[demo.Extension](log),
	)

	opts := []bootstrapper.Option[demo.Extension]{
		bootstrapper.WithLogger[demo.Extension](log),
		bootstrapper.WithReporter[demo.Extension](reporting.NewLogReporter(log)),
	}
	if cfg.DOT != "" {
		opts = append(opts, bootstrapper.WithReporter[demo.Extension](drawer.NewDOTDrawer(cfg.DOT,
			drawer.WithMeasure(drawer.RunPhase, runMeasure),
			drawer.WithMeasure(drawer.ShutdownPhase, shutdownMeasure),
		)))
	}

	b := bootstrapper.New(opts...)

	err = b.Initialize(strategy)
	if err != nil {
		return err
	}

	err = b.Run()

	return multierr.Append(err, b.Close())
}

// LoadSections reads the extension sections of path. HCL files are
// recognised by their extension, any other file is read by viper. An empty
// path returns a nil loader.
func LoadSections(path string) (configuration.Loader, error) {
	if path == "" {
		return nil, nil //nolint:nilnil
	}

	var (
		loader configuration.Loader
		err    error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		loader, err = configuration.LoadHCLFile(path)
	default:
		loader, err = configuration.LoadViperFile(path)
	}

	if err != nil {
		return nil, errors.Wrap(err, "unable to load extension sections")
	}

	return loader, nil
}
