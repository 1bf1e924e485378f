// Package cli provides the command-line interface for jobsummary.
package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/AndreyAkinshin/jobsummary/internal/config"
	"github.com/AndreyAkinshin/jobsummary/internal/errors"
	"github.com/AndreyAkinshin/jobsummary/internal/hostinfo"
	"github.com/AndreyAkinshin/jobsummary/internal/output"
	"github.com/AndreyAkinshin/jobsummary/internal/report"
	"github.com/AndreyAkinshin/jobsummary/internal/summarize"
	"github.com/AndreyAkinshin/jobsummary/internal/warnings"
)

// Version is set at build time.
var Version = "dev"

// Flag names.
const (
	flagBuildLog        = "build-log"
	flagCTestLog        = "ctest-log"
	flagOutputFile      = "output-file"
	flagOS              = "os"
	flagCompilerVersion = "compiler-version"
	flagCMakeVersion    = "cmake-version"
	flagCPUModel        = "cpu-model"
	flagConfig          = "config"
	flagDetect          = "detect-environment"
	flagAppend          = "append"
	flagQuiet           = "quiet"
	flagVerbose         = "verbose"
)

var requiredFlags = []string{flagBuildLog, flagCTestLog, flagOutputFile}

// options holds parsed command-line flags.
type options struct {
	BuildLog   string
	CTestLog   string
	OutputFile string
	Env        report.Environment
	ConfigPath string
	Detect     bool
	Append     bool
	Quiet      bool
	Verbose    bool
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return run(context.Background(), args, output.New())
}

func run(ctx context.Context, args []string, w *output.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd := newRootCommand(w)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		w.Errorf("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

func newRootCommand(w *output.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "jobsummary",
		Short:         "Summarize build warnings and CTest results as Markdown",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.Configf("unexpected argument %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummarize(cmd, opts, w)
		},
	}
	cmd.SetOut(w.Stdout())
	cmd.SetVersionTemplate("jobsummary {{.Version}}\n")
	cmd.SetHelpFunc(func(*cobra.Command, []string) { printUsage(w) })
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Config(err.Error())
	})

	f := cmd.Flags()
	f.StringVar(&opts.BuildLog, flagBuildLog, "", "build log to scan for warnings")
	f.StringVar(&opts.CTestLog, flagCTestLog, "", "CTest log to extract results from")
	f.StringVar(&opts.OutputFile, flagOutputFile, "", "Markdown file to write")
	f.StringVar(&opts.Env.OS, flagOS, report.NotAvailable, "operating system")
	f.StringVar(&opts.Env.CompilerVersion, flagCompilerVersion, report.NotAvailable, "compiler version")
	f.StringVar(&opts.Env.CMakeVersion, flagCMakeVersion, report.NotAvailable, "CMake version")
	f.StringVar(&opts.Env.CPUModel, flagCPUModel, report.NotAvailable, "CPU model")
	f.StringVar(&opts.ConfigPath, flagConfig, "", "YAML configuration file")
	f.BoolVar(&opts.Detect, flagDetect, false, "fill unset OS and CPU model from the host")
	f.BoolVar(&opts.Append, flagAppend, false, "append to the output file instead of replacing it")
	f.BoolVarP(&opts.Quiet, flagQuiet, "q", false, "suppress the console summary")
	f.BoolVarP(&opts.Verbose, flagVerbose, "v", false, "enable debug logging")

	return cmd
}

func runSummarize(cmd *cobra.Command, opts *options, w *output.Writer) error {
	if err := validateOptions(cmd.Flags(), opts); err != nil {
		return err
	}

	cfg, err := loadConfig(opts.ConfigPath, w)
	if err != nil {
		return err
	}

	extractor, err := warnings.NewExtractor(cfg.Warnings.CodePrefixes, *cfg.Warnings.IncludeMarker)
	if err != nil {
		return errors.Configf("invalid warnings configuration: %v", err)
	}

	w.SetQuiet(opts.Quiet)

	logger, err := newLogger(opts.Verbose)
	if err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	defer func() { _ = logger.Sync() }()

	env := resolveEnvironment(cmd.Flags(), opts.Env, cfg.Environment)
	if opts.Detect {
		detected := hostinfo.Detect(cmd.Context())
		logger.Debug("detected host environment",
			zap.String("os", detected.OS),
			zap.String("cpu_model", detected.CPUModel))
		env = env.Merge(detected)
	}

	result, err := summarize.Run(cmd.Context(), summarize.Options{
		BuildLogPath: opts.BuildLog,
		TestLogPath:  opts.CTestLog,
		OutputPath:   opts.OutputFile,
		Append:       opts.Append,
		Environment:  env,
		Extractor:    extractor,
	}, logger)
	if err != nil {
		return err
	}

	if !w.Quiet() {
		printSummary(w, opts.OutputFile, result)
	}
	return nil
}

// validateOptions checks flag combinations cobra cannot express with the
// exit codes we need.
func validateOptions(flags *pflag.FlagSet, opts *options) error {
	var missing []string
	for _, name := range requiredFlags {
		if strings.TrimSpace(flags.Lookup(name).Value.String()) == "" {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return errors.Configf("required flag(s) not set: %s", strings.Join(missing, ", "))
	}

	if opts.Quiet && opts.Verbose {
		return errors.Config("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

// loadConfig returns the configuration at path, or defaults when path is empty.
func loadConfig(path string, w *output.Writer) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	cfg, msgs, err := config.LoadAndValidate(path)
	for _, msg := range msgs {
		w.Warning("%s", msg)
	}
	if err != nil {
		return nil, &errors.SummaryError{
			Kind:    errors.KindConfig,
			Message: "invalid configuration",
			Path:    path,
			Cause:   err,
		}
	}
	return cfg, nil
}

// resolveEnvironment applies flag > config file precedence. Host detection
// and the N/A sentinel fill whatever is still blank afterwards.
// Flags left at their default do not override the config file.
func resolveEnvironment(flags *pflag.FlagSet, fromFlags report.Environment, cfg *config.EnvironmentConfig) report.Environment {
	var explicit report.Environment
	if flags.Changed(flagOS) {
		explicit.OS = fromFlags.OS
	}
	if flags.Changed(flagCompilerVersion) {
		explicit.CompilerVersion = fromFlags.CompilerVersion
	}
	if flags.Changed(flagCMakeVersion) {
		explicit.CMakeVersion = fromFlags.CMakeVersion
	}
	if flags.Changed(flagCPUModel) {
		explicit.CPUModel = fromFlags.CPUModel
	}

	if cfg == nil {
		return explicit
	}
	return explicit.Merge(report.Environment{
		OS:              cfg.OS,
		CompilerVersion: cfg.CompilerVersion,
		CMakeVersion:    cfg.CMakeVersion,
		CPUModel:        cfg.CPUModel,
	})
}
