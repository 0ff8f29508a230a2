package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"datakit/internal/config"
	"datakit/internal/dataio"
	"datakit/internal/match"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	in  io.Reader
	out io.Writer
	err io.Writer

	v   *viper.Viper
	cfg *config.Config
	log *logrus.Logger
	now func() time.Time

	configPath string
	root       *cobra.Command
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	a := &app{
		in:  in,
		out: out,
		err: errOut,
		v:   viper.New(),
		log: logrus.New(),
		now: time.Now,
	}

	a.log.SetOutput(errOut)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	a.root = &cobra.Command{
		Use:   "datakit",
		Short: "Shape, generate and format data from the command line",
		Long: `datakit exposes a small data utility library on the command line.

Configuration sources, in order of precedence:
  1. Command line flags
  2. Environment variables (DATAKIT_*, e.g. DATAKIT_TREE_ID_FIELD)
  3. datakit.yaml in the working directory or ~/.datakit, or --config

Examples:
  datakit random uuid -n 3
  datakit case snake "userAccountID"
  echo '[{"id":1},{"id":2,"parentId":1}]' | datakit tree build
  datakit date add 2024-01-31 1 month`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	a.root.SetIn(in)
	a.root.SetOut(out)
	a.root.SetErr(errOut)

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./datakit.yaml)")
	flags.String(config.KeyLogLevel, "", "log level (panic|fatal|error|warn|info|debug|trace)")
	flags.StringP(config.KeyOutput, "o", "", "output format for documents (json|yaml)")
	flags.String(config.KeyLocale, "", "date locale (zh-CN|en)")
	flags.Uint64(config.KeySeed, 0, "seed for reproducible random output, 0 for none")

	a.root.AddCommand(
		a.randomCmd(),
		a.caseCmd(),
		a.validateCmd(),
		a.queryCmd(),
		a.getCmd(),
		a.flattenCmd(),
		a.unflattenCmd(),
		a.mergeCmd(),
		a.cleanCmd(),
		a.listCmd(),
		a.treeCmd(),
		a.dateCmd(),
	)

	return a
}

// Execute runs the command line and logs a failure before returning it.
func (a *app) Execute() error {
	return a.ExecuteArgs(nil)
}

// ExecuteArgs runs the command line with explicit arguments; nil means
// os.Args[1:].
func (a *app) ExecuteArgs(args []string) error {
	if args != nil {
		a.root.SetArgs(args)
	}

	err := a.root.Execute()
	if err != nil {
		a.log.WithError(err).Error("datakit failed")
	}

	return err
}

// setup binds the global flags and loads configuration before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var bindErr error

	a.root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Name != "config" {
			bindErr = errors.Join(bindErr, a.v.BindPFlag(f.Name, f))
		}
	})

	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log.SetLevel(cfg.Level())

	a.logger(cmd).WithField("config", a.v.ConfigFileUsed()).Debug("configuration loaded")

	return nil
}

func (a *app) logger(cmd *cobra.Command) *logrus.Entry {
	return a.log.WithField("command", cmd.CommandPath())
}

// readDocument decodes the document named by args[i], or stdin when the
// argument is missing or "-".
func (a *app) readDocument(cmd *cobra.Command, args []string, i int) (any, error) {
	path := dataio.Stdin
	if i < len(args) {
		path = args[i]
	}

	v, err := dataio.LoadFile(path, "", a.in)
	if err != nil {
		return nil, err
	}

	if a.log.IsLevelEnabled(logrus.DebugLevel) {
		a.logger(cmd).WithField("path", path).Debugf("decoded input:\n%s", spew.Sdump(v))
	}

	return v, nil
}

func (a *app) readObject(cmd *cobra.Command, args []string, i int) (map[string]any, error) {
	v, err := a.readDocument(cmd, args, i)
	if err != nil {
		return nil, err
	}

	return dataio.Object(v)
}

// writeDocument encodes v in the configured output format.
func (a *app) writeDocument(v any) error {
	return dataio.Write(a.out, v, a.cfg.OutputFormat())
}

func (a *app) println(v ...any) {
	fmt.Fprintln(a.out, v...)
}

// unknown builds an error for a name outside known, suggesting close matches.
func unknown(what, name string, known []string) error {
	msg := fmt.Sprintf("unknown %s %q", what, name)

	if s := match.Suggest(name, known); len(s) > 0 {
		return fmt.Errorf("%s, did you mean %s?", msg, strings.Join(s, " or "))
	}

	return fmt.Errorf("%s, expected one of %s", msg, strings.Join(known, ", "))
}
