package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/desertwitch/direntfilter/internal/configuration"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var Version string

func newRootCommand(stdin io.Reader, stdout io.Writer, logLevel *slog.LevelVar) *cobra.Command {
	var (
		expr     string
		varName  string
		envFiles []string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "direntfilter",
		Short: "Filter a stream of paths by a CEL expression over their metadata",
		Long: `Reads one filesystem path per line from standard input and writes those
paths for which the given CEL expression evaluates to true.

The attributes of each path are exposed as a map under the configured variable
name (default "item"): name, is_file, is_dir, is_symlink, is_block_device,
is_char_device, is_hidden, is_readonly, is_socket, is_fifo, len, nlink, mode,
uid, gid, mtime, atime, ctime. Symbolic links are never followed.

Example:
  find . | direntfilter --expr "item.is_file && item.len > parseSize('5MiB')"`,
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

			config, err := configHandler.Establish(envFiles...)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("expr") {
				config.Expression = expr
			}
			if cmd.Flags().Changed("name") {
				config.VarName = varName
			}
			if verbose {
				config.Verbose = true
			}

			if err := config.Validate(); err != nil {
				return err
			}

			if config.Verbose {
				logLevel.Set(slog.LevelDebug)
			}

			app := NewApp(config, newFilesystemHandler())

			return app.Launch(stdin, stdout)
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "CEL expression to filter the entries by (env: "+configuration.EnvPrefix+"_EXPR)")
	cmd.Flags().StringVarP(&varName, "name", "n", configuration.DefaultVarName, "variable name of the entry in the expression (env: "+configuration.EnvPrefix+"_NAME)")
	cmd.Flags().StringArrayVar(&envFiles, "env-file", nil, "read configuration from an environment file (repeatable)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging (env: "+configuration.EnvPrefix+"_VERBOSE)")

	return cmd
}

func versionString() string {
	if Version == "" {
		return "devel"
	}

	return Version
}

// run executes the command-line interface and returns the process exit code.
func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	logLevel := new(slog.LevelVar)
	setupLogging(stderr, logLevel)

	cmd := newRootCommand(stdin, stdout, logLevel)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		slog.Error("Failure:", "err", err)

		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
