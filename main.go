// Package main is the tinymath command line tool.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/JustAnOrangeCat/TinyMathParser/batch"
	"github.com/JustAnOrangeCat/TinyMathParser/compiler"
	"github.com/JustAnOrangeCat/TinyMathParser/config"
	"github.com/JustAnOrangeCat/TinyMathParser/eval"
	"github.com/JustAnOrangeCat/TinyMathParser/server"
	"github.com/JustAnOrangeCat/TinyMathParser/token"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	fs := osfs.New("/")
	root := newRootCmd(fs, filepath.Abs)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// An expression starting with '-' must follow "--" or it is read as a flag.
const evalExample = `  tinymath eval "(1+2)*3"
  tinymath eval --var x=3 "x*x"
  tinymath eval -- -2*3`

// cli carries what every subcommand needs once the root command has loaded
// the configuration.
type cli struct {
	fs billy.Filesystem
	// resolve maps a user supplied path to a name on fs.
	resolve func(string) (string, error)

	cfg       *config.Config
	compiler  *compiler.Compiler
	evaluator *eval.Evaluator
}

func newRootCmd(fs billy.Filesystem, resolve func(string) (string, error)) *cobra.Command {
	c := &cli{fs: fs, resolve: resolve}

	root := &cobra.Command{
		Use:               "tinymath",
		Short:             "Compile and evaluate arithmetic expressions",
		Version:           version + " (commit=" + commit + ")",
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate("tinymath version {{.Version}}\n")

	root.PersistentFlags().String("config", "", "YAML config file (env TINYMATH_CONFIG)")
	root.PersistentFlags().Int("precision", eval.DefaultPrecision, "decimals printed for results, -1 for the shortest form")

	evalCmd := &cobra.Command{
		Use:     "eval [flags] [--] EXPRESSION",
		Short:   "Evaluate one expression",
		Example: evalExample,
		Args:    cobra.ExactArgs(1),
		RunE:    c.runEval,
	}
	evalCmd.Flags().StringArray("var", nil, "bind a variable, e.g. --var x=2 (repeatable)")
	evalCmd.Flags().Bool("tokens", false, "print the tokens before the result")
	evalCmd.Flags().Bool("postfix", false, "print the postfix sequence before the result")

	tokensCmd := &cobra.Command{
		Use:   "tokens [--] EXPRESSION",
		Short: "Print the tokens and postfix sequence of an expression",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runTokens,
	}

	batchCmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate every line of a file",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runBatch,
	}
	batchCmd.Flags().StringArray("var", nil, "bind a variable, e.g. --var x=2 (repeatable)")
	batchCmd.Flags().String("out", "", "also write the results to this file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  c.runServe,
	}
	serveCmd.Flags().String("host", "", "bind address (default from config, env TINYMATH_HOST)")
	serveCmd.Flags().Int("port", 0, "HTTP port (default from config, env TINYMATH_PORT)")

	root.AddCommand(evalCmd, tokensCmd, batchCmd, serveCmd)
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	name := os.Getenv("TINYMATH_CONFIG")
	if v, _ := cmd.Flags().GetString("config"); v != "" {
		name = v
	}

	c.cfg = config.Default()
	if name != "" {
		path, err := c.resolve(name)
		if err != nil {
			return err
		}

		if c.cfg, err = config.Load(c.fs, path); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("precision") {
		c.cfg.Precision, _ = cmd.Flags().GetInt("precision")
		if err := c.cfg.Validate(); err != nil {
			return err
		}
	}

	c.compiler = compiler.New(c.cfg.Table())
	c.evaluator = eval.New(nil)
	return nil
}

func (c *cli) runEval(cmd *cobra.Command, args []string) error {
	overrides, err := variableFlags(cmd)
	if err != nil {
		return err
	}

	res, err := c.evaluator.Run(c.compiler, args[0], c.cfg.Bindings(overrides))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if v, _ := cmd.Flags().GetBool("tokens"); v {
		for _, tk := range res.Program.Tokens {
			fmt.Fprintln(out, tk)
		}
	}
	if v, _ := cmd.Flags().GetBool("postfix"); v {
		fmt.Fprintf(out, "postfix: %s\n", token.Join(res.Program.Postfix))
	}

	fmt.Fprintln(out, eval.Format(res.Value, c.cfg.Precision))
	return nil
}

func (c *cli) runTokens(cmd *cobra.Command, args []string) error {
	tokens, err := c.compiler.Tokenize(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, tk := range tokens {
		fmt.Fprintln(out, tk)
	}

	postfix, err := c.compiler.ToPostfix(tokens)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "postfix: %s\n", token.Join(postfix))

	return nil
}

func (c *cli) runBatch(cmd *cobra.Command, args []string) error {
	overrides, err := variableFlags(cmd)
	if err != nil {
		return err
	}

	path, err := c.resolve(args[0])
	if err != nil {
		return err
	}

	runner := batch.NewRunner(c.compiler, c.evaluator, c.cfg.Bindings(overrides))
	results, err := runner.RunFile(c.fs, path)
	if err != nil {
		return err
	}

	if err := batch.Format(cmd.OutOrStdout(), results, c.cfg.Precision); err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		outPath, err := c.resolve(out)
		if err != nil {
			return err
		}
		if err := batch.WriteReport(c.fs, outPath, results, c.cfg.Precision); err != nil {
			return err
		}
	}

	if n := batch.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d expressions failed", n, len(results))
	}

	return nil
}

func (c *cli) runServe(cmd *cobra.Command, args []string) error {
	host := envOrDefault("TINYMATH_HOST", c.cfg.Server.Host)
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		host = v
	}
	c.cfg.Server.Host = host

	if v := os.Getenv("TINYMATH_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TINYMATH_PORT: %w", err)
		}
		c.cfg.Server.Port = port
	}
	if v, _ := cmd.Flags().GetInt("port"); v != 0 {
		c.cfg.Server.Port = v
	}

	srv := server.New(server.Options{
		Compiler:  c.compiler,
		Evaluator: c.evaluator,
		Variables: c.cfg.Variables,
		Precision: c.cfg.Precision,
	})

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	addr := c.cfg.Addr()
	log.Printf("tinymath listening on %s", addr)
	return srv.Listen(addr)
}

func variableFlags(cmd *cobra.Command) (map[string]float64, error) {
	pairs, _ := cmd.Flags().GetStringArray("var")
	return parseVariables(pairs)
}

// parseVariables turns "x=1.5" pairs into bindings.
func parseVariables(pairs []string) (map[string]float64, error) {
	vars := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("variable %q: expected name=value", p)
		}

		name = strings.TrimSpace(name)
		if !compiler.IsVariableName(name) {
			return nil, fmt.Errorf("variable %q: name must be a single letter", name)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}

		vars[name] = v
	}

	return vars, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
