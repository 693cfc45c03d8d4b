package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"carve/config"
	"carve/generator"
	"carve/server"
)

const defaultPort = 8080

var (
	workspace  string
	configJSON string
	file       string
	lines      string
	strip      bool
	normalize  bool
	dryRun     bool
	port       int
)

// setup resolves the workspace root, loads its config and applies command
// line overrides.
func setup(dry bool, out io.Writer) (*generator.Generator, string, *config.Config, error) {
	var root string
	var err error
	if workspace != "" {
		// An explicit --workspace is trusted even without package.json.
		if root, err = filepath.Abs(workspace); err != nil {
			return nil, "", nil, fmt.Errorf("error getting absolute path: %w", err)
		}
	} else if root, err = generator.FindWorkspace("."); err != nil {
		return nil, "", nil, err
	}

	cfg, err := config.LoadConfig(root, configJSON)
	if err != nil {
		return nil, "", nil, err
	}
	if strip {
		cfg.StripAttributes = true
	}
	if normalize {
		cfg.NormalizeName = true
	}

	gen := generator.New(generator.Options{
		Root:   root,
		Config: cfg,
		FS:     generator.OSFS{},
		DryRun: dry,
		Out:    out,
	})
	return gen, root, cfg, nil
}

// readSelection loads the selection from --file, or from stdin when it is
// piped.
func readSelection(path, lineSpec string, stdin *os.File) (string, error) {
	lr, err := generator.ParseLineRange(lineSpec)
	if err != nil {
		return "", err
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open selection file: %w", err)
		}
		defer f.Close()
		return generator.ReadSelection(f, lr)
	}
	if stdin == nil || isTerminal(stdin) {
		return "", generator.ErrNoEditor
	}
	return generator.ReadSelection(stdin, lr)
}

func runExtract(ctx context.Context, args []string, stdin *os.File, stdout io.Writer, p Prompter) error {
	selection, err := readSelection(file, lines, stdin)
	if err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	// Prompting needs the terminal, so it is only possible when the
	// selection did not arrive on stdin.
	name, err = resolveName(ctx, name, file != "" && stdin != nil && isTerminal(stdin), p)
	if err != nil {
		return err
	}

	gen, _, _, err := setup(dryRun, stdout)
	if err != nil {
		return err
	}

	res, err := gen.Create(ctx, generator.Request{Name: name, Selection: selection, Origin: originOf(file)})
	if err != nil {
		return err
	}
	if res.UtilCreated {
		fmt.Fprintln(stdout, "Created helper module")
	}
	if !res.DryRun {
		fmt.Fprintf(stdout, "Component created at %s\n", res.Path)
	}
	return nil
}

func originOf(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

func runOrg(ctx context.Context, orgPath string, stdout io.Writer) error {
	f, err := os.Open(orgPath)
	if err != nil {
		return fmt.Errorf("failed to open org file: %w", err)
	}
	defer f.Close()

	reqs, err := generator.ExtractOrgComponents(f, orgPath)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		fmt.Fprintf(stdout, "No component blocks found in %s\n", orgPath)
		return nil
	}

	gen, _, _, err := setup(dryRun, stdout)
	if err != nil {
		return err
	}

	startTime := time.Now()
	result := gen.CreateAll(ctx, reqs)
	result.SetStartTime(startTime)
	result.PrintSummary(stdout)

	if result.Errors > 0 {
		return fmt.Errorf("%d component(s) failed", result.Errors)
	}
	return nil
}

func runInit(stdout io.Writer) error {
	_, root, cfg, err := setup(false, stdout)
	if err != nil {
		return err
	}
	created, err := generator.EnsureUtil(generator.OSFS{}, root, cfg)
	if err != nil {
		return err
	}
	utilPath := filepath.Join(root, cfg.UtilPath)
	if created {
		fmt.Fprintf(stdout, "Created helper module at %s\n", utilPath)
	} else {
		fmt.Fprintf(stdout, "Helper module already present at %s\n", utilPath)
	}
	return nil
}

func runServe(ctx context.Context, stdout io.Writer) error {
	gen, _, _, err := setup(false, stdout)
	if err != nil {
		return err
	}

	srv := server.NewServer(gen, port)
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-ctx.Done():
		return srv.Shutdown()
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// exitOnError reports err the way its kind calls for and exits non-zero.
func exitOnError(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, generator.ErrFileExists) {
		generator.PrintWarning(os.Stderr, err.Error())
	} else {
		slog.Error("Command failed", "error", err)
	}
	os.Exit(1)
}

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	if os.Getenv("CARVE_DEBUG") == "true" || os.Getenv("CARVE_DEBUG") == "1" {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
	slog.SetDefault(slog.New(handler))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var rootCmd = &cobra.Command{
		Use:   "carve",
		Short: "Extract JSX selections into reusable components",
	}

	var extractCmd = &cobra.Command{
		Use:   "extract [name]",
		Short: "Create a component from a selection (--file or stdin)",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exitOnError(runExtract(ctx, args, os.Stdin, os.Stdout, surveyPrompter{}))
		},
	}

	var orgCmd = &cobra.Command{
		Use:   "org <file.org>",
		Short: "Create a component for every named jsx src block in an org file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exitOnError(runOrg(ctx, args[0], os.Stdout))
		},
	}

	var watchCmd = &cobra.Command{
		Use:   "watch <inbox>",
		Short: "Create components from <Name>.selection files dropped into <inbox>",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			gen, _, _, err := setup(false, os.Stdout)
			if err != nil {
				exitOnError(err)
			}
			exitOnError(runWatchMode(ctx, args[0], gen, os.Stdout))
		},
	}

	var serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Accept selections from editor integrations over HTTP",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			exitOnError(runServe(ctx, os.Stdout))
		},
	}

	var initCmd = &cobra.Command{
		Use:   "init",
		Short: "Create the cn helper module if it is missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			exitOnError(runInit(os.Stdout))
		},
	}

	rootCmd.PersistentFlags().StringVar(&workspace, "workspace", "", "workspace root (default: nearest directory with package.json)")
	rootCmd.PersistentFlags().StringVar(&configJSON, "config", "", "JSON config string (overrides .carve.json/.carve.yaml)")
	rootCmd.PersistentFlags().BoolVar(&strip, "strip", false, "strip event handlers, style, id and data-* attributes")
	rootCmd.PersistentFlags().BoolVar(&normalize, "normalize", false, "normalize the component name to PascalCase")

	extractCmd.Flags().StringVarP(&file, "file", "f", "", "file to read the selection from")
	extractCmd.Flags().StringVarP(&lines, "lines", "l", "", "line range to select, e.g. 10:24")
	extractCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the component instead of writing it")

	orgCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the components instead of writing them")

	serveCmd.Flags().IntVarP(&port, "port", "p", defaultPort, "port to serve on")

	rootCmd.AddCommand(extractCmd, orgCmd, watchCmd, serveCmd, initCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
