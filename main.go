package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ryanfowler/argv/internal/argv"
	"github.com/ryanfowler/argv/internal/cli"
	"github.com/ryanfowler/argv/internal/complete"
	"github.com/ryanfowler/argv/internal/config"
	"github.com/ryanfowler/argv/internal/core"
	"github.com/ryanfowler/argv/internal/format"
)

func main() {
	// Cancel the context when one of the below signals are caught.
	ctx, cancel := context.WithCancelCause(context.Background())
	chSig := make(chan os.Signal, 1)
	signal.Notify(chSig, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	go func() {
		sig := <-chSig
		cancel(core.SignalError(sig.String()))
	}()

	// Parse the CLI args.
	app, err := cli.Parse(os.Args[1:])
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		writeCLIErr(p, err)
		os.Exit(1)
	}

	// Output shell completions, if requested.
	if app.Complete != "" {
		os.Exit(runComplete(app))
	}

	// Parse any config file, and merge with it.
	err = parseConfigFile(app)
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		core.WriteErrorMsg(p, err)
		os.Exit(1)
	}

	handle := core.NewHandle(app.Cfg.Color)

	// Print help to stdout.
	if app.Help {
		p := handle.Stdout()
		app.PrintHelp(p)
		p.Flush()
		os.Exit(0)
	}

	// Print version to stdout.
	if app.Version {
		fmt.Fprintln(os.Stdout, "argv", core.Version)
		os.Exit(0)
	}

	// Print build info to stdout.
	if app.BuildInfo {
		p := handle.Stdout()
		format.FormatJSON(core.GetBuildInfo(), p)
		p.Flush()
		os.Exit(0)
	}

	// Only read from stdin when it isn't a terminal.
	var stdin io.Reader
	if !core.IsStdinTerm {
		stdin = os.Stdin
	}

	req := argv.Request{
		Encoding:      app.Cfg.Encoding,
		Files:         app.Files,
		Format:        app.Cfg.Format,
		Join:          app.Join,
		KeepEmpty:     getValue(app.Cfg.KeepEmpty),
		Lines:         app.Lines,
		Native:        app.Native,
		Null:          app.Null,
		PrinterHandle: handle,
		Self:          app.Self,
		Stdin:         stdin,
		StdoutTerm:    core.IsStdoutTerm,
		Verbosity:     getVerbosity(app),
		Width:         core.GetTerminalCols(),
	}
	status := argv.Run(ctx, &req)
	os.Exit(status)
}

// runComplete writes the shell completions for the current command line, or
// the registration script when no arguments follow "--complete".
func runComplete(app *cli.App) int {
	shell := complete.GetShell(app.Complete)
	if shell == nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		usage := "must be one of [bash, fish, zsh]"
		core.WriteErrorMsg(p, core.NewValueError("complete", app.Complete, usage, false))
		return 1
	}

	var out string
	if len(app.Lines) == 0 {
		out = shell.Register()
	} else {
		out = complete.Complete(shell, app.Lines)
	}
	fmt.Fprintln(os.Stdout, out)
	return 0
}

// parse and merge any config file with the CLI app configuration.
func parseConfigFile(app *cli.App) error {
	file, err := config.GetFile(app.ConfigPath)
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	app.Cfg.Merge(file.Global)
	return nil
}

func getValue[T any](v *T) T {
	if v == nil {
		var t T
		return t
	}
	return *v
}

// getVerbosity returns the Verbosity level based on the app configuration.
func getVerbosity(app *cli.App) core.Verbosity {
	if getValue(app.Cfg.Silent) {
		return core.VSilent
	}
	switch getValue(app.Cfg.Verbosity) {
	case 0:
		return core.VNormal
	case 1:
		return core.VVerbose
	default:
		return core.VExtraVerbose
	}
}

// writeCLIErr writes the provided CLI error to the Printer.
func writeCLIErr(p *core.Printer, err error) {
	core.WriteErrorMsgNoFlush(p, err)

	p.WriteString("\nFor more information, try '")

	p.Set(core.Bold)
	p.WriteString("--help")
	p.Reset()

	p.WriteString("'.\n")
	p.Flush()
}
