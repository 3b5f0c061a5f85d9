package cli

import (
	"github.com/ryanfowler/argv/internal/config"
	"github.com/ryanfowler/argv/internal/core"
)

// App represents the full configuration for an argv invocation.
type App struct {
	// Lines holds the command lines provided as positional arguments.
	Lines []string

	Cfg config.Config

	BuildInfo  bool
	Complete   string
	ConfigPath string
	Files      []string
	Help       bool
	Join       bool
	Native     bool
	Null       bool
	Self       bool
	Version    bool
}

func (a *App) PrintHelp(p *core.Printer) {
	printHelp(a.CLI(), p)
}

func (a *App) CLI() *CLI {
	var extraArgs bool
	return &CLI{
		Description: "argv splits Windows command lines the way the Microsoft C runtime does",
		Args: []Arguments{
			{Name: "COMMAND_LINE...", Description: "Command lines to split, read from stdin if omitted"},
		},
		ArgFn: func(s string) error {
			if s == "--" && !extraArgs {
				extraArgs = true
				return nil
			}
			a.Lines = append(a.Lines, s)
			return nil
		},
		ExclusiveFlags: [][]string{
			{"join", "native"},
			{"join", "file"},
			{"self", "file"},
			{"null", "format"},
		},
		Flags: []Flag{
			boolFlag(&a.BuildInfo, "build-info", "", "Print build information"),
			cfgFlag("color", "c", "OPTION", "Enable/disable color",
				func() bool { return a.Cfg.Color != core.ColorUnknown },
				a.Cfg.ParseColor,
			).WithAliases("colour").WithValues([]core.KeyVal[string]{
				{Key: "auto", Val: "Automatically determine color"},
				{Key: "off", Val: "Disable color output"},
				{Key: "on", Val: "Enable color output"},
			}),
			{
				Long:        "complete",
				Args:        "SHELL",
				Description: "Output shell completion",
				Values: []core.KeyVal[string]{
					{Key: "bash"},
					{Key: "fish"},
					{Key: "zsh"},
				},
				HideValues: true,
				IsSet: func() bool {
					return a.Complete != ""
				},
				Fn: func(value string) error {
					a.Complete = value
					return nil
				},
			},
			stringFlag(&a.ConfigPath, "config", "", "PATH", "Path to config file"),
			cfgFlag("encoding", "e", "NAME", "Input character encoding",
				func() bool { return a.Cfg.Encoding != "" },
				a.Cfg.ParseEncoding,
			).WithValues([]core.KeyVal[string]{
				{Key: "auto", Val: "Detect from byte order mark"},
				{Key: "utf-8", Val: "UTF-8"},
				{Key: "utf-16le", Val: "UTF-16, little endian"},
				{Key: "utf-16be", Val: "UTF-16, big endian"},
			}),
			{
				Short:       "f",
				Long:        "file",
				Args:        "PATH",
				Description: "Read command lines from a file ('-' for stdin)",
				IsSet: func() bool {
					return len(a.Files) > 0
				},
				Fn: func(value string) error {
					if value == "" {
						return core.NewValueError("file", value, "must not be empty", false)
					}
					a.Files = append(a.Files, value)
					return nil
				},
			},
			cfgFlag("format", "F", "FORMAT", "Output format",
				func() bool { return a.Cfg.Format != core.FormatUnknown },
				a.Cfg.ParseFormat,
			).WithValues(core.FormatValues),
			boolFlag(&a.Help, "help", "h", "Print help"),
			boolFlag(&a.Join, "join", "j", "Join arguments into a single command line"),
			ptrBoolFlag(&a.Cfg.KeepEmpty, "keep-empty", "k", "Split empty input lines"),
			boolFlag(&a.Native, "native", "", "Compare with CommandLineToArgvW").WithOS("windows"),
			boolFlag(&a.Null, "null", "0", "Separate arguments with NUL bytes"),
			boolFlag(&a.Self, "self", "", "Split the command line of this process"),
			ptrBoolFlag(&a.Cfg.Silent, "silent", "s", "Print only the split arguments"),
			{
				Short:       "v",
				Long:        "verbose",
				Args:        "",
				Description: "Verbosity of the output",
				IsSet: func() bool {
					return a.Cfg.Verbosity != nil
				},
				Fn: func(value string) error {
					if a.Cfg.Verbosity == nil {
						a.Cfg.Verbosity = core.PointerTo(1)
					} else {
						(*a.Cfg.Verbosity)++
					}
					return nil
				},
			},
			boolFlag(&a.Version, "version", "V", "Print version"),
		},
	}
}

// validate checks the combinations of flags and arguments that cannot be
// expressed as exclusive flags.
func (a *App) validate() error {
	if a.Self && len(a.Lines) > 0 {
		return positionalExclusiveError("self")
	}
	return nil
}
