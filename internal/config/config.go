package config

import (
	"fmt"
	"strconv"
)

// Commands understood by the CLI.
const (
	CmdList  = "list"
	CmdArgs  = "args"
	CmdAlive = "alive"
)

// Config holds the parsed command-line configuration
type Config struct {
	// Command is the selected subcommand: list, args or alive
	Command string
	// Pid is the target process for args and alive
	Pid int32
	// FilterExpr selects which processes list prints (expr syntax)
	FilterExpr string
	// Trace enables OTLP span export around kernel operations
	Trace bool
	// ShowVersion prints version information and exits
	ShowVersion bool
}

// ParseArgs parses command-line arguments and returns a Config.
// Expected format: procsnap [--filter <expr>] [--trace] [command [pid]]
func ParseArgs(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no arguments provided")
	}

	programName := args[0]
	cfg := &Config{Command: CmdList}

	var positional []string
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-f", "--filter":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a value", args[i])
			}
			cfg.FilterExpr = args[i+1]
			i++ // skip the value
		case "--trace":
			cfg.Trace = true
		case "-v", "--version":
			cfg.ShowVersion = true
		case "-h", "--help":
			return nil, fmt.Errorf("%s", usage(programName))
		default:
			positional = append(positional, args[i])
		}
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	if len(positional) > 0 {
		cfg.Command = positional[0]
	}

	switch cfg.Command {
	case CmdList:
		if len(positional) > 1 {
			return nil, fmt.Errorf("list takes no arguments\n%s", usage(programName))
		}
	case CmdArgs, CmdAlive:
		if len(positional) != 2 {
			return nil, fmt.Errorf("%s requires a pid\n%s", cfg.Command, usage(programName))
		}
		pid, err := strconv.ParseInt(positional[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid pid %q: %v", positional[1], err)
		}
		cfg.Pid = int32(pid)
	default:
		return nil, fmt.Errorf("unknown command %q\n%s", cfg.Command, usage(programName))
	}

	return cfg, nil
}

func usage(programName string) string {
	return fmt.Sprintf(`Usage: %s [options] [command]

Commands:
  list          list all processes with their command lines (default)
  args <pid>    print the argument vector of a process, one token per line
  alive <pid>   report whether a process exists

Options:
  -f, --filter <expr>  only list processes matching the expression
                       (e.g. 'pid > 1000', 'comm == "sshd"')
      --trace          export OTLP spans for each kernel operation
  -v, --version        print version information
  -h, --help           print this help`, programName)
}
