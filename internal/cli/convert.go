package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"kviz/internal/question"
)

// runConvert builds the handler for the convert command.
func runConvert(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		to := flags.String("to", "", "Target format: txt|yaml|json (default: from output extension)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() < 1 || flags.NArg() > 2 {
			fmt.Fprintln(stderr, "convert expects an input bank and an optional output path")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		input, output := flags.Arg(0), flags.Arg(1)

		format, err := targetFormat(*to, output)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}

		bank, err := question.LoadFile(input)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}

		if output == "" {
			if err := question.EncodeAs(stdout, bank, format); err != nil {
				fmt.Fprintf(stderr, "Convert failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		if err := writeBank(output, bank, format); err != nil {
			fmt.Fprintf(stderr, "Convert failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s (%d questions)\n", output, bank.Len())
		return ExitOK
	}
}

// targetFormat resolves the --to flag, falling back to the output extension.
func targetFormat(to, output string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(to))
	if format == "" {
		if output == "" {
			return "", fmt.Errorf("--to is required when writing to stdout")
		}
		format = question.FormatForPath(output)
	}
	switch format {
	case question.FormatText, question.FormatYAML, question.FormatJSON:
		return format, nil
	case "yml":
		return question.FormatYAML, nil
	case "text":
		return question.FormatText, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected txt|yaml|json)", to)
	}
}

func writeBank(path string, bank question.Bank, format string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	buf := bufio.NewWriter(file)
	if err := question.EncodeAs(buf, bank, format); err != nil {
		_ = file.Close()
		return err
	}
	if err := buf.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("write output: %w", err)
	}
	return file.Close()
}
