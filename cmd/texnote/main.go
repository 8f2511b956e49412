package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/texnote"
	"pkt.systems/version"
)

const defaultWrapWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/texnote")
}

func main() {
	var (
		headingOffset    int
		mathMode         string
		preserveComments bool
		wrapWidth        int
		outPath          string
		showVersion      bool
	)

	flags := pflag.NewFlagSet("texnote", pflag.ExitOnError)
	flags.IntVar(&headingOffset, "heading-offset", 0, "Offset added to every heading level (may be negative)")
	flags.StringVar(&mathMode, "math-mode", texnote.MathModeKaTeX, "Math dialect for rendered expressions")
	flags.BoolVar(&preserveComments, "preserve-comments", false, "Keep % comments as literal text")
	flags.IntVarP(&wrapWidth, "wrap", "w", 0, "Wrap output at width (0 disables, negative uses terminal width)")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: texnote [flags] [input.tex] [output.md]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided (or input is -), LaTeX is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}

	args := flags.Args()
	if len(args) > 2 {
		flags.Usage()
		os.Exit(2)
	}

	src, inName, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	out, err := texnote.ConvertString(string(src),
		texnote.WithMathMode(mathMode),
		texnote.WithHeadingOffset(headingOffset),
		texnote.WithComments(preserveComments),
	)
	if err != nil {
		var cfgErr *texnote.ConfigurationError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "%v (available math modes: %s)\n", err, strings.Join(texnote.AvailableMathModes(), ", "))
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "convert %s: %v\n", inName, err)
		os.Exit(1)
	}

	if wrapWidth != 0 {
		out = wordwrap.String(out, resolveWrapWidth(wrapWidth))
	}

	dst := chooseOutput(outPath, args)
	if dst == "" {
		fmt.Println(out)
		return
	}
	if err := writeOutput(dst, out); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "converted %s -> %s\n", inName, dst)
}

func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, "stdin", err
	}
	path := normalizePath(args[0])
	data, err := os.ReadFile(path)
	return data, args[0], err
}

// chooseOutput prefers the -o flag over the second positional argument.
func chooseOutput(flagPath string, args []string) string {
	if flagPath != "" {
		return flagPath
	}
	if len(args) == 2 && args[1] != "-" {
		return args[1]
	}
	return ""
}

func writeOutput(path, out string) error {
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if out != "" {
		out += "\n"
	}
	return os.WriteFile(clean, []byte(out), 0o644)
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func resolveWrapWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWrapWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := parseWidth(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func parseWidth(value string) (int, error) {
	var n int
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, fmt.Errorf("invalid int")
		}
		n = n*10 + int(value[i]-'0')
	}
	return n, nil
}
