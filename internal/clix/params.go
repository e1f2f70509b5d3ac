package clix

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"titleguard/internal/util"
)

// ReadTitles collects titles from, in order of preference: the --file flag,
// stdin when the only argument is "-", or the positional arguments (one
// title each).
func ReadTitles(flags *pflag.FlagSet, args []string, stdin io.Reader) ([]string, error) {
	if path, _ := flags.GetString("file"); path != "" {
		titles, err := util.ReadLines(path)
		if err != nil {
			return nil, fmt.Errorf("read titles from %s: %w", path, err)
		}
		return titles, nil
	}
	if len(args) == 1 && args[0] == "-" {
		return ScanLines(stdin)
	}
	var titles []string
	for _, a := range args {
		if t := util.NormalizeTitle(a); t != "" {
			titles = append(titles, t)
		}
	}
	return titles, nil
}

// ScanLines reads normalized non-blank lines from r.
func ScanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if l := util.NormalizeTitle(sc.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// ParseThreshold returns the --threshold override, or 0 when unset.
func ParseThreshold(flags *pflag.FlagSet) (int, error) {
	if !flags.Changed("threshold") {
		return 0, nil
	}
	th, err := flags.GetInt("threshold")
	if err != nil {
		return 0, err
	}
	if th <= 0 {
		return 0, fmt.Errorf("--threshold must be positive, got %d", th)
	}
	return th, nil
}
