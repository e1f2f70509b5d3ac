package util

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const maxBinaryCheckBytes = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// typography folds the characters titles commonly arrive with into the ASCII
// forms the heuristics match on.
var typography = strings.NewReplacer(
	"\u2018", "'", "\u2019", "'", "\u201C", "\"", "\u201D", "\"",
	"\u2013", "-", "\u2014", "-", "\u2026", "...", "\u00a0", " ",
	"\u0091", "'", "\u0092", "'", "\u0093", "\"", "\u0094", "\"",
	"\u0096", "-", "\u0097", "-", "\u200b", "",
)

// NormalizeTitle repairs invalid UTF-8, composes to NFC, folds typographic
// punctuation and collapses whitespace. Empty or whitespace-only input yields "".
func NormalizeTitle(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	s = norm.NFC.String(s)
	s = typography.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// IsLikelyBinary sniffs the first bytes of a file for NUL bytes.
func IsLikelyBinary(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, maxBinaryCheckBytes)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	return bytes.Contains(buffer[:n], []byte{0}), nil
}

// ReadLines loads a text file of titles or rules, one per line. Blank lines
// are dropped and each line is normalized.
func ReadLines(path string) ([]string, error) {
	if binary, err := IsLikelyBinary(path); err != nil {
		return nil, err
	} else if binary {
		return nil, fmt.Errorf("%s looks like a binary file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if l := NormalizeTitle(line); l != "" {
			lines = append(lines, l)
		}
	}
	return lines, nil
}
