package fsops

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Exists checks if a path exists
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// ReadLines returns the non-blank, non-comment lines of a file, trimmed
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return lines, nil
}

// ReadFirst reads the first path in candidates that can be opened
func ReadFirst(fs afero.Fs, candidates ...string) (path string, lines []string, err error) {
	var lastErr error
	for _, candidate := range candidates {
		lines, err := ReadLines(fs, candidate)
		if err != nil {
			lastErr = err
			continue
		}
		return candidate, lines, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no candidate paths given")
	}
	return "", nil, lastErr
}
