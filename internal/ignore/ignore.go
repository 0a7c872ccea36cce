package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gobwas/glob"
)

// Set is a precomputed list of excluded directory and file names. Entries
// are either exact base names or glob patterns matched against base names.
type Set struct {
	dirs  matcher
	files matcher
}

type matcher struct {
	names    map[string]bool
	patterns []glob.Glob
}

func (m matcher) match(name string) bool {
	if m.names[name] {
		return true
	}
	for _, g := range m.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// New builds a Set from in-memory entries.
func New(dirs, files []string) (*Set, error) {
	dm, err := compile(dirs)
	if err != nil {
		return nil, fmt.Errorf("ignore dirs: %w", err)
	}
	fm, err := compile(files)
	if err != nil {
		return nil, fmt.Errorf("ignore files: %w", err)
	}
	return &Set{dirs: dm, files: fm}, nil
}

// Load reads the directory and file ignore lists once. A missing file is
// treated as an empty list.
func Load(dirsFile, filesFile string) (*Set, error) {
	dirs, err := readList(dirsFile)
	if err != nil {
		return nil, err
	}
	files, err := readList(filesFile)
	if err != nil {
		return nil, err
	}
	return New(dirs, files)
}

// SkipDir reports whether a directory with this base name is excluded.
func (s *Set) SkipDir(name string) bool {
	return s != nil && s.dirs.match(name)
}

// SkipFile reports whether a file with this base name is excluded.
func (s *Set) SkipFile(name string) bool {
	return s != nil && s.files.match(name)
}

func compile(entries []string) (matcher, error) {
	m := matcher{names: make(map[string]bool)}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" || strings.HasPrefix(e, "#") {
			continue
		}
		if !strings.ContainsAny(e, "*?[{") {
			m.names[e] = true
			continue
		}
		g, err := glob.Compile(e)
		if err != nil {
			return matcher{}, fmt.Errorf("pattern %q: %w", e, err)
		}
		m.patterns = append(m.patterns, g)
	}
	return m, nil
}

func readList(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ignore list: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ignore list %s: %w", path, err)
	}
	return lines, nil
}
