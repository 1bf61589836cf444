package prompt

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PathCompleter completes file and directory names. Files are offered only
// when their extension is in exts (any file when exts is empty).
func PathCompleter(exts ...string) Completer {
	return func(input string) *CompletionResult {
		return completePath(input, exts)
	}
}

// CompletePath completes input against the file system.
func CompletePath(input string) *CompletionResult {
	return completePath(input, nil)
}

// completePath splits input at its last slash into a directory and a name
// prefix, then lists matching entries: directories first with a trailing
// slash, then files, each group sorted. Hidden entries are skipped unless
// the prefix starts with a dot. An unreadable directory yields nil.
func completePath(input string, exts []string) *CompletionResult {
	dirPart, name := "", input
	if i := strings.LastIndex(input, "/"); i >= 0 {
		dirPart, name = input[:i+1], input[i+1:]
	}

	dir := expandHome(dirPart)
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var dirs, files []string
	for _, entry := range entries {
		n := entry.Name()
		if !strings.HasPrefix(n, name) {
			continue
		}
		if strings.HasPrefix(n, ".") && !strings.HasPrefix(name, ".") {
			continue
		}
		if isDir(dir, entry) {
			dirs = append(dirs, n+"/")
			continue
		}
		if matchesExt(n, exts) {
			files = append(files, n)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)
	matches := append(dirs, files...)

	res := &CompletionResult{Matches: matches, Prefix: dirPart, Completed: input}
	if len(matches) > 0 {
		res.Completed = dirPart + commonPrefix(matches)
	}
	return res
}

func isDir(dir string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}

func matchesExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// expandHome resolves a leading ~ for listing only; the buffer keeps ~.
func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return home + p[1:]
}

// commonPrefix returns the longest rune prefix shared by all of list.
func commonPrefix(list []string) string {
	if len(list) == 0 {
		return ""
	}
	prefix := []rune(list[0])
	for _, s := range list[1:] {
		r := []rune(s)
		n := 0
		for n < len(prefix) && n < len(r) && prefix[n] == r[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return string(prefix)
}
