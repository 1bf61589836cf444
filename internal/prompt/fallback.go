package prompt

import (
	"strconv"
	"strings"
)

// Fallback prompts for input that is not a terminal: print the choices,
// read a line, re-prompt until it parses.

var backWords = map[string]bool{
	"b": true, "back": true, "q": true, "quit": true, "exit": true,
}

func (t *Terminal) askFallback(m *menu) int {
	t.writef("%s\n", m.question)
	for i, o := range m.options {
		if o.Description != "" {
			t.writef("  %d. %s - %s\n", i+1, o.Label, o.Description)
		} else {
			t.writef("  %d. %s\n", i+1, o.Label)
		}
	}
	n := len(m.options)
	for {
		t.writef("Enter choice [1-%d]: ", n)
		line, err := t.readLine()
		if err != nil {
			t.write("\n")
			return Exit
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if backWords[answer] {
			return Exit
		}
		choice, err := strconv.Atoi(answer)
		if err != nil || choice < 1 || choice > n {
			t.logger.Debug("invalid menu input", "input", line)
			t.writef("Invalid choice %q. Enter a number between 1 and %d.\n", line, n)
			continue
		}
		return m.result(choice - 1)
	}
}

func (t *Terminal) dashboardFallback(d *dashboard) (DashboardResult, bool) {
	t.writef("%s\n", d.title)
	idx := 0
	for _, s := range d.sections {
		if s.Title != "" {
			t.writef("%s\n", s.Title)
		}
		for _, it := range s.Items {
			idx++
			if it.Value != "" {
				t.writef("  %d. %s: %s\n", idx, it.Label, it.Value)
			} else {
				t.writef("  %d. %s\n", idx, it.Label)
			}
		}
	}
	for _, a := range d.actions {
		t.writef("  [%s] %s\n", a.Key, a.Label)
	}
	for _, l := range d.status {
		t.writef("%s\n", l)
	}
	for {
		t.write("Enter item number or action key (empty to go back): ")
		line, err := t.readLine()
		if err != nil {
			t.write("\n")
			return DashboardResult{}, false
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			return DashboardResult{}, false
		}
		if a, ok := d.action(Key{Kind: KeyChar, Text: answer}); ok {
			return DashboardResult{Kind: ResultAction, Key: a.Key}, true
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(d.items) {
			return DashboardResult{Kind: ResultItem, Key: d.items[n-1].Key}, true
		}
		t.logger.Debug("invalid dashboard input", "input", line)
		t.writef("Invalid choice %q.\n", line)
	}
}

func (t *Terminal) readLineFallback(prompt, initial string) (string, bool) {
	if initial != "" {
		t.writef("%s[%s] ", prompt, initial)
	} else {
		t.write(prompt)
	}
	line, err := t.readLine()
	if err != nil {
		t.write("\n")
		return "", false
	}
	if line == "" && initial != "" {
		return initial, true
	}
	return line, true
}

func (t *Terminal) confirmFallback(question string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		t.writef("%s [%s]: ", question, hint)
		line, err := t.readLine()
		if err != nil {
			t.write("\n")
			return def
		}
		if v, ok := parseYesNo(line, def); ok {
			return v
		}
		t.writef("Please answer y or n.\n")
	}
}

func parseYesNo(s string, def bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
