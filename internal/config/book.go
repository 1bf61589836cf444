package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrNoBook is returned when no prompt book path is configured.
var ErrNoBook = errors.New("no prompt book configured")

//go:embed demo.yaml
var demoBook []byte

// Book is a YAML document of static prompt data: menus, dashboards and
// multi-select lists, keyed by name.
type Book struct {
	Menus        map[string]MenuSpec        `yaml:"menus"`
	Dashboards   map[string]DashboardSpec   `yaml:"dashboards"`
	MultiSelects map[string]MultiSelectSpec `yaml:"multiselects"`
}

// OptionSpec describes one menu option.
type OptionSpec struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Help        string `yaml:"help"`
}

// MenuSpec describes a single-choice menu.
type MenuSpec struct {
	Question string       `yaml:"question"`
	Exit     bool         `yaml:"exit"`
	Options  []OptionSpec `yaml:"options"`
}

// ItemSpec describes a dashboard item.
type ItemSpec struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Help  string `yaml:"help"`
}

// SectionSpec groups dashboard items.
type SectionSpec struct {
	Title string     `yaml:"title"`
	Items []ItemSpec `yaml:"items"`
}

// ActionSpec binds a dashboard hotkey.
type ActionSpec struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// DashboardSpec describes a dashboard.
type DashboardSpec struct {
	Title    string        `yaml:"title"`
	Sections []SectionSpec `yaml:"sections"`
	Actions  []ActionSpec  `yaml:"actions"`
}

// MultiSelectSpec describes a multi-select list and its initial selection.
type MultiSelectSpec struct {
	Question string   `yaml:"question"`
	Items    []string `yaml:"items"`
	Selected []string `yaml:"selected"`
}

// LoadBook reads and validates the book at path.
func LoadBook(path string) (*Book, error) {
	if path == "" {
		return nil, ErrNoBook
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt book: %w", err)
	}
	book, err := ParseBook(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return book, nil
}

// DemoBook returns the built-in example book.
func DemoBook() *Book {
	book, err := ParseBook(demoBook)
	if err != nil {
		panic(fmt.Sprintf("embedded demo book: %v", err))
	}
	return book
}

// ParseBook decodes and validates a book.
func ParseBook(data []byte) (*Book, error) {
	var book Book
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("failed to parse prompt book: %w", err)
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}
	return &book, nil
}

// Validate checks the invariants the prompts rely on: options and items
// are present, item keys are unique per dashboard and action keys are a
// single character.
func (b *Book) Validate() error {
	for name, m := range b.Menus {
		if len(m.Options) == 0 {
			return fmt.Errorf("menu %q has no options", name)
		}
	}
	for name, d := range b.Dashboards {
		seen := map[string]bool{}
		for _, s := range d.Sections {
			for _, it := range s.Items {
				if it.Key == "" {
					return fmt.Errorf("dashboard %q: item %q has no key", name, it.Label)
				}
				if seen[it.Key] {
					return fmt.Errorf("dashboard %q: duplicate item key %q", name, it.Key)
				}
				seen[it.Key] = true
			}
		}
		actions := map[string]bool{}
		for _, a := range d.Actions {
			if utf8.RuneCountInString(a.Key) != 1 {
				return fmt.Errorf("dashboard %q: action key %q must be one character", name, a.Key)
			}
			if actions[a.Key] {
				return fmt.Errorf("dashboard %q: duplicate action key %q", name, a.Key)
			}
			actions[a.Key] = true
		}
	}
	for name, ms := range b.MultiSelects {
		if len(ms.Items) == 0 {
			return fmt.Errorf("multiselect %q has no items", name)
		}
	}
	return nil
}

// Menu returns the named menu.
func (b *Book) Menu(name string) (MenuSpec, error) {
	m, ok := b.Menus[name]
	if !ok {
		return MenuSpec{}, fmt.Errorf("menu %q not found (have %v)", name, sortedKeys(b.Menus))
	}
	return m, nil
}

// Dashboard returns the named dashboard.
func (b *Book) Dashboard(name string) (DashboardSpec, error) {
	d, ok := b.Dashboards[name]
	if !ok {
		return DashboardSpec{}, fmt.Errorf("dashboard %q not found (have %v)", name, sortedKeys(b.Dashboards))
	}
	return d, nil
}

// MultiSelect returns the named multi-select list.
func (b *Book) MultiSelect(name string) (MultiSelectSpec, error) {
	ms, ok := b.MultiSelects[name]
	if !ok {
		return MultiSelectSpec{}, fmt.Errorf("multiselect %q not found (have %v)", name, sortedKeys(b.MultiSelects))
	}
	return ms, nil
}

// SetValue updates the value of a dashboard item in place.
func (d *DashboardSpec) SetValue(key, value string) bool {
	for si := range d.Sections {
		for ii := range d.Sections[si].Items {
			if d.Sections[si].Items[ii].Key == key {
				d.Sections[si].Items[ii].Value = value
				return true
			}
		}
	}
	return false
}

// Item returns the item with key.
func (d *DashboardSpec) Item(key string) (ItemSpec, bool) {
	for _, s := range d.Sections {
		for _, it := range s.Items {
			if it.Key == key {
				return it, true
			}
		}
	}
	return ItemSpec{}, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
