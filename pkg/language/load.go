package language

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// file is the yaml layout of a language file:
//
//	name: en_GB
//	currency: "£"
//	thousands: ","
//	decimal: "."
//	months: [Jan, Feb, ...]
//	strings:
//	  GUI_QUIT_CAPTION: Quit
type file struct {
	Name      string            `yaml:"name"`
	Currency  *string           `yaml:"currency"`
	Thousands *string           `yaml:"thousands"`
	Decimal   *string           `yaml:"decimal"`
	Months    []string          `yaml:"months"`
	Strings   map[string]string `yaml:"strings"`
}

// Load parses a yaml language file. names maps the symbolic string names used
// in the file to ids; a name missing from names is an error. Conventions the
// file leaves out default to English.
func Load(data []byte, names map[string]StringID) (*Language, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse language file: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("language file has no name")
	}

	lang := English()
	lang.Name = f.Name
	if f.Currency != nil {
		lang.Currency = *f.Currency
	}
	if f.Thousands != nil {
		lang.Thousands = *f.Thousands
	}
	if f.Decimal != nil {
		lang.Decimal = *f.Decimal
	}
	if len(f.Months) != 0 {
		if len(f.Months) != 12 {
			return nil, fmt.Errorf("language %s: expected 12 month names, got %d", f.Name, len(f.Months))
		}
		copy(lang.Months[:], f.Months)
	}

	var unknown []string
	for name, s := range f.Strings {
		id, ok := names[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		lang.Strings[id] = s
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("language %s: unknown strings %v", f.Name, unknown)
	}
	return lang, nil
}

// LoadFile reads and parses a yaml language file from disk.
func LoadFile(path string, names map[string]StringID) (*Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read language file: %w", err)
	}
	return Load(data, names)
}
