package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// LogConfig controls the event log of the commands.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"`
}

// Config holds user configuration values.
type Config struct {
	Keymap    map[string]Keybinding
	ThemeName string
	Theme     Theme
	Log       LogConfig
}

// fileConfig is the on-disk YAML layout.
type fileConfig struct {
	Keymap map[string]string `yaml:"keymap"`
	Theme  string            `yaml:"theme"`
	Colors map[string]string `yaml:"colors"`
	Log    LogConfig         `yaml:"log"`
}

// Commands understood by the editor, in the order they are listed in help.
var Commands = []string{"quit", "clear", "home", "end", "kill", "discard", "yank"}

// Default returns a Config with default key mappings.
func Default() *Config {
	return &Config{
		Keymap:    DefaultKeymap(),
		ThemeName: "default",
		Theme:     DefaultTheme(),
	}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit":    mustParse("Ctrl+Q"),
		"clear":   mustParse("Ctrl+L"),
		"home":    mustParse("Ctrl+A"),
		"end":     mustParse("Ctrl+E"),
		"kill":    mustParse("Ctrl+K"),
		"discard": mustParse("Ctrl+U"),
		"yank":    mustParse("Ctrl+Y"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Trace(err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Annotatef(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration on top of the defaults.
func Parse(data []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.UnmarshalStrict(data, &fc); err != nil {
		return nil, errors.Annotate(err, "parsing yaml")
	}

	cfg := Default()
	if fc.Theme != "" {
		th, ok := BuiltinThemes[strings.ToLower(fc.Theme)]
		if !ok {
			return nil, errors.Errorf("unknown theme %q (known: %s)", fc.Theme, strings.Join(themeNames(), ", "))
		}
		cfg.ThemeName = strings.ToLower(fc.Theme)
		cfg.Theme = th
	}
	if err := cfg.Theme.apply(fc.Colors); err != nil {
		return nil, errors.Trace(err)
	}

	for cmd, binding := range fc.Keymap {
		if !isCommand(cmd) {
			return nil, errors.Errorf("unknown command %q in keymap", cmd)
		}
		kb, err := ParseKeybinding(binding)
		if err != nil {
			return nil, errors.Annotatef(err, "keymap %s", cmd)
		}
		cfg.Keymap[cmd] = kb
	}
	cfg.Log = fc.Log
	return cfg, nil
}

// LoadDefault attempts to read ~/.gapbuf/config.yaml.
func LoadDefault() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(home, ".gapbuf", "config.yaml")
	return Load(path)
}

// Command returns the name of the command bound to ev, or "" if none.
func (c *Config) Command(ev *tcell.EventKey) string {
	for _, cmd := range Commands {
		if kb, ok := c.Keymap[cmd]; ok && kb.Matches(ev) {
			return cmd
		}
	}
	return ""
}

func isCommand(name string) bool {
	for _, c := range Commands {
		if c == name {
			return true
		}
	}
	return false
}

func themeNames() []string {
	names := make([]string, 0, len(BuiltinThemes))
	for n := range BuiltinThemes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseKeybinding converts a textual key description like "Ctrl+S" into a
// Keybinding. Currently only Ctrl+<letter> is supported.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.Errorf("invalid keybinding: %s", s)
	}
	if !strings.EqualFold(strings.TrimSpace(parts[0]), "ctrl") {
		return Keybinding{}, errors.Errorf("invalid modifier in keybinding: %s", s)
	}
	r := []rune(strings.ToLower(strings.TrimSpace(parts[1])))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.Errorf("invalid key in keybinding: %s", s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, err := ParseKeybinding(s)
	if err != nil {
		panic(err)
	}
	return kb
}

// String renders the binding the way ParseKeybinding accepts it.
func (k Keybinding) String() string {
	return "Ctrl+" + strings.ToUpper(string(k.Rune))
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl && k.Rune >= 'a' && k.Rune <= 'z' {
		if ev.Key() == tcell.KeyCtrlA+tcell.Key(k.Rune-'a') {
			return true
		}
	}
	return false
}
