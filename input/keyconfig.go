package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// keyFile is the on-disk keymap layout
//
//	[keys]
//	i = "move_up"
//	space = "none"
//
//	[special_keys]
//	f2 = "toggle_debug"
type keyFile struct {
	Keys        map[string]string `toml:"keys"`
	SpecialKeys map[string]string `toml:"special_keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections/keys present in TOML are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}

	kt := &KeyTable{}
	if raw.Keys != nil {
		kt.Runes = make(map[rune]KeyEntry, len(raw.Keys))
		for keyStr, action := range raw.Keys {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = entry
		}
	}
	if raw.SpecialKeys != nil {
		kt.SpecialKeys = make(map[tcell.Key]KeyEntry, len(raw.SpecialKeys))
		for keyStr, action := range raw.SpecialKeys {
			k, ok := keyByName(keyStr)
			if !ok {
				return nil, fmt.Errorf("[special_keys] unknown key name: %q", keyStr)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[special_keys] key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = entry
		}
	}
	return kt, nil
}

// LoadKeyConfigFile reads a keymap and merges it over the defaults
// An empty path returns the defaults
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	if path == "" {
		return DefaultKeyTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}

// keyByName resolves tcell key names case-insensitively ("Up", "F1", "Ctrl-Q")
func keyByName(name string) (tcell.Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range tcell.KeyNames {
		if strings.ToLower(n) == name {
			return k, true
		}
	}
	return 0, false
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with IntentNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.Intent == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
