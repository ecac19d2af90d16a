package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/vaughan0/go-ini"
)

const configSection = "anagrams"

// configKeys maps the keys accepted in the [anagrams] section of a config
// file to the flags they set.
var configKeys = map[string]string{
	"list":     "list",
	"verbose":  "v",
	"max-line": "max-line",
	"history":  "history",
	"fgprof":   "fgprof",
}

// loadConfig reads the INI file at name and applies its [anagrams] section
// to flags. Flags that were given on the command line keep their values.
func loadConfig(name string, flags *flag.FlagSet) error {
	file, err := ini.LoadFile(name)
	if err != nil {
		return fmt.Errorf("error loading config (%s): %s", name, err)
	}
	return applyConfig(file.Section(configSection), flags)
}

func applyConfig(section ini.Section, flags *flag.FlagSet) error {
	explicit := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	keys := make([]string, 0, len(section))
	for key := range section {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		name, ok := configKeys[key]
		if !ok {
			return fmt.Errorf("config: unknown key %q in [%s]", key, configSection)
		}
		if explicit[name] {
			continue
		}
		if err := flags.Set(name, section[key]); err != nil {
			return fmt.Errorf("config: bad value for %s: %s", key, err)
		}
	}
	return nil
}
