package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	yamlv3 "gopkg.in/yaml.v3"
)

// knownKeys are the accepted top-level keys in snake_case. The camelCase
// spelling of each is accepted too.
var knownKeys = []string{
	"file_name",
	"config_subdir",
	"folder_name",
	"candidate_paths",
	"volumes",
	"scan_exclude",
	"near_miss_limit",
	"backup_dir_name",
	"app_data_root",
	"log_level",
}

func snakeToCamel(key string) string {
	parts := strings.Split(key, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func camelToSnake(key string) string {
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// canonicalKey maps a key as written in the file to its snake_case form.
func canonicalKey(key string) (string, bool) {
	if key == "" || unicode.IsUpper([]rune(key)[0]) {
		return "", false
	}
	candidate := key
	if !strings.Contains(key, "_") {
		candidate = camelToSnake(key)
	}
	for _, known := range knownKeys {
		if candidate == known {
			return known, true
		}
	}
	return "", false
}

func registerConfigKeyAliases(v *viper.Viper) {
	for _, key := range knownKeys {
		if camel := snakeToCamel(key); camel != key {
			v.RegisterAlias(camel, key)
		}
	}
}

// validateConfigFileKeys rejects unknown keys and files that spell the same
// key in two styles. Errors carry the line of the offending key.
func validateConfigFileKeys(configPath string) error {
	if configPath == "" {
		return nil
	}
	displayPath := configPath
	if abs, err := filepath.Abs(configPath); err == nil {
		displayPath = abs
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrapf(err, "error reading config file %s", displayPath)
	}

	var doc yamlv3.Node
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return errors.Wrapf(err, "error parsing config file %s", displayPath)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yamlv3.MappingNode {
		return errors.Errorf("config file %s: expected a mapping at the top level", displayPath)
	}

	seen := make(map[string]string, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		key := keyNode.Value
		canonical, ok := canonicalKey(key)
		if !ok {
			return errors.Errorf("config file %s line %d contains invalid key %q", displayPath, keyNode.Line, key)
		}
		if previous, exists := seen[canonical]; exists && previous != key {
			return errors.Errorf("config file %s line %d: %q and %q both set %q; use one naming style",
				displayPath, keyNode.Line, previous, key, canonical)
		}
		seen[canonical] = key
	}
	return nil
}
