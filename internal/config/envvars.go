// ABOUTME: Environment variable expansion in menu file string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in item hrefs and the more label.
// Item labels are left alone: they are displayed verbatim.
func ResolveEnvVars(f *MenuFile) {
	f.MoreLabel = expandEnv(f.MoreLabel)
	for i := range f.Items {
		f.Items[i].Href = expandEnv(f.Items[i].Href)
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}
