// ABOUTME: Environment variable expansion in inputrc variable values
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in every variable value of rc,
// including application sections.
func ResolveEnvVars(rc *Inputrc) {
	if rc == nil {
		return
	}
	for k, v := range rc.Variables {
		rc.Variables[k] = expandEnv(v)
	}
	for _, app := range rc.Applications {
		if app == nil {
			continue
		}
		for k, v := range app.Variables {
			app.Variables[k] = expandEnv(v)
		}
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
