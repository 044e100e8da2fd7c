//go:build windows

package config

// mapEnvKey translates common Unix variable names used in $(VAR) placeholders.
func mapEnvKey(key string) string {
	switch key {
	case "HOSTNAME":
		return "COMPUTERNAME"
	case "USER":
		return "USERNAME"
	}
	return key
}
