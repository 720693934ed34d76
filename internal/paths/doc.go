// Package paths resolves the directories munconf reads from.
//
// The config directory follows the XDG Base Directory layout through
// github.com/adrg/xdg (<ConfigHome>/munconf, with the platform equivalents
// on macOS and Windows) and can be moved with MUNCONF_CONFIG_DIR.
package paths
