// Package config loads munconf's own settings.
//
// Settings come from, in increasing precedence: built-in defaults, a
// config.yaml found in the current directory or the munconf config
// directory (see [paths.ConfigDir]), and MUNCONF_* environment variables.
//
//	version: 1
//	catalog_file: ./catalog.yaml   # replaces the embedded catalog
//	faq_dir: ~/faq                 # extra FAQ markdown documents
//	output: text                   # text or json
//	watch_debounce: 200ms
//
// Call [Init] once at startup, then [Load]. Loaded configurations are
// validated; [Validate] can also be called directly and returns one error
// per offending field.
package config
