// Package config loads settings for the patterns command.
//
// Settings are resolved in layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A configuration file, TOML or YAML chosen by extension
//  3. A .env file, if present
//  4. PATTERNS_* environment variables
//
// Command-line flags are applied on top by the cli package.
//
// A missing configuration file or .env file is not an error. A file that
// exists but cannot be parsed yields a *ParseError.
//
// Example TOML:
//
//	[history]
//	capacity = 4
//
//	[logging]
//	level = "debug"
//
//	[[chain.handlers]]
//	name = "Fives"
//	expression = "n % 5 == 0"
package config
