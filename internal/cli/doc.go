// Package cli implements the patterns command line.
//
// Every subcommand runs one demonstration once and exits:
//
//	patterns memento              Bounded undo history with a caretaker
//	patterns chain                Chain of responsibility over 1..99
//	patterns iterator             Forward and reverse traversal
//	patterns observer             Subject notifying ID watchers
//	patterns version              Build information
//
// Settings come from --config (TOML or YAML), an optional .env file,
// PATTERNS_* environment variables and flags, later sources winning.
package cli
