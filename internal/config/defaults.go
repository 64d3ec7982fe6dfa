// Package config provides configuration loading and defaults for gameverse.
package config

import "time"

// DefaultConfigDir is the default location for gameverse configuration and data.
const DefaultConfigDir = "~/.config/gameverse"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "gameverse.db"

// DefaultJSONName is the filename for the JSON storage engine.
const DefaultJSONName = "gameverse.json"

// DefaultEngine is the storage engine used when none is configured.
const DefaultEngine = "sqlite"

// DefaultVoice holds the voice controller defaults.
var DefaultVoice = Voice{
	Lang:                 "en-US",
	PromptDelay:          time.Second,
	Cooldown:             5 * time.Second,
	EndRestartDelay:      time.Second,
	ManualRestartDelay:   500 * time.Millisecond,
	BackoffBase:          3 * time.Second,
	BackoffMax:           15 * time.Second,
	MaxConsecutiveErrors: 3,
}

// DefaultSpeech holds the speech synthesis defaults.
var DefaultSpeech = Speech{Rate: 1, Pitch: 1, Volume: 1}

// DefaultDispatch holds the action pacing defaults.
var DefaultDispatch = Dispatch{
	NavigateDelay: time.Second,
	CloseDelay:    1500 * time.Millisecond,
	ReplyDelay:    500 * time.Millisecond,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
