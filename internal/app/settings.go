package app

import (
	"github.com/blackwell-systems/gameverse/internal/config"
	"github.com/blackwell-systems/gameverse/internal/dispatch"
	"github.com/blackwell-systems/gameverse/internal/voice"
)

func voiceTiming(cfg *config.Config) voice.Timing {
	return voice.Timing{
		PromptDelay:          cfg.Voice.PromptDelay,
		Cooldown:             cfg.Voice.Cooldown,
		EndRestartDelay:      cfg.Voice.EndRestartDelay,
		ManualRestartDelay:   cfg.Voice.ManualRestartDelay,
		BackoffBase:          cfg.Voice.BackoffBase,
		BackoffMax:           cfg.Voice.BackoffMax,
		MaxConsecutiveErrors: cfg.Voice.MaxConsecutiveErrors,
	}
}

func voiceSpeech(cfg *config.Config) voice.Speech {
	return voice.Speech{Rate: cfg.Speech.Rate, Pitch: cfg.Speech.Pitch, Volume: cfg.Speech.Volume}
}

// consoleDelays keeps the configured action pacing but prints replies
// immediately, since the terminal has no typing animation to wait for.
func consoleDelays(cfg *config.Config) dispatch.Delays {
	return dispatch.Delays{
		Navigate: cfg.Dispatch.NavigateDelay,
		Close:    cfg.Dispatch.CloseDelay,
	}
}
