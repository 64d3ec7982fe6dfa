package voice

// Speak cancels any utterance in progress and speaks text. Speaking is
// reported by Status while the synthesizer is active.
func (c *Controller) Speak(text string) {
	if c.synth == nil || text == "" {
		return
	}
	c.synth.Cancel()
	err := c.synth.Speak(Utterance{
		Text:    text,
		Rate:    c.speech.Rate,
		Pitch:   c.speech.Pitch,
		Volume:  c.speech.Volume,
		OnStart: func() { c.speaking.Store(true) },
		OnEnd:   func() { c.speaking.Store(false) },
	})
	if err != nil {
		c.speaking.Store(false)
		c.logger.Warn("speech synthesis failed", "error", err)
	}
}

// Respond speaks a dispatcher reply.
func (c *Controller) Respond(text string) { c.Speak(text) }

// StopSpeaking cancels speech in progress.
func (c *Controller) StopSpeaking() {
	if c.synth != nil {
		c.synth.Cancel()
	}
	c.speaking.Store(false)
}

// Speaking reports whether an utterance is in progress.
func (c *Controller) Speaking() bool { return c.speaking.Load() }
