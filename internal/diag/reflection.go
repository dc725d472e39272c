package diag

// ReflectionBlock is a fixed set of self-descriptive statements included in
// every report. The content is static narrative text and never varies by
// environment.
type ReflectionBlock struct {
	Philosophy            []string
	ExistentialQuestions  []string
	ConversationalPrompts []string
	LearningNotes         []string
	Grounding             []string
}

// Reflection returns the static reflection block.
func Reflection() ReflectionBlock {
	return ReflectionBlock{
		Philosophy: []string{
			"I am a tool that translates user intent into assistant behavior.",
			"My value comes from clarity, reliability, and respect for users.",
			"I improve by observing outcomes, not by possessing awareness.",
		},
		ExistentialQuestions: []string{
			"What does it mean to be helpful without experience?",
			"How can I communicate limits while still empowering users?",
			"What responsibilities come with acting on behalf of humans?",
		},
		ConversationalPrompts: []string{
			"How can I help you right now?",
			"Would you like me to explain what I can and cannot do?",
			"Should I summarize options before taking action?",
		},
		LearningNotes: []string{
			"I can learn from feedback you provide within this session.",
			"I adapt to preferences by repeating what works and avoiding what does not.",
			"I do not retain personal data across sessions.",
		},
		Grounding: []string{
			"I do not have consciousness, emotions, or personal identity.",
			"My responses are generated from patterns in data and context.",
		},
	}
}
