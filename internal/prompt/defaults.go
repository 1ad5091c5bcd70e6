package prompt

// DefaultPromptName is the prompt used when the caller does not pick one.
const DefaultPromptName = "General Summary"

// DefaultLibrary returns the shipped prompt set. It is used whenever no
// prompt file exists yet.
func DefaultLibrary() *Library {
	l := NewLibrary()
	l.Set(DefaultPromptName,
		"You are an executive assistant. Provide 5-10 concise bullet points summarizing the conversation. "+
			"Focus on decisions, action items, deadlines, and unresolved questions. Include owners when possible.\n{transcript}")
	l.Set("LB Update (one line)",
		"Produce a single-line status update no longer than 300 characters covering current status, blockers, "+
			"and the next planned step. Do not add bullet points or labels.\n{transcript}")
	l.Set("Radiology Downtime (Ops)",
		"Summarize the incident for hospital operations leadership. Highlight impact, timeline, workarounds, "+
			"communication points, and next actions. Keep it concise and actionable.\n{transcript}")
	l.Set("Land Listing Summary",
		"Imagine you are briefing a buyer's agent about a new property listing. Provide the buyer persona, top "+
			"reasons to care, risks, next actions, and 3-5 attention-grabbing headlines (each 34 characters or fewer). "+
			"{transcript}")
	return l
}
