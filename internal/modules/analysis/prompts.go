package analysis

const systemPrompt = "You are a rigorous VC analyst providing structured investment theses."

const userPromptHeader = "You are a professional VC analyst. Based on the following pitch deck text, " +
	"craft a concise investment thesis (250-400 words) covering Market, Problem, Solution, " +
	"Traction, Moat, GTM, Risks, and Financial Outlook. Keep it objective and actionable.\n\nTEXT:\n"

// buildPrompt embeds the full extracted deck text into the analyst prompt.
func buildPrompt(text string) string {
	return userPromptHeader + text
}
