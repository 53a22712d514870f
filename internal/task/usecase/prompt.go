package usecase

import (
	"fmt"
	"time"
)

const voiceSystemInstruction = "You are a task parsing assistant. Extract structured task information from natural language input."

const voicePromptTemplate = `You are an assistant that breaks down voice inputs into multiple structured task JSON objects.
Today is %s
Instructions:
- Split the voice input into multiple distinct tasks, if applicable.
- For each task, extract:
- title: A clear, actionable title.
- deadline: (format YYYY-MM-DDTHH:MM) if mentioned like today, tomorrow or next friday, resolved against today's date; else if not mentioned any time make it a week from today (%s).
- estimatedTime: (e.g. "2 hours") if mentioned; else empty string.
- priority: Based on urgency words ("low", "medium", "high", or "urgent").
- description: Any context or details.
- If a field is not found, leave it empty or null.

Voice input: %q

Return only a JSON array of task objects, like:
[
  {
    "title": "Practice DSA",
    "deadline": "2025-08-01T20:00",
    "estimatedTime": "2 hours",
    "priority": "high",
    "description": "For upcoming placement drive"
  },
  {
    "title": "Finish internship work",
    "deadline": "",
    "estimatedTime": "",
    "priority": "medium",
    "description": ""
  },
  {
    "title": "Complete college assignment",
    "deadline": "",
    "estimatedTime": "",
    "priority": "medium",
    "description": "Due this week"
  }
]`

const (
	promptDateLayout     = "2006-01-02"
	promptDeadlineLayout = "2006-01-02T15:04"
)

// buildVoicePrompt renders the task splitting prompt for one transcript.
func (uc *implUseCase) buildVoicePrompt(transcript string, today time.Time) string {
	today = today.In(uc.dateMath.Location())
	return fmt.Sprintf(voicePromptTemplate,
		today.Format(promptDateLayout),
		uc.dateMath.DefaultDeadline(today).Format(promptDeadlineLayout),
		transcript,
	)
}
