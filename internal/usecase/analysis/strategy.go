package analysis

import (
	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
)

// strategy is everything that varies between analysis kinds.
// needsMeetings routes the request through the aggregation reader first.
type strategy struct {
	system        string
	json          bool
	maxTokens     int
	temperature   float32
	userPrompt    func(b *PromptBuilder, req entities.AnalysisRequest, meetings []*entities.Meeting) (string, error)
	normalize     func(raw string) (*entities.AnalysisResult, error)
	needsMeetings bool
}

const actionItemsSystem = `You extract action items from meeting notes.

Respond with valid JSON only. No markdown, no explanation. Schema:
{
  "actionItems": ["Concrete task starting with a verb", ...]
}

Rules:
- One entry per distinct task. Keep the owner or deadline in the text when the notes state one.
- Preserve the order in which tasks appear in the notes.
- If there are no action items, return {"actionItems": []}.`

const contentAnalysisSystem = `You analyze written content for a busy professional.

Respond in plain text with these sections, each heading on its own line:
Summary: 2-4 sentences.
Key Points: up to 5 lines starting with "- ".
Takeaways: up to 3 lines starting with "- ".

Do not add any other sections.`

const trendsSystem = `You find patterns across a person's recent meetings.

Respond in plain text with these sections, each heading on its own line:
Recurring Themes: lines starting with "- ".
Emerging Topics: lines starting with "- ".
Open Risks: lines starting with "- ".
Recommendations: lines starting with "- ".

Base every statement on the meetings provided. Do not invent meetings.`

const followUpSystem = `You write concise, professional follow-up emails after meetings.

Respond in plain text in exactly this shape:
Subject: <one line subject>

<email body: greeting, 2-4 short paragraphs or a short bullet list of decisions and next steps, sign-off>

Do not include placeholders for information that is not in the notes.`

const meetingQuestionsSystem = `You help people prepare for meetings by suggesting questions to ask.

Respond with valid JSON only. No markdown, no explanation. Schema:
{
  "questions": ["Open question ending with a question mark", ...]
}

Rules:
- 5 to 8 questions, most important first.
- Tailor them to the meeting type and participants when given.`

const pitchSystem = `You are an experienced investor evaluating a startup pitch.

Respond with valid JSON only. No markdown, no explanation. Schema:
{
  "strengths": ["...", ...],
  "weaknesses": ["...", ...],
  "marketScore": <integer 1-10 rating the market opportunity>,
  "recommendation": "1-3 sentences: invest, pass, or what must change"
}

Rules:
- 2 to 5 strengths and 2 to 5 weaknesses, each one sentence.
- Judge only what the pitch states.`

// strategies is the kind to strategy table driving the pipeline
var strategies = map[entities.AnalysisKind]strategy{
	entities.KindActionItems: {
		system:      actionItemsSystem,
		json:        true,
		maxTokens:   1024,
		temperature: 0.2,
		userPrompt:  actionItemsPrompt,
		normalize:   normalizeActionItems,
	},
	entities.KindContentAnalysis: {
		system:      contentAnalysisSystem,
		maxTokens:   1500,
		temperature: 0.4,
		userPrompt:  contentAnalysisPrompt,
		normalize:   textNormalizer(entities.KindContentAnalysis),
	},
	entities.KindTrends: {
		system:        trendsSystem,
		maxTokens:     1500,
		temperature:   0.4,
		userPrompt:    trendsPrompt,
		normalize:     textNormalizer(entities.KindTrends),
		needsMeetings: true,
	},
	entities.KindFollowUpEmail: {
		system:      followUpSystem,
		maxTokens:   1200,
		temperature: 0.5,
		userPrompt:  followUpPrompt,
		normalize:   normalizeFollowUp,
	},
	entities.KindMeetingQuestions: {
		system:      meetingQuestionsSystem,
		json:        true,
		maxTokens:   800,
		temperature: 0.6,
		userPrompt:  meetingQuestionsPrompt,
		normalize:   normalizeQuestions,
	},
	entities.KindPitchAnalysis: {
		system:      pitchSystem,
		json:        true,
		maxTokens:   1200,
		temperature: 0.3,
		userPrompt:  pitchPrompt,
		normalize:   normalizePitch,
	},
}
