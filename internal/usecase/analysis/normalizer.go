package analysis

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
	"github.com/johnquangdev/meeting-copilot/pkg/ai"
)

var (
	listMarkerRe = regexp.MustCompile(`^(?:[-*•‣◦▪–]|\d{1,3}[.)]|\(\d{1,3}\))\s+`)
	checkboxRe   = regexp.MustCompile(`^\[[ xX]?\]\s*`)
	subjectRe    = regexp.MustCompile(`(?i)^\**\s*subject\s*\**\s*:\s*\**\s*(.+?)\s*\**$`)
	scoreRe      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:/\s*(\d+))?`)
)

// item keys tried, in order, when a list element is an object
var objectTextKeys = []string{"title", "task", "text", "question", "description", "item"}

func normalizeActionItems(raw string) (*entities.AnalysisResult, error) {
	return &entities.AnalysisResult{
		Kind:        entities.KindActionItems,
		ActionItems: normalizeList(raw, "actionItems", "action_items", "items", "tasks"),
	}, nil
}

func normalizeQuestions(raw string) (*entities.AnalysisResult, error) {
	return &entities.AnalysisResult{
		Kind:      entities.KindMeetingQuestions,
		Questions: normalizeList(raw, "questions", "items"),
	}, nil
}

func textNormalizer(kind entities.AnalysisKind) func(raw string) (*entities.AnalysisResult, error) {
	return func(raw string) (*entities.AnalysisResult, error) {
		text := cleanText(raw)
		if text == "" {
			return nil, fmt.Errorf("%w: empty %s output", ai.ErrModelError, kind)
		}
		return &entities.AnalysisResult{Kind: kind, Analysis: text}, nil
	}
}

func normalizeFollowUp(raw string) (*entities.AnalysisResult, error) {
	text := cleanText(raw)

	if strings.HasPrefix(text, "{") {
		if fields, ok := jsonObject(text); ok {
			subject := stringValue(fields, "subject")
			body := stringValue(fields, "body", "email", "content")
			if body != "" {
				return &entities.AnalysisResult{Kind: entities.KindFollowUpEmail, Email: body, Subject: subject}, nil
			}
		}
	}

	lines := strings.Split(text, "\n")
	var subject string
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m := subjectRe.FindStringSubmatch(trimmed); m != nil {
			subject = strings.TrimSpace(m[1])
			text = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		}
		break
	}

	if text == "" {
		return nil, fmt.Errorf("%w: empty follow-up email", ai.ErrModelError)
	}
	return &entities.AnalysisResult{Kind: entities.KindFollowUpEmail, Email: text, Subject: subject}, nil
}

func normalizePitch(raw string) (*entities.AnalysisResult, error) {
	text := cleanText(raw)
	if text == "" {
		return nil, fmt.Errorf("%w: empty pitch analysis", ai.ErrModelError)
	}

	verdict, ok := pitchFromJSON(text)
	if !ok {
		verdict, ok = pitchFromLabels(text)
	}
	if !ok {
		verdict = &entities.PitchVerdict{
			Strengths:  []string{},
			Weaknesses: []string{},
			Raw:        text,
		}
	}
	return &entities.AnalysisResult{Kind: entities.KindPitchAnalysis, Pitch: verdict}, nil
}

// normalizeList turns model output into ordered, trimmed, non-empty items.
// JSON is tried first, then numbered or bulleted lines, then plain lines.
func normalizeList(raw string, keys ...string) []string {
	text := cleanText(raw)
	if isNone(text) {
		return []string{}
	}

	if items, ok := listFromJSON(text, keys); ok {
		return cleanItems(items)
	}

	var marked, plain []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if loc := listMarkerRe.FindStringIndex(line); loc != nil {
			marked = append(marked, line[loc[1]:])
			continue
		}
		plain = append(plain, line)
	}

	// a lead-in sentence next to a real list is commentary, not an item
	if len(marked) > 0 {
		return cleanItems(marked)
	}

	out := make([]string, 0, len(plain))
	for _, line := range plain {
		if strings.HasSuffix(line, ":") {
			continue
		}
		out = append(out, line)
	}
	return cleanItems(out)
}

func cleanItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		item = checkboxRe.ReplaceAllString(item, "")
		if strings.HasPrefix(item, "**") && strings.HasSuffix(item, "**") && len(item) > 4 {
			item = item[2 : len(item)-2]
		}
		item = strings.TrimSpace(strings.Trim(item, `"`))
		if item == "" || isNone(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// listFromJSON only trusts text that is JSON, optionally after a short lead-in ending in an object
func listFromJSON(text string, keys []string) ([]string, bool) {
	candidate := extractJSON(text)
	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") &&
		!(strings.HasPrefix(candidate, "{") && strings.HasSuffix(text, "}")) {
		return nil, false
	}
	switch {
	case strings.HasPrefix(candidate, "["):
		var arr []json.RawMessage
		if err := json.Unmarshal([]byte(candidate), &arr); err != nil {
			return nil, false
		}
		return itemsFromArray(arr), true
	case strings.HasPrefix(candidate, "{"):
		fields, ok := jsonObject(candidate)
		if !ok {
			return nil, false
		}
		for _, key := range keys {
			if v, ok := fields[canonicalKey(key)]; ok {
				return listValue(v), true
			}
		}
		// fall back to the first array-valued field in key order
		for _, key := range slices.Sorted(maps.Keys(fields)) {
			var arr []json.RawMessage
			if json.Unmarshal(fields[key], &arr) == nil {
				return itemsFromArray(arr), true
			}
		}
		return []string{}, true
	}
	return nil, false
}

func itemsFromArray(arr []json.RawMessage) []string {
	items := make([]string, 0, len(arr))
	for _, el := range arr {
		var s string
		if json.Unmarshal(el, &s) == nil {
			items = append(items, s)
			continue
		}
		if obj, ok := jsonObject(string(el)); ok {
			if s := stringValue(obj, objectTextKeys...); s != "" {
				items = append(items, s)
			}
		}
	}
	return items
}

// listValue accepts an array or a newline/bullet separated string
func listValue(v json.RawMessage) []string {
	var arr []json.RawMessage
	if json.Unmarshal(v, &arr) == nil {
		return itemsFromArray(arr)
	}
	var s string
	if json.Unmarshal(v, &s) == nil {
		return normalizeList(s)
	}
	return []string{}
}

func pitchFromJSON(text string) (*entities.PitchVerdict, bool) {
	fields, ok := jsonObject(extractJSON(text))
	if !ok {
		return nil, false
	}

	verdict := &entities.PitchVerdict{
		Strengths:      cleanItems(listValue(fields["strengths"])),
		Weaknesses:     cleanItems(listValue(fields["weaknesses"])),
		Recommendation: stringValue(fields, "recommendation", "verdict"),
		Structured:     true,
	}
	if v, ok := fields["marketscore"]; ok {
		verdict.MarketScore = scoreValue(v)
	}

	if len(verdict.Strengths)+len(verdict.Weaknesses) == 0 && verdict.Recommendation == "" {
		return nil, false
	}
	return verdict, true
}

type pitchSection int

const (
	sectionNone pitchSection = iota
	sectionStrengths
	sectionWeaknesses
	sectionScore
	sectionRecommendation
)

var pitchLabels = []struct {
	label   string
	section pitchSection
}{
	{"strengths", sectionStrengths},
	{"strength", sectionStrengths},
	{"weaknesses", sectionWeaknesses},
	{"weakness", sectionWeaknesses},
	{"market score", sectionScore},
	{"marketscore", sectionScore},
	{"recommendations", sectionRecommendation},
	{"recommendation", sectionRecommendation},
}

// pitchFromLabels parses "Strengths:" style sections. At least two sections must be present.
func pitchFromLabels(text string) (*entities.PitchVerdict, bool) {
	verdict := &entities.PitchVerdict{Strengths: []string{}, Weaknesses: []string{}, Structured: true}
	seen := map[pitchSection]bool{}
	var (
		current  = sectionNone
		strong   []string
		weak     []string
		recParts []string
		scoreSet bool
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if section, inline, ok := pitchHeader(line); ok {
			current = section
			seen[section] = true
			line = inline
			if line == "" {
				continue
			}
		}

		item := line
		if loc := listMarkerRe.FindStringIndex(item); loc != nil {
			item = item[loc[1]:]
		}

		switch current {
		case sectionStrengths:
			strong = append(strong, item)
		case sectionWeaknesses:
			weak = append(weak, item)
		case sectionScore:
			if !scoreSet {
				if score, ok := parseScore(item); ok {
					verdict.MarketScore = score
					scoreSet = true
				}
			}
		case sectionRecommendation:
			recParts = append(recParts, item)
		}
	}

	verdict.Strengths = cleanItems(strong)
	verdict.Weaknesses = cleanItems(weak)
	verdict.Recommendation = strings.TrimSpace(strings.Join(recParts, " "))

	if len(seen) < 2 || len(verdict.Strengths)+len(verdict.Weaknesses) == 0 {
		return nil, false
	}
	return verdict, true
}

// pitchHeader recognizes "Strengths:", "**Market Score**: 7/10", "## Weaknesses" and similar lines
func pitchHeader(line string) (pitchSection, string, bool) {
	stripped := strings.TrimLeft(line, "#* ")
	lower := strings.ToLower(stripped)
	for _, l := range pitchLabels {
		if !strings.HasPrefix(lower, l.label) {
			continue
		}
		rest := strings.TrimLeft(stripped[len(l.label):], "* ")
		if rest == "" {
			return l.section, "", true
		}
		if !strings.HasPrefix(rest, ":") {
			return sectionNone, "", false
		}
		inline := strings.TrimSpace(strings.Trim(strings.TrimSpace(rest[1:]), "*"))
		return l.section, inline, true
	}
	return sectionNone, "", false
}

// parseScore reads "7", "7/10", "8.5 / 10" or "72/100" into a 0-10 score
func parseScore(s string) (int, bool) {
	m := scoreRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if m[2] != "" {
		if denom, err := strconv.ParseFloat(m[2], 64); err == nil && denom > 0 {
			n = n / denom * 10
		}
	}
	return clampScore(n), true
}

func scoreValue(v json.RawMessage) int {
	var f float64
	if json.Unmarshal(v, &f) == nil {
		return clampScore(f)
	}
	var s string
	if json.Unmarshal(v, &s) == nil {
		score, _ := parseScore(s)
		return score
	}
	return 0
}

func clampScore(f float64) int {
	return int(math.Max(0, math.Min(10, math.Round(f))))
}

// jsonObject decodes a JSON object with keys folded by canonicalKey
func jsonObject(text string) (map[string]json.RawMessage, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, false
	}
	fields := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		fields[canonicalKey(k)] = v
	}
	return fields, true
}

// canonicalKey folds "marketScore", "market_score" and "Market Score" to the same key
func canonicalKey(k string) string {
	k = strings.ToLower(k)
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(k)
}

func stringValue(fields map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		v, ok := fields[canonicalKey(key)]
		if !ok {
			continue
		}
		var s string
		if json.Unmarshal(v, &s) == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func isNone(text string) bool {
	lower := strings.ToLower(strings.Trim(strings.TrimSpace(text), ".!"))
	switch lower {
	case "", "none", "n/a", "na", "nothing", "[]", "{}", "no action items", "no questions":
		return true
	}
	return strings.HasPrefix(lower, "no action items") || strings.HasPrefix(lower, "there are no action items")
}

// cleanText trims output and removes a surrounding markdown code fence
func cleanText(raw string) string {
	text := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if strings.HasPrefix(text, "```") {
		text = stripFence(text)
	}
	return strings.TrimSpace(text)
}

func stripFence(content string) string {
	content = strings.TrimPrefix(content, "```")
	if nl := strings.Index(content, "\n"); nl != -1 {
		// drop the language tag line
		content = content[nl+1:]
	}
	if idx := strings.LastIndex(content, "```"); idx != -1 {
		content = content[:idx]
	}
	return content
}

// extractJSON extracts JSON content from markdown code blocks or surrounding prose
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimSpace(stripFence(content))
	}
	if strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[") {
		return content
	}

	start := strings.IndexAny(content, "{[")
	if start == -1 {
		return content
	}
	closer := "}"
	if content[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(content, closer)
	if end <= start {
		return content
	}
	return content[start : end+1]
}
