package disc

import "strings"

const (
	questionsPerSkill = 4
	maxSkillQuestions = 12 // 3 matched skills
	minQuestions      = 20
	maxQuestions      = 30
)

// SelectQuestions assembles the interview question set for a posting:
// up to 4 bank questions per matched skill (first 3 matched skills), then
// the operator-authored extra questions, then generic fallback padding up
// to 20, everything capped at 30. Unmatched skill names are skipped
// silently; the function is total over any input.
func SelectQuestions(skillNames []string, extraQuestionsRaw string) []string {
	questions := make([]string, 0, maxQuestions)

	seen := map[string]bool{}
	for _, name := range skillNames {
		if len(questions) >= maxSkillQuestions {
			break
		}
		key := normalizeSkill(name)
		bank, ok := questionBank[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		questions = append(questions, bank[:questionsPerSkill]...)
	}

	questions = append(questions, splitExtraQuestions(extraQuestionsRaw)...)

	for _, q := range fallbackQuestions {
		if len(questions) >= minQuestions {
			break
		}
		questions = append(questions, q)
	}

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

// splitExtraQuestions breaks the posting's free-text extra questions on
// real newlines and on literal "\n" escape sequences, dropping blank lines.
func splitExtraQuestions(raw string) []string {
	raw = strings.ReplaceAll(raw, `\n`, "\n")
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
