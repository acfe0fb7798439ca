package support

import (
	"strings"

	"hallbook/internal/models"
)

// minKeywordHits is how many question keywords a message must contain
// before the FAQ answer is used instead of the canned reply
const minKeywordHits = 2

var stopWords = map[string]bool{
	"what": true, "your": true, "does": true, "with": true,
	"have": true, "this": true, "that": true, "there": true,
}

// Answers picks the bot reply for a user message from the FAQ list
type Answers struct {
	entries []answer
}

type answer struct {
	keywords []string
	text     string
}

// NewAnswers indexes the FAQ questions by keyword
func NewAnswers(faqs []models.FAQ) *Answers {
	a := &Answers{}
	for _, f := range faqs {
		a.entries = append(a.entries, answer{keywords: keywords(f.Question), text: f.Answer})
	}
	return a
}

// Reply returns the answer of the best matching FAQ, or the canned reply
func (a *Answers) Reply(message string) string {
	text := strings.ToLower(message)

	best, bestHits := "", 0
	for _, e := range a.entries {
		hits := 0
		for _, k := range e.keywords {
			if strings.Contains(text, k) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = e.text, hits
		}
	}
	if bestHits < minKeywordHits {
		return CannedReply
	}
	return best
}

func keywords(question string) []string {
	var out []string
	for _, w := range strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	}) {
		if len(w) >= 4 && !stopWords[w] {
			out = append(out, w)
		}
	}
	return out
}
