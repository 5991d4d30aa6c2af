package services

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"itinera/internal/models/response_models"
	"itinera/pkg/utils"
)

// Keyword-driven text analysis. This is a rule-based stand-in for NLP, not a
// trained model: sentiment is word-list counting, intent is keyword overlap
// and entity extraction is two regexes.

const (
	analysisTypeAll       = "all"
	analysisTypeSentiment = "sentiment"
	analysisTypeEntities  = "entities"
	analysisTypeIntent    = "intent"
)

var (
	wordPattern     = regexp.MustCompile(`\b\w+\b`)
	locationPattern = regexp.MustCompile(`in ([A-Z][a-z]+)`)
	datePattern     = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
)

var positiveWords = wordSet(
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"enjoy", "like", "love", "happy", "excited", "beautiful", "best",
)

var negativeWords = wordSet(
	"bad", "terrible", "awful", "horrible", "poor", "disappointing",
	"dislike", "hate", "unhappy", "sad", "worst", "annoying",
)

var stopWords = wordSet(
	"a", "an", "the", "i", "me", "my", "we", "our", "you", "your", "he",
	"she", "it", "its", "they", "them", "their", "is", "am", "are", "was",
	"were", "be", "been", "being", "to", "of", "in", "for", "on", "with",
	"at", "by", "from", "and", "or", "but", "not", "no", "do", "does",
	"did", "have", "has", "had", "this", "that", "these", "those", "there",
	"here", "what", "which", "who", "whom", "will", "would", "can",
	"could", "shall", "should", "may", "might", "must", "so", "than",
	"too", "very", "just", "about", "into", "through", "during", "before",
	"after", "some", "such", "only", "own", "same", "as", "if", "then",
	"because", "while", "up", "down", "out", "off", "over", "under",
	"again", "further", "once", "how", "when", "where", "why", "all",
	"any", "both", "each", "few", "more", "most", "other",
)

type intentCategory struct {
	name     string
	keywords []string
}

// Fixed travel intents, scored by matched-keyword fraction. Order matters:
// it is the tie-break for equal scores.
var travelIntents = []intentCategory{
	{"find_places", []string{"find", "discover", "recommend", "suggestion", "places", "attractions"}},
	{"plan_itinerary", []string{"plan", "itinerary", "schedule", "agenda", "trip"}},
	{"food_dining", []string{"food", "restaurant", "eat", "dining", "cuisine", "meal"}},
	{"accommodation", []string{"hotel", "stay", "accommodation", "lodge", "sleep", "room"}},
	{"transportation", []string{"transport", "travel", "bus", "train", "taxi", "car", "flight"}},
	{"activity", []string{"activity", "tour", "sightseeing", "adventure", "experience"}},
	{"budget", []string{"cost", "price", "expense", "budget", "cheap", "expensive"}},
	{"weather", []string{"weather", "climate", "temperature", "rain", "sunny"}},
}

type AnalysisServiceInterface interface {
	Sentiment(text string) response_models.SentimentResult
	Intent(text string) response_models.IntentResult
	Entities(text string) response_models.EntityResult
	// Analyze dispatches on analysisType (sentiment, entities, intent, all).
	Analyze(text, analysisType string) (*response_models.AnalysisResult, error)
	Status() response_models.ComponentStatus
}

func NewAnalysisService(logger *zap.Logger) AnalysisServiceInterface {
	return &AnalysisService{
		logger:  logger,
		started: time.Now(),
	}
}

type AnalysisService struct {
	logger  *zap.Logger
	started time.Time
}

func (a *AnalysisService) Analyze(text, analysisType string) (*response_models.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, utils.ErrMissingText
	}
	if analysisType == "" {
		analysisType = analysisTypeAll
	}

	a.logger.Info("analyzing text", zap.String("analysis_type", analysisType))

	result := &response_models.AnalysisResult{}
	if analysisType == analysisTypeSentiment || analysisType == analysisTypeAll {
		sentiment := a.Sentiment(text)
		result.Sentiment = &sentiment
	}
	if analysisType == analysisTypeEntities || analysisType == analysisTypeAll {
		entities := a.Entities(text)
		result.Entities = &entities
	}
	if analysisType == analysisTypeIntent || analysisType == analysisTypeAll {
		intent := a.Intent(text)
		result.Intent = &intent
	}

	return result, nil
}

// Sentiment scores text as (pos-neg)/(pos+neg) over two fixed word lists,
// matching whole words case-insensitively.
func (a *AnalysisService) Sentiment(text string) response_models.SentimentResult {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	var positive, negative int
	for _, word := range words {
		if _, ok := positiveWords[word]; ok {
			positive++
		}
		if _, ok := negativeWords[word]; ok {
			negative++
		}
	}

	var score float64
	if total := positive + negative; total > 0 {
		score = float64(positive-negative) / float64(total)
	}
	score = math.Round(score*100) / 100

	label := "neutral"
	switch {
	case score > 0.25:
		label = "positive"
	case score < -0.25:
		label = "negative"
	}

	return response_models.SentimentResult{
		Score:         score,
		Label:         label,
		PositiveWords: positive,
		NegativeWords: negative,
	}
}

// Intent scores each travel intent as min(1, matches/keywords) over the
// normalized tokens, keeps the categories with at least one match and ranks
// them by score, stable on ties.
func (a *AnalysisService) Intent(text string) response_models.IntentResult {
	tokens := preprocess(text)

	type scoredIntent struct {
		name  string
		score float64
	}

	var scored []scoredIntent
	for _, intent := range travelIntents {
		keywords := wordSet(intent.keywords...)

		matches := 0
		for _, token := range tokens {
			if matchesKeyword(token, keywords) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		score := math.Min(1.0, float64(matches)/float64(len(intent.keywords)))
		scored = append(scored, scoredIntent{name: intent.name, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := response_models.IntentResult{
		Primary:    "unknown",
		AllIntents: make(map[string]float64, len(scored)),
	}
	for _, s := range scored {
		result.AllIntents[s.name] = s.score
	}
	if len(scored) > 0 {
		result.Primary = scored[0].name
		result.Confidence = scored[0].score
	}

	return result
}

// Entities extracts "in <Capitalized>" location mentions (deduplicated) and
// numeric date patterns (in order, duplicates kept).
func (a *AnalysisService) Entities(text string) response_models.EntityResult {
	result := response_models.EntityResult{
		Locations: []string{},
		Dates:     []string{},
	}

	seen := make(map[string]struct{})
	for _, match := range locationPattern.FindAllStringSubmatch(text, -1) {
		location := match[1]
		if _, ok := seen[location]; ok {
			continue
		}
		seen[location] = struct{}{}
		result.Locations = append(result.Locations, location)
	}

	result.Dates = append(result.Dates, datePattern.FindAllString(text, -1)...)

	return result
}

func (a *AnalysisService) Status() response_models.ComponentStatus {
	intents := make([]string, 0, len(travelIntents))
	for _, intent := range travelIntents {
		intents = append(intents, intent.name)
	}

	return response_models.ComponentStatus{
		Initialized:   a.started.Format(time.RFC3339),
		UptimeSeconds: utils.UptimeSeconds(a.started),
		Intents:       intents,
	}
}

// preprocess lowercases, strips punctuation, splits on word boundaries and
// drops stopwords. Plural folding in matchesKeyword stands in for
// lemmatization.
func preprocess(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := stopWords[word]; ok {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func matchesKeyword(token string, keywords map[string]struct{}) bool {
	if _, ok := keywords[token]; ok {
		return true
	}
	if singular := strings.TrimSuffix(token, "s"); singular != token {
		if _, ok := keywords[singular]; ok {
			return true
		}
	}
	if _, ok := keywords[token+"s"]; ok {
		return true
	}
	return false
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
