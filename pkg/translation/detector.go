package translation

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// Detection is one language guess with its confidence.
type Detection struct {
	Lang       string
	Confidence float64
}

// EnsembleDetector combines three independent signals — script statistics,
// stopword dictionaries, and character-trigram profiles — into one guess.
// It is pure and safe for concurrent use.
type EnsembleDetector struct{}

// NewEnsembleDetector creates a detector.
func NewEnsembleDetector() *EnsembleDetector {
	return &EnsembleDetector{}
}

// Detect returns the most likely language of text with a combined
// confidence in [0,1]. Empty or signal-free text yields ("", 0).
func (d *EnsembleDetector) Detect(text string) Detection {
	text = strings.TrimSpace(text)
	if text == "" {
		return Detection{}
	}

	// Non-Latin scripts identify the language (or a tiny candidate set)
	// almost unambiguously; the other signals only apply to Latin text.
	if det, ok := detectByScript(text); ok {
		return det
	}

	stopword := detectByStopwords(text)
	trigram := detectByTrigrams(text)

	// Agreement between independent signals is the confidence driver.
	switch {
	case stopword.Lang != "" && stopword.Lang == trigram.Lang:
		conf := 0.6 + 0.4*(stopword.Confidence+trigram.Confidence)/2
		return Detection{Lang: stopword.Lang, Confidence: clamp01(conf)}
	case stopword.Confidence >= trigram.Confidence && stopword.Lang != "":
		return Detection{Lang: stopword.Lang, Confidence: clamp01(stopword.Confidence * 0.8)}
	case trigram.Lang != "":
		return Detection{Lang: trigram.Lang, Confidence: clamp01(trigram.Confidence * 0.8)}
	}
	return Detection{}
}

// NormalizeLang canonicalizes a language code to its base tag ("en", "es").
// Unparseable codes are returned lowercased as-is.
func NormalizeLang(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	base, _ := tag.Base()
	return base.String()
}

// detectByScript classifies text whose dominant script pins the language
// down. Latin-script text returns ok=false and is left to the other signals.
func detectByScript(text string) (Detection, bool) {
	counts := make(map[string]int)
	total := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			counts["cyrillic"]++
		case unicode.Is(unicode.Arabic, r):
			counts["arabic"]++
		case unicode.Is(unicode.Hangul, r):
			counts["hangul"]++
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			counts["kana"]++
		case unicode.Is(unicode.Han, r):
			counts["han"]++
		case unicode.Is(unicode.Devanagari, r):
			counts["devanagari"]++
		case unicode.Is(unicode.Greek, r):
			counts["greek"]++
		case unicode.Is(unicode.Hebrew, r):
			counts["hebrew"]++
		}
	}
	if total == 0 {
		return Detection{}, false
	}

	best, bestCount := "", 0
	for script, n := range counts {
		if n > bestCount {
			best, bestCount = script, n
		}
	}
	share := float64(bestCount) / float64(total)
	if best == "" || share < 0.3 {
		return Detection{}, false
	}

	lang := map[string]string{
		"cyrillic":   "ru",
		"arabic":     "ar",
		"hangul":     "ko",
		"kana":       "ja",
		"devanagari": "hi",
		"greek":      "el",
		"hebrew":     "he",
	}[best]

	// Han without kana is Chinese; with kana the kana branch already won.
	if best == "han" {
		if counts["kana"] > 0 {
			lang = "ja"
		} else {
			lang = "zh"
		}
	}
	if lang == "" {
		return Detection{}, false
	}
	return Detection{Lang: lang, Confidence: clamp01(0.6 + 0.4*share)}, true
}

// stopwords are high-frequency function words per language. Hits are strong
// evidence because function words rarely cross languages.
var stopwords = map[string][]string{
	"en": {"the", "and", "is", "are", "of", "to", "in", "that", "it", "for", "with", "you", "this", "have", "not"},
	"es": {"el", "la", "los", "las", "de", "que", "y", "en", "un", "una", "es", "por", "con", "para", "como", "pero", "más", "se", "lo"},
	"fr": {"le", "la", "les", "des", "de", "et", "est", "en", "un", "une", "que", "pour", "dans", "avec", "pas", "vous"},
	"de": {"der", "die", "das", "und", "ist", "ich", "nicht", "mit", "ein", "eine", "für", "auf", "sie", "wir", "haben"},
	"it": {"il", "la", "di", "che", "e", "un", "una", "per", "con", "sono", "non", "come", "della", "questo"},
	"pt": {"o", "a", "os", "as", "de", "que", "e", "um", "uma", "para", "com", "não", "por", "está", "você"},
	"nl": {"de", "het", "een", "en", "van", "is", "dat", "niet", "met", "voor", "zijn", "maar", "ook"},
	"tr": {"bir", "ve", "bu", "için", "ile", "de", "da", "ne", "gibi", "daha", "çok", "ama"},
	"pl": {"nie", "jest", "to", "się", "na", "i", "z", "co", "jak", "ale", "czy", "tak"},
}

func detectByStopwords(text string) Detection {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return Detection{}
	}

	scores := make(map[string]int)
	for lang, list := range stopwords {
		set := make(map[string]struct{}, len(list))
		for _, w := range list {
			set[w] = struct{}{}
		}
		for _, w := range words {
			w = strings.Trim(w, ".,!?;:\"'()")
			if _, ok := set[w]; ok {
				scores[lang]++
			}
		}
	}

	best, bestScore, second := "", 0, 0
	for lang, s := range scores {
		if s > bestScore {
			best, second, bestScore = lang, bestScore, s
		} else if s > second {
			second = s
		}
	}
	if bestScore == 0 {
		return Detection{}
	}

	coverage := float64(bestScore) / float64(len(words))
	margin := float64(bestScore-second) / float64(bestScore)
	return Detection{Lang: best, Confidence: clamp01(0.4 + 0.4*coverage + 0.2*margin)}
}

// trigramProfiles hold the most frequent character trigrams per language,
// derived from news corpora. Ranks matter more than exact frequencies.
var trigramProfiles = map[string][]string{
	"en": {" th", "the", "he ", " an", "and", "nd ", " to", "ing", "ng ", " of", "of ", "ed ", " in", "ion", "tio"},
	"es": {" de", "de ", " la", "la ", "os ", " qu", "que", "ue ", " el", "en ", "as ", " co", "ar ", "es ", "ión"},
	"fr": {" de", "de ", " le", "le ", "es ", "ent", "nt ", " la", "la ", "e d", " et", "et ", "ion", " pa", "ais"},
	"de": {"en ", "er ", " de", "der", "ie ", " di", "die", "ch ", "ein", " ei", "ich", "sch", "und", " un", "ung"},
	"it": {" di", "di ", " co", "re ", "la ", " la", "to ", "no ", " un", "he ", "che", " ch", "one", "ell", "are"},
	"pt": {" de", "de ", " co", "os ", " a ", "ão ", "ção", " qu", "que", "ue ", " es", "ent", "do ", " do", "ada"},
	"nl": {"en ", " de", "de ", "an ", " he", "het", "et ", "van", " va", "een", " ee", "n d", "er ", " en"},
}

func detectByTrigrams(text string) Detection {
	t := strings.ToLower(text)
	if len(t) < 3 {
		return Detection{}
	}

	grams := make(map[string]int)
	runes := []rune(t)
	for i := 0; i+3 <= len(runes); i++ {
		grams[string(runes[i:i+3])]++
	}

	type scored struct {
		lang  string
		score float64
	}
	var results []scored
	for lang, profile := range trigramProfiles {
		score := 0.0
		for rank, g := range profile {
			if n, ok := grams[g]; ok && n > 0 {
				// Higher-ranked profile trigrams weigh more.
				score += float64(len(profile)-rank) / float64(len(profile))
			}
		}
		results = append(results, scored{lang, score})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].score > results[j].score })

	if len(results) == 0 || results[0].score == 0 {
		return Detection{}
	}
	margin := 1.0
	if len(results) > 1 && results[0].score > 0 {
		margin = (results[0].score - results[1].score) / results[0].score
	}
	strength := results[0].score / float64(len(trigramProfiles["en"]))
	return Detection{Lang: results[0].lang, Confidence: clamp01(0.3 + 0.5*strength + 0.2*margin)}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
