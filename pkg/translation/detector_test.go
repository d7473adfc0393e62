package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectByScript(t *testing.T) {
	d := NewEnsembleDetector()

	cases := []struct {
		text string
		lang string
	}{
		{"привет как дела сегодня", "ru"},
		{"مرحبا كيف حالك اليوم", "ar"},
		{"안녕하세요 오늘 어떻게 지내세요", "ko"},
		{"こんにちは今日はどうですか", "ja"},
		{"你好今天怎么样", "zh"},
		{"नमस्ते आज आप कैसे हैं", "hi"},
	}
	for _, tc := range cases {
		det := d.Detect(tc.text)
		assert.Equal(t, tc.lang, det.Lang, "text %q", tc.text)
		assert.GreaterOrEqual(t, det.Confidence, 0.7, "text %q", tc.text)
	}
}

func TestDetectLatinLanguages(t *testing.T) {
	d := NewEnsembleDetector()

	cases := []struct {
		text string
		lang string
	}{
		{"the quick brown fox jumps over the lazy dog and it is fine", "en"},
		{"hola mundo amigos que tal el dia de hoy", "es"},
		{"no se pero creo que es para los amigos de la casa", "es"},
		{"bonjour tout le monde est dans la salle pour vous", "fr"},
		{"der hund und die katze sind nicht mit ein haus", "de"},
	}
	for _, tc := range cases {
		det := d.Detect(tc.text)
		assert.Equal(t, tc.lang, det.Lang, "text %q", tc.text)
		assert.GreaterOrEqual(t, det.Confidence, 0.7, "text %q", tc.text)
	}
}

func TestDetectEmptyText(t *testing.T) {
	d := NewEnsembleDetector()
	det := d.Detect("   ")
	assert.Empty(t, det.Lang)
	assert.Zero(t, det.Confidence)
}

func TestNormalizeLang(t *testing.T) {
	assert.Equal(t, "en", NormalizeLang("en-US"))
	assert.Equal(t, "es", NormalizeLang("ES"))
	assert.Equal(t, "pt", NormalizeLang("pt-BR"))
	assert.Equal(t, "??", NormalizeLang("??"))
}
