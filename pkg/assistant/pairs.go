// FILE: pkg/assistant/pairs.go
// PURPOSE: Tokenizer extracting grade/credit pairs from free chat text
package assistant

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GradePair is one extracted (letter grade, credit weight) course.
type GradePair struct {
	Grade  string
	Credit decimal.Decimal
}

// ExtractGradePairs scans a message for occurrences of the grammar
//
//	PAIR := LETTER[A-Fa-f] WS? '=' WS? NUMBER
//
// separated by arbitrary text, and returns them in order of appearance.
// A small hand-rolled scanner is used instead of a regex so the grammar
// stays explicit.
func ExtractGradePairs(message string) []GradePair {
	var pairs []GradePair
	runes := []rune(message)

	i := 0
	for i < len(runes) {
		grade, ok := gradeLetter(runes[i])
		if !ok {
			i++
			continue
		}

		// LETTER consumed; allow whitespace before '='.
		j := skipSpaces(runes, i+1)
		if j >= len(runes) || runes[j] != '=' {
			i++
			continue
		}

		// '=' consumed; allow whitespace before NUMBER.
		j = skipSpaces(runes, j+1)
		number, end := scanNumber(runes, j)
		if number == "" {
			i = j
			continue
		}

		credit, err := decimal.NewFromString(number)
		if err == nil {
			pairs = append(pairs, GradePair{Grade: grade, Credit: credit})
		}
		i = end
	}

	return pairs
}

// Grades returns just the letter symbols of the pairs, in order.
func Grades(pairs []GradePair) []string {
	grades := make([]string, len(pairs))
	for i, p := range pairs {
		grades[i] = p.Grade
	}
	return grades
}

// Credits returns just the credit weights of the pairs, in order.
func Credits(pairs []GradePair) []decimal.Decimal {
	credits := make([]decimal.Decimal, len(pairs))
	for i, p := range pairs {
		credits[i] = p.Credit
	}
	return credits
}

func gradeLetter(r rune) (string, bool) {
	switch r {
	case 'A', 'B', 'C', 'D', 'E', 'F':
		return string(r), true
	case 'a', 'b', 'c', 'd', 'e', 'f':
		return strings.ToUpper(string(r)), true
	}
	return "", false
}

func skipSpaces(runes []rune, i int) int {
	for i < len(runes) && (runes[i] == ' ' || runes[i] == '\t') {
		i++
	}
	return i
}

// scanNumber reads DIGITS ['.' DIGITS] starting at i. It returns the
// matched text (empty when no digit is present) and the index just past
// the match.
func scanNumber(runes []rune, i int) (string, int) {
	start := i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i == start {
		return "", start
	}
	if i < len(runes) && runes[i] == '.' {
		fracStart := i + 1
		j := fracStart
		for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
			j++
		}
		if j > fracStart {
			i = j
		}
	}
	return string(runes[start:i]), i
}
