package letter

import (
	"strings"
	"unicode/utf8"
)

// WordsPerMinute is the reading speed used by ReadingTime.
const WordsPerMinute = 225

// Stats summarizes a rendered letter.
type Stats struct {
	Words       int `json:"words"`
	Characters  int `json:"characters"`
	ReadingTime int `json:"readingTime"`
}

// StatsOf computes every statistic of text.
func StatsOf(text string) Stats {
	words := WordCount(text)
	return Stats{
		Words:       words,
		Characters:  CharCount(text),
		ReadingTime: readingMinutes(words),
	}
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharCount returns the number of characters in text.
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}

// ReadingTime estimates whole minutes needed to read text, rounding up.
func ReadingTime(text string) int {
	return readingMinutes(WordCount(text))
}

func readingMinutes(words int) int {
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
