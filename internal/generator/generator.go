// Package generator produces the display names and caption sentences attached
// to uploaded pictures.
package generator

import (
	"math/rand/v2"
	"strings"
)

var adjectives = []string{
	"amazing", "quirky", "fearless", "shiny", "gloomy", "radiant",
	"peculiar", "sleepy", "vivid", "bold", "mellow", "dazzling",
}

var nouns = []string{
	"sunset", "coffee", "avocado", "pigeon", "skyline", "cactus",
	"waffle", "notebook", "umbrella", "lighthouse", "bicycle", "meadow",
}

var templates = []string{
	"This day was {adjective} and {adjective} for {noun}",
	"The {noun} {adjective} back! #YOLO",
	"Today's breakfast, {adjective}, {adjective} for {noun} #instafood",
	"Oldie but goodie! A {noun} and a {noun} {adjective} {noun} #TBT",
	"My {noun} is {adjective}, {adjective} and {adjective} which is better than yours #IRL #FOMO",
	"That time when your {noun} feels {adjective} and {noun} #FML",
}

// Words returns n random words joined with spaces, used as picture display
// names.
func Words(n int) string {
	picked := make([]string, n)
	for i := range picked {
		if i%2 == 0 {
			picked[i] = adjectives[rand.IntN(len(adjectives))]
		} else {
			picked[i] = nouns[rand.IntN(len(nouns))]
		}
	}
	return strings.Join(picked, " ")
}

// Sentence fills a random caption template with random adjectives and nouns.
func Sentence() string {
	s := templates[rand.IntN(len(templates))]
	for strings.Contains(s, "{adjective}") {
		s = strings.Replace(s, "{adjective}", adjectives[rand.IntN(len(adjectives))], 1)
	}
	for strings.Contains(s, "{noun}") {
		s = strings.Replace(s, "{noun}", nouns[rand.IntN(len(nouns))], 1)
	}
	return s
}
