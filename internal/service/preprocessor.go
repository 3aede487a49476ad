package service

import (
	"regexp"
	"strconv"
	"strings"
)

// PreprocessResult is the outcome of shorthand resolution for one message.
// When NeedsClarification is set the pipeline must short-circuit to a
// clarifying question instead of guessing.
type PreprocessResult struct {
	Message            string
	Resolved           bool
	NeedsClarification bool
}

var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
}

var (
	fillerRe = regexp.MustCompile(`^(?i)\s*(?:i['’]?ll take\s+|i['’]?d like\s+|i want\s+|give me\s+|go with\s+|let['’]?s (?:do|try|go with)\s+)?`)

	ordinalWordRe  = regexp.MustCompile(`^(?i)(?:the\s+)?(first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth)(?:\s+(?:one|option|choice|item))?\b`)
	ordinalDigitRe = regexp.MustCompile(`^(?i)(?:the\s+)?(\d+)(?:st|nd|rd|th)(?:\s+(?:one|option|choice|item))?\b`)
	hashRe         = regexp.MustCompile(`^#(\d+)\b`)
	namedIndexRe   = regexp.MustCompile(`^(?i)(?:the\s+)?(?:option|number|choice|item)\s*#?(\d+)\b`)
	bareNumberRe   = regexp.MustCompile(`^\s*(\d+)\s*$`)
	demonstrRe     = regexp.MustCompile(`^(?i)(?:the\s+)?(?:that|this)\s+(?:one|option|choice|item)\b`)
)

// PreprocessMessage rewrites an ordinal or demonstrative reference in the
// user message into the literal text of the referenced item from the
// previous assistant response. Pure and deterministic: same inputs, same
// output. When the reference cannot be resolved with confidence the
// message is left unchanged and the clarification flag is set.
func PreprocessMessage(message, prevAssistant string) PreprocessResult {
	ref, trailing, ok := findReference(message)
	if !ok {
		return PreprocessResult{Message: message}
	}

	lists := extractLists(prevAssistant)
	if len(lists) != 1 {
		// No list to resolve against, or more than one plausible list.
		return PreprocessResult{Message: message, NeedsClarification: true}
	}
	items := lists[0]

	index := ref.index
	if ref.demonstrative {
		// "that one" is only unambiguous against a single-item list.
		if len(items) != 1 {
			return PreprocessResult{Message: message, NeedsClarification: true}
		}
		index = 1
	}
	if index < 1 || index > len(items) {
		return PreprocessResult{Message: message, NeedsClarification: true}
	}

	return PreprocessResult{
		Message:  items[index-1] + trailing,
		Resolved: true,
	}
}

type reference struct {
	index         int
	demonstrative bool
}

// findReference matches an ordinal or demonstrative phrase at the start of
// the message (after an optional filler like "I'll take"). The remainder
// of the message is returned verbatim as trailing qualifier text.
func findReference(message string) (reference, string, bool) {
	if m := bareNumberRe.FindStringSubmatch(message); m != nil {
		n, _ := strconv.Atoi(m[1])
		return reference{index: n}, "", true
	}

	rest := strings.TrimSpace(message)
	if loc := fillerRe.FindStringIndex(rest); loc != nil {
		rest = rest[loc[1]:]
	}

	if m := demonstrRe.FindStringIndex(rest); m != nil {
		return reference{demonstrative: true}, rest[m[1]:], true
	}
	if m := ordinalWordRe.FindStringSubmatchIndex(rest); m != nil {
		word := strings.ToLower(rest[m[2]:m[3]])
		return reference{index: ordinalWords[word]}, rest[m[1]:], true
	}
	if m := ordinalDigitRe.FindStringSubmatchIndex(rest); m != nil {
		n, _ := strconv.Atoi(rest[m[2]:m[3]])
		return reference{index: n}, rest[m[1]:], true
	}
	if m := hashRe.FindStringSubmatchIndex(rest); m != nil {
		n, _ := strconv.Atoi(rest[m[2]:m[3]])
		return reference{index: n}, rest[m[1]:], true
	}
	if m := namedIndexRe.FindStringSubmatchIndex(rest); m != nil {
		n, _ := strconv.Atoi(rest[m[2]:m[3]])
		return reference{index: n}, rest[m[1]:], true
	}

	return reference{}, "", false
}

var (
	numberedMarkerRe = regexp.MustCompile(`(?:^|\s)(\d+)[.)]\s+`)
	optionMarkerRe   = regexp.MustCompile(`(?i)\boption\s+(\d+)\s*:\s*`)
	inlineOptionsRe  = regexp.MustCompile(`(?i)\boptions\s*:\s*(.+)`)
)

// extractLists finds every enumerable list in a previous assistant
// response: numbered runs ("1) x", "2. y", "Option 3: z"), bullet groups,
// and inline "Options: a, b; c" phrases.
func extractLists(text string) [][]string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lists [][]string
	// Bare numbered markers need a run of at least two to count as a list,
	// so prose like "1. Overview" alone is not mistaken for one. The
	// explicit "Option N:" form is unambiguous even as a single entry.
	lists = append(lists, markerRuns(text, numberedMarkerRe, 2)...)
	lists = append(lists, markerRuns(text, optionMarkerRe, 1)...)
	lists = append(lists, bulletGroups(text)...)

	if m := inlineOptionsRe.FindStringSubmatch(firstLineWith(text, inlineOptionsRe)); m != nil {
		var items []string
		for _, part := range regexp.MustCompile(`[,;]`).Split(m[1], -1) {
			if p := strings.TrimSpace(part); p != "" {
				items = append(items, p)
			}
		}
		if len(items) > 0 {
			lists = append(lists, items)
		}
	}

	return lists
}

// markerRuns groups marker matches into runs of consecutive numbering
// starting at 1. Each run is one list; stray numbers are ignored.
func markerRuns(text string, re *regexp.Regexp, minRun int) [][]string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	type marker struct {
		n          int
		start, end int
	}
	markers := make([]marker, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		markers = append(markers, marker{n: n, start: m[0], end: m[1]})
	}

	var lists [][]string
	var current []marker
	flush := func() {
		if len(current) < minRun {
			current = nil
			return
		}
		items := make([]string, 0, len(current))
		for i, mk := range current {
			end := len(text)
			if i+1 < len(current) {
				end = current[i+1].start
			}
			items = append(items, itemText(text[mk.end:end]))
		}
		lists = append(lists, items)
		current = nil
	}

	for _, mk := range markers {
		switch {
		case mk.n == 1:
			flush()
			current = []marker{mk}
		case len(current) > 0 && mk.n == current[len(current)-1].n+1:
			current = append(current, mk)
		default:
			flush()
		}
	}
	flush()
	return lists
}

// itemText trims an item to its first line; suggestion items are single lines.
func itemText(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func bulletGroups(text string) [][]string {
	var lists [][]string
	var current []string
	flush := func() {
		if len(current) >= 1 {
			lists = append(lists, current)
		}
		current = nil
	}
	for _, line := range strings.Split(text, "\n") {
		if m := bulletLineRe.FindStringSubmatch(line); m != nil {
			current = append(current, strings.TrimSpace(m[1]))
		} else {
			flush()
		}
	}
	flush()
	return lists
}

func firstLineWith(text string, re *regexp.Regexp) string {
	for _, line := range strings.Split(text, "\n") {
		if re.MatchString(line) {
			return line
		}
	}
	return ""
}
