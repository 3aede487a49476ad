package service

import (
	"fmt"
	"regexp"
	"strings"
)

// The response pipeline keeps one structured representation of the answer
// and renders plain text and Markdown from it. The safety filter edits
// blocks, so both encodings always stay in sync.

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockList
)

// Block is one unit of assistant output: a paragraph, a heading, or an
// enumerated list of suggestion items.
type Block struct {
	Kind  BlockKind
	Text  string
	Items []string
}

var (
	numberedLineRe = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)
	bulletLineRe   = regexp.MustCompile(`^\s*[-*•]\s+(.+)$`)
	headingLineRe  = regexp.MustCompile(`^\s*#{1,6}\s+(.+)$`)
)

// ParseBlocks converts raw model output into blocks. Consecutive numbered
// or bulleted lines form one list; a short line ending with a colon right
// before a list becomes its heading; everything else is paragraphs.
func ParseBlocks(raw string) []Block {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	var blocks []Block
	var paragraph []string
	var list []string

	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(paragraph, " "))
		paragraph = nil
		if text == "" {
			return
		}
		// A trailing lead-in like "Here are some options:" becomes a heading
		// when a list follows; the caller handles that by peeking below.
		blocks = append(blocks, Block{Kind: BlockParagraph, Text: text})
	}
	flushList := func() {
		if len(list) == 0 {
			return
		}
		items := list
		list = nil
		// Promote an immediately preceding colon-terminated paragraph to a heading.
		if n := len(blocks); n > 0 && blocks[n-1].Kind == BlockParagraph &&
			strings.HasSuffix(blocks[n-1].Text, ":") && len(blocks[n-1].Text) <= 80 {
			blocks[n-1] = Block{Kind: BlockHeading, Text: strings.TrimSuffix(blocks[n-1].Text, ":")}
		}
		blocks = append(blocks, Block{Kind: BlockList, Items: items})
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flushList()
			flushParagraph()
		case headingLineRe.MatchString(trimmed):
			flushList()
			flushParagraph()
			blocks = append(blocks, Block{Kind: BlockHeading, Text: headingLineRe.FindStringSubmatch(trimmed)[1]})
		case numberedLineRe.MatchString(trimmed):
			flushParagraph()
			list = append(list, strings.TrimSpace(numberedLineRe.FindStringSubmatch(trimmed)[1]))
		case bulletLineRe.MatchString(trimmed):
			flushParagraph()
			list = append(list, strings.TrimSpace(bulletLineRe.FindStringSubmatch(trimmed)[1]))
		default:
			flushList()
			paragraph = append(paragraph, trimmed)
		}
	}
	flushList()
	flushParagraph()

	return blocks
}

// RenderPlain renders blocks as plain text. List items keep the "N)" form
// so the next turn's preprocessor can resolve ordinal references.
func RenderPlain(blocks []Block) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch block.Kind {
		case BlockHeading:
			b.WriteString(block.Text)
		case BlockList:
			for j, item := range block.Items {
				if j > 0 {
					b.WriteString("\n")
				}
				fmt.Fprintf(&b, "%d) %s", j+1, item)
			}
		default:
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// RenderMarkdown renders the same blocks as Markdown. Structure mirrors
// the plain form: headings, ordered lists, paragraphs.
func RenderMarkdown(blocks []Block) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch block.Kind {
		case BlockHeading:
			b.WriteString("## " + block.Text)
		case BlockList:
			for j, item := range block.Items {
				if j > 0 {
					b.WriteString("\n")
				}
				fmt.Fprintf(&b, "%d. %s", j+1, item)
			}
		default:
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// SuggestionItems returns all list items across blocks, in order.
func SuggestionItems(blocks []Block) []string {
	var items []string
	for _, block := range blocks {
		if block.Kind == BlockList {
			items = append(items, block.Items...)
		}
	}
	return items
}
