// Package filter removes low-information comment texts before sentiment
// scoring: emoji-only reactions and bare timestamp links carry no signal
// worth classifying or summarizing.
package filter

import (
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// EmojiRule selects how the emoji exclusion behaves. The two historical
// pipeline instantiations disagreed on this, so both behaviors are kept as
// named variants instead of duplicated ad hoc logic.
type EmojiRule int

const (
	// EmojiOff disables the emoji rule.
	EmojiOff EmojiRule = iota
	// EmojiOnly drops items composed solely of emoji and whitespace.
	EmojiOnly
	// EmojiAny drops items that contain any emoji at all.
	EmojiAny
)

// Policy is a configurable source filter. The zero value filters nothing.
type Policy struct {
	Emoji              EmojiRule
	DropTimestampLinks bool
}

// VideoComments is the policy applied to platform video comments.
var VideoComments = Policy{Emoji: EmojiOnly, DropTimestampLinks: true}

// Disabled filters nothing. The product-review flow historically applied
// no text filter; passing Disabled keeps that explicit at the call site.
var Disabled = Policy{}

// Apply returns the subset of texts that pass every enabled rule, in input
// order. Pure and idempotent: Apply(Apply(x)) == Apply(x).
func (p Policy) Apply(texts []string) []string {
	if p == Disabled {
		return texts
	}
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if p.Keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Keep reports whether a single text survives the policy.
func (p Policy) Keep(text string) bool {
	switch p.Emoji {
	case EmojiOnly:
		if isEmojiOnly(text) {
			return false
		}
	case EmojiAny:
		if gomoji.ContainsEmoji(text) {
			return false
		}
	}
	if p.DropTimestampLinks && isBareTimestampLink(text) {
		return false
	}
	return true
}

func isEmojiOnly(text string) bool {
	if !gomoji.ContainsEmoji(text) {
		return false
	}
	return strings.TrimSpace(gomoji.RemoveEmojis(text)) == ""
}

// timestampRe matches MM:SS and H:MM:SS video offsets.
var timestampRe = regexp.MustCompile(`^\d{1,2}:\d{2}(?::\d{2})?$`)

// isBareTimestampLink reports whether text is nothing but a video-offset
// reference: either a plain "MM:SS" string or an HTML anchor (YouTube
// renders timestamps as <a> tags) whose visible text is such an offset.
func isBareTimestampLink(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if timestampRe.MatchString(trimmed) {
		return true
	}
	if !strings.Contains(trimmed, "<") {
		return false
	}

	ctxNode := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(trimmed), ctxNode)
	if err != nil {
		return false
	}

	sawAnchor := false
	for _, n := range nodes {
		switch {
		case n.Type == html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				return false
			}
		case n.Type == html.ElementNode && n.DataAtom == atom.A:
			if !timestampRe.MatchString(strings.TrimSpace(nodeText(n))) {
				return false
			}
			sawAnchor = true
		default:
			return false
		}
	}
	return sawAnchor
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
