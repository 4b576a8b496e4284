package inline

import (
	"strings"

	"github.com/yaklabco/livemark/pkg/element"
)

// group returns the text of capture group n, or "" if it did not match.
func group(text string, idx []int, n int) string {
	if 2*n+1 >= len(idx) || idx[2*n] < 0 {
		return ""
	}
	return text[idx[2*n]:idx[2*n+1]]
}

// spanElement builds the common element shape: full span [start, end),
// content span from capture group 1, offsets rebased to the document.
func (s *lineScan) spanElement(idx []int) element.Element {
	return element.Element{
		From:        s.base + idx[0],
		To:          s.base + idx[1],
		ContentFrom: s.base + idx[2],
		ContentTo:   s.base + idx[3],
	}
}

func buildInlineMath(s *lineScan, idx []int) (element.Element, bool) {
	body := group(s.text, idx, 1)
	if strings.TrimSpace(body) == "" {
		return element.Element{}, false
	}
	// $$ belongs to display math, never inline math.
	if idx[0] > 0 && s.text[idx[0]-1] == '$' {
		return element.Element{}, false
	}
	if idx[1] < len(s.text) && s.text[idx[1]] == '$' {
		return element.Element{}, false
	}

	el := s.spanElement(idx)
	el.Payload = element.InlineMath{Formula: body}
	return el, true
}

func buildInlineCode(s *lineScan, idx []int) (element.Element, bool) {
	code := group(s.text, idx, 1)
	if code == "" {
		return element.Element{}, false
	}
	el := s.spanElement(idx)
	el.Payload = element.InlineCode{Code: code}
	return el, true
}

// buildFormatting builds emphasis-family elements with a fixed marker.
func buildFormatting(marker string) func(*lineScan, []int) (element.Element, bool) {
	return func(s *lineScan, idx []int) (element.Element, bool) {
		text := group(s.text, idx, 1)
		if strings.TrimSpace(text) == "" {
			return element.Element{}, false
		}
		el := s.spanElement(idx)
		el.Payload = element.Formatting{Marker: marker, Text: text}
		return el, true
	}
}

// buildUnderscoreFormatting is buildFormatting plus the intra-word guard:
// snake_case_names never produce emphasis.
func buildUnderscoreFormatting(marker string) func(*lineScan, []int) (element.Element, bool) {
	inner := buildFormatting(marker)
	return func(s *lineScan, idx []int) (element.Element, bool) {
		if idx[0] > 0 && isWordByte(s.text[idx[0]-1]) {
			return element.Element{}, false
		}
		if idx[1] < len(s.text) && isWordByte(s.text[idx[1]]) {
			return element.Element{}, false
		}
		return inner(s, idx)
	}
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func buildEmbed(s *lineScan, idx []int) (element.Element, bool) {
	target := group(s.text, idx, 1)
	alias := ""
	if bar := strings.IndexByte(target, '|'); bar >= 0 {
		alias = target[bar+1:]
		target = target[:bar]
	}
	if strings.TrimSpace(target) == "" {
		return element.Element{}, false
	}
	el := s.spanElement(idx)
	el.Payload = element.Embed{Target: target, Alias: alias}
	return el, true
}

func buildWikiLink(s *lineScan, idx []int) (element.Element, bool) {
	// ![[...]] is an embed; the embed matcher runs first and claims it,
	// but an unresolved embed must not fall back to a wiki link.
	if idx[0] > 0 && s.text[idx[0]-1] == '!' {
		return element.Element{}, false
	}

	target := group(s.text, idx, 1)
	text := target
	if bar := strings.IndexByte(target, '|'); bar >= 0 {
		text = target[bar+1:]
		target = target[:bar]
	}
	if strings.TrimSpace(target) == "" {
		return element.Element{}, false
	}

	el := s.spanElement(idx)
	el.Payload = element.Link{Style: element.StyleWiki, Text: text, URL: target}
	return el, true
}

func buildImage(s *lineScan, idx []int) (element.Element, bool) {
	el := s.spanElement(idx)
	el.Payload = element.Image{
		Style: element.StyleInline,
		Alt:   group(s.text, idx, 1),
		URL:   group(s.text, idx, 2),
		Title: group(s.text, idx, 3),
	}
	return el, true
}

func buildInlineLink(s *lineScan, idx []int) (element.Element, bool) {
	if idx[0] > 0 && s.text[idx[0]-1] == '!' {
		return element.Element{}, false
	}
	el := s.spanElement(idx)
	el.Payload = element.Link{
		Style: element.StyleInline,
		Text:  group(s.text, idx, 1),
		URL:   group(s.text, idx, 2),
		Title: group(s.text, idx, 3),
	}
	return el, true
}

func buildRefImage(s *lineScan, idx []int) (element.Element, bool) {
	alt := group(s.text, idx, 1)
	label := group(s.text, idx, 2)
	style := element.StyleFull
	if label == "" {
		label = alt
		style = element.StyleCollapsed
	}

	def, ok := s.refs.Resolve(label)
	if !ok {
		return element.Element{}, false
	}

	el := s.spanElement(idx)
	el.Payload = element.Image{
		Style: style,
		Alt:   alt,
		URL:   def.URL,
		Title: def.Title,
		Label: label,
	}
	return el, true
}

func buildRefLink(s *lineScan, idx []int) (element.Element, bool) {
	if idx[0] > 0 && s.text[idx[0]-1] == '!' {
		return element.Element{}, false
	}

	text := group(s.text, idx, 1)
	label := group(s.text, idx, 2)
	style := element.StyleFull
	if label == "" {
		label = text
		style = element.StyleCollapsed
	}

	def, ok := s.refs.Resolve(label)
	if !ok {
		return element.Element{}, false
	}

	el := s.spanElement(idx)
	el.Payload = element.Link{
		Style: style,
		Text:  text,
		URL:   def.URL,
		Title: def.Title,
		Label: label,
	}
	return el, true
}

// buildShortcutRef handles bare [label] forms. The candidate is rejected
// when it is image syntax, part of a longer link form, or its label does
// not resolve; unresolved candidates fall back to plain text.
func buildShortcutRef(s *lineScan, idx []int) (element.Element, bool) {
	if idx[0] > 0 && s.text[idx[0]-1] == '!' {
		return element.Element{}, false
	}
	if idx[1] < len(s.text) && (s.text[idx[1]] == '(' || s.text[idx[1]] == '[') {
		return element.Element{}, false
	}

	label := group(s.text, idx, 1)
	def, ok := s.refs.Resolve(label)
	if !ok {
		return element.Element{}, false
	}

	el := s.spanElement(idx)
	el.Payload = element.Link{
		Style: element.StyleShortcut,
		Text:  label,
		URL:   def.URL,
		Title: def.Title,
		Label: label,
	}
	return el, true
}

func buildFootnoteRef(s *lineScan, idx []int) (element.Element, bool) {
	// [^id]: at line start is a definition, not a reference.
	if idx[0] == 0 && idx[1] < len(s.text) && s.text[idx[1]] == ':' {
		return element.Element{}, false
	}
	el := s.spanElement(idx)
	el.Payload = element.FootnoteRef{ID: group(s.text, idx, 1)}
	return el, true
}

func buildKbd(s *lineScan, idx []int) (element.Element, bool) {
	el := s.spanElement(idx)
	el.Payload = element.Kbd{Key: strings.TrimSpace(group(s.text, idx, 1))}
	return el, true
}

func buildTag(s *lineScan, idx []int) (element.Element, bool) {
	// Group 1 is the #name; the match itself may include a leading space.
	name := group(s.text, idx, 1)
	el := element.Element{
		From:        s.base + idx[2],
		To:          s.base + idx[3],
		ContentFrom: s.base + idx[2] + 1,
		ContentTo:   s.base + idx[3],
	}
	el.Payload = element.Tag{Name: strings.TrimPrefix(name, "#")}
	return el, true
}

func buildAutolink(s *lineScan, idx []int) (element.Element, bool) {
	url := group(s.text, idx, 1)
	el := s.spanElement(idx)
	el.Payload = element.Link{Style: element.StyleAuto, Text: url, URL: url}
	return el, true
}

func buildBareURL(s *lineScan, idx []int) (element.Element, bool) {
	url := strings.TrimRight(s.text[idx[0]:idx[1]], ".,;:!?")
	if url == "" {
		return element.Element{}, false
	}
	el := element.Element{
		From:        s.base + idx[0],
		To:          s.base + idx[0] + len(url),
		ContentFrom: s.base + idx[0],
		ContentTo:   s.base + idx[0] + len(url),
	}
	el.Payload = element.Link{Style: element.StyleAuto, Text: url, URL: url}
	return el, true
}
