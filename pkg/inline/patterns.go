package inline

import (
	"regexp"

	"github.com/yaklabco/livemark/pkg/element"
)

// matcher is one precompiled inline pattern. Matchers are stateless: the
// scanner walks each pattern over the line with FindStringSubmatchIndex,
// carrying no position state between lines.
type matcher struct {
	kind element.Kind

	re *regexp.Regexp

	// claimFull claims the whole match span once emitted, suppressing any
	// later matcher whose syntax falls inside it. Delimiter-only kinds
	// (emphasis family) claim just their markers so content can nest.
	claimFull bool

	// checkClose enables the closing-marker escape check in addition to
	// the opening one.
	checkClose bool

	// build converts a submatch index slice into an element. Returning
	// false drops the candidate without claiming anything.
	build func(s *lineScan, m []int) (element.Element, bool)
}

// matchers lists all inline patterns in application order. Order resolves
// ambiguity: math and code before everything, triple emphasis before double
// before single, double tilde before single tilde, specific link forms
// before shortcut references, and URLs last.
//
//nolint:gochecknoglobals // Precompiled matcher table
var matchers = []matcher{
	{
		kind: element.KindInlineMath, claimFull: true, checkClose: true,
		re:    regexp.MustCompile(`\$([^$\n]+)\$`),
		build: buildInlineMath,
	},
	{
		kind: element.KindInlineCode, claimFull: true,
		// Double-backtick spans may contain single backticks.
		re:    regexp.MustCompile("``(.+?)``"),
		build: buildInlineCode,
	},
	{
		kind: element.KindInlineCode, claimFull: true,
		re:    regexp.MustCompile("`([^`\n]+)`"),
		build: buildInlineCode,
	},
	{
		kind: element.KindBoldItalic, checkClose: true,
		re:    regexp.MustCompile(`\*\*\*([^*\n]+)\*\*\*`),
		build: buildFormatting("***"),
	},
	{
		kind: element.KindBoldItalic, checkClose: true,
		re:    regexp.MustCompile(`___([^_\n]+)___`),
		build: buildUnderscoreFormatting("___"),
	},
	{
		kind: element.KindBold, checkClose: true,
		// Content may contain single * so italic can nest inside bold.
		re:    regexp.MustCompile(`\*\*(.+?)\*\*`),
		build: buildFormatting("**"),
	},
	{
		kind: element.KindBold, checkClose: true,
		re:    regexp.MustCompile(`__(.+?)__`),
		build: buildUnderscoreFormatting("__"),
	},
	{
		kind: element.KindItalic, checkClose: true,
		re:    regexp.MustCompile(`\*([^*\n]+?)\*`),
		build: buildFormatting("*"),
	},
	{
		kind: element.KindItalic, checkClose: true,
		re:    regexp.MustCompile(`_([^_\n]+?)_`),
		build: buildUnderscoreFormatting("_"),
	},
	{
		kind: element.KindStrikethrough, checkClose: true,
		re:    regexp.MustCompile(`~~([^~\n]+?)~~`),
		build: buildFormatting("~~"),
	},
	{
		kind: element.KindHighlight, checkClose: true,
		re:    regexp.MustCompile(`==([^=\n]+?)==`),
		build: buildFormatting("=="),
	},
	{
		kind: element.KindEmbed, claimFull: true,
		re:    regexp.MustCompile(`!\[\[([^\[\]\n]+)\]\]`),
		build: buildEmbed,
	},
	{
		kind: element.KindLink, claimFull: true,
		re:    regexp.MustCompile(`\[\[([^\[\]\n]+)\]\]`),
		build: buildWikiLink,
	},
	{
		kind: element.KindImage, claimFull: true,
		re:    regexp.MustCompile(`!\[([^\]]*)\]\(([^()\s]+)(?:\s+"([^"]*)")?\)`),
		build: buildImage,
	},
	{
		kind: element.KindLink, claimFull: true,
		re:    regexp.MustCompile(`\[([^\]]+)\]\(([^()\s]+)(?:\s+"([^"]*)")?\)`),
		build: buildInlineLink,
	},
	{
		kind: element.KindImage, claimFull: true,
		re:    regexp.MustCompile(`!\[([^\]]*)\]\[([^\]]*)\]`),
		build: buildRefImage,
	},
	{
		kind: element.KindLink, claimFull: true,
		re:    regexp.MustCompile(`\[([^\]]+)\]\[([^\]]*)\]`),
		build: buildRefLink,
	},
	{
		kind: element.KindFootnoteRef, claimFull: true,
		re:    regexp.MustCompile(`\[\^([^\]\s]+)\]`),
		build: buildFootnoteRef,
	},
	{
		kind: element.KindLink, claimFull: true,
		re:    regexp.MustCompile(`\[([^\^\]\[][^\]\[]*)\]`),
		build: buildShortcutRef,
	},
	{
		kind: element.KindKbd, claimFull: true,
		re:    regexp.MustCompile(`(?i)<kbd>([^<\n]+)</kbd>`),
		build: buildKbd,
	},
	{
		kind: element.KindSuperscript, checkClose: true,
		re:    regexp.MustCompile(`\^([^\s^]+)\^`),
		build: buildFormatting("^"),
	},
	{
		kind: element.KindSubscript, checkClose: true,
		re:    regexp.MustCompile(`~([^~\s]+)~`),
		build: buildFormatting("~"),
	},
	{
		kind: element.KindTag, claimFull: true,
		re:    regexp.MustCompile(`(?:^|\s)(#[\p{L}\d][\p{L}\d/_-]*)`),
		build: buildTag,
	},
	{
		kind: element.KindAutolink, claimFull: true,
		re:    regexp.MustCompile(`<(https?://[^>\s]+)>`),
		build: buildAutolink,
	},
	{
		kind: element.KindAutolink, claimFull: true,
		re:    regexp.MustCompile(`https?://[^\s<>()]+`),
		build: buildBareURL,
	},
}
