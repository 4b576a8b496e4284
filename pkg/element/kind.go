// Package element defines the common unit produced by the block and inline
// scanners: an Element with a kind, byte span, and per-kind payload. Kinds
// form an explicit total order that doubles as the conflict priority.
package element

// Kind classifies a recognized markdown construct.
type Kind uint8

// All recognized construct kinds. Values are identities only; conflict
// priority comes from the precedence table below, never from these numbers.
const (
	KindInvalid Kind = iota

	// Block-level kinds.
	KindCodeBlock
	KindMathBlock
	KindTable
	KindCallout
	KindDetails
	KindHeading
	KindBlockquote
	KindListItem
	KindHorizontalRule

	// Inline-level kinds.
	KindInlineCode
	KindInlineMath
	KindBoldItalic
	KindBold
	KindItalic
	KindStrikethrough
	KindHighlight
	KindLink
	KindImage
	KindEmbed
	KindAutolink
	KindFootnoteRef
	KindSuperscript
	KindSubscript
	KindKbd
	KindTag

	// Definition blocks, lowest priority.
	KindFootnoteDef
	KindRefDef
)

// precedence is the explicit total order over kinds. Earlier entries win
// conflicts. Code and math rank highest because they never contain other
// syntax; definition blocks rank lowest.
//
//nolint:gochecknoglobals // Sealed precedence table is the order's single source of truth
var precedence = [...]Kind{
	KindCodeBlock,
	KindMathBlock,
	KindTable,
	KindCallout,
	KindDetails,
	KindHeading,
	KindBlockquote,
	KindListItem,
	KindHorizontalRule,
	KindInlineCode,
	KindInlineMath,
	KindBoldItalic,
	KindBold,
	KindItalic,
	KindStrikethrough,
	KindHighlight,
	KindLink,
	KindImage,
	KindEmbed,
	KindAutolink,
	KindFootnoteRef,
	KindSuperscript,
	KindSubscript,
	KindKbd,
	KindTag,
	KindFootnoteDef,
	KindRefDef,
}

//nolint:gochecknoglobals // Derived lookup for O(1) rank access
var precedenceRank = func() map[Kind]int {
	ranks := make(map[Kind]int, len(precedence))
	for i, k := range precedence {
		ranks[k] = i
	}
	return ranks
}()

// Precedence returns the conflict rank of a kind. Lower ranks win.
// Unknown kinds rank below everything.
func (k Kind) Precedence() int {
	if rank, ok := precedenceRank[k]; ok {
		return rank
	}
	return len(precedence)
}

// Compare orders two kinds by precedence: negative if k outranks other,
// positive if other outranks k, zero if equal.
func (k Kind) Compare(other Kind) int {
	return k.Precedence() - other.Precedence()
}

// IsBlock returns true for block-level kinds (whole-line constructs).
func (k Kind) IsBlock() bool {
	switch k {
	case KindCodeBlock, KindMathBlock, KindTable, KindCallout, KindDetails,
		KindHeading, KindBlockquote, KindListItem, KindHorizontalRule,
		KindFootnoteDef, KindRefDef:
		return true
	default:
		return false
	}
}

// IsLeaf returns true for kinds whose content is verbatim: no other
// construct may survive inside them.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindCodeBlock, KindMathBlock, KindInlineCode, KindInlineMath:
		return true
	default:
		return false
	}
}

// IsReplaceContainer returns true for inline kinds rendered by replacing
// their whole syntax span. Two such kinds cannot nest, because both would
// try to replace overlapping text. Emphasis-family kinds are not replace
// containers: they render by hiding markers and nest freely.
func (k Kind) IsReplaceContainer() bool {
	switch k {
	case KindInlineCode, KindInlineMath, KindLink, KindImage, KindEmbed:
		return true
	default:
		return false
	}
}

// IsLineStyled returns true for kinds decorated with line-level attributes
// rather than span replacement.
func (k Kind) IsLineStyled() bool {
	switch k {
	case KindHeading, KindBlockquote, KindListItem:
		return true
	default:
		return false
	}
}

// IsMultiLineBlock returns true for block kinds that can span several lines
// and collapse behind a single widget when rendered.
func (k Kind) IsMultiLineBlock() bool {
	switch k {
	case KindCodeBlock, KindMathBlock, KindTable, KindCallout, KindDetails,
		KindFootnoteDef:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case KindCodeBlock:
		return "code-block"
	case KindMathBlock:
		return "math-block"
	case KindTable:
		return "table"
	case KindCallout:
		return "callout"
	case KindDetails:
		return "details"
	case KindHeading:
		return "heading"
	case KindBlockquote:
		return "blockquote"
	case KindListItem:
		return "list-item"
	case KindHorizontalRule:
		return "horizontal-rule"
	case KindInlineCode:
		return "inline-code"
	case KindInlineMath:
		return "inline-math"
	case KindBoldItalic:
		return "bold-italic"
	case KindBold:
		return "bold"
	case KindItalic:
		return "italic"
	case KindStrikethrough:
		return "strikethrough"
	case KindHighlight:
		return "highlight"
	case KindLink:
		return "link"
	case KindImage:
		return "image"
	case KindEmbed:
		return "embed"
	case KindAutolink:
		return "autolink"
	case KindFootnoteRef:
		return "footnote-ref"
	case KindSuperscript:
		return "superscript"
	case KindSubscript:
		return "subscript"
	case KindKbd:
		return "kbd"
	case KindTag:
		return "tag"
	case KindFootnoteDef:
		return "footnote-def"
	case KindRefDef:
		return "ref-def"
	default:
		return "invalid"
	}
}
