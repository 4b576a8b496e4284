package element

// Payload is the kind-specific data carried by an Element. Each kind has
// exactly one payload variant, so consumers switch on the concrete type
// instead of probing optional fields.
type Payload interface {
	isPayload()
}

// Alignment describes a table column's alignment from its separator cell.
type Alignment uint8

// Table column alignments.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// LinkStyle indicates the syntax style of a link or image.
type LinkStyle string

// Link syntax styles.
const (
	StyleInline    LinkStyle = "inline"    // [text](url)
	StyleFull      LinkStyle = "full"      // [text][label]
	StyleCollapsed LinkStyle = "collapsed" // [label][]
	StyleShortcut  LinkStyle = "shortcut"  // [label]
	StyleWiki      LinkStyle = "wiki"      // [[target|alias]]
	StyleAuto      LinkStyle = "autolink"  // <https://...> or bare URL
)

// CodeBlock is the payload for fenced code blocks.
type CodeBlock struct {
	// Language is the fence info string, or the detected language when the
	// info string was empty and detection is enabled.
	Language string

	// Detected is true when Language came from content detection rather
	// than the info string.
	Detected bool

	// Body is the fence content, markers excluded.
	Body string
}

// MathBlock is the payload for display math blocks.
type MathBlock struct {
	// Delimiter is the opening delimiter as written: "$$", "\[", or
	// "\begin{...}".
	Delimiter string

	// Environment is the LaTeX environment name, if delimited by
	// \begin/\end.
	Environment string

	// Body is the formula text, delimiters excluded.
	Body string
}

// Table is the payload for pipe tables.
type Table struct {
	// Rows holds cell text per row, header row first when HasHeader.
	// The alignment separator row is not included.
	Rows [][]string

	// Alignments holds one entry per column.
	Alignments []Alignment

	// HasHeader is true when the first row is a header row.
	HasHeader bool
}

// Callout is the payload for typed block quotes (> [!note] ...).
type Callout struct {
	// Type is the callout type tag, lowercased (note, warning, ...).
	Type string

	// Title is the optional title text following the tag.
	Title string

	// Body holds the quoted body lines with quote markers stripped.
	Body []string

	// Folded is true when the callout header carries a fold marker
	// (> [!note]- is folded, > [!note]+ is explicitly unfolded).
	Folded bool
}

// Details is the payload for <details> blocks.
type Details struct {
	// Summary is the <summary> text, if present.
	Summary string

	// Open is true when the opening tag carries the open attribute.
	Open bool
}

// Heading is the payload for ATX headings.
type Heading struct {
	// Level is 1-6.
	Level int

	// Text is the heading text without markers.
	Text string
}

// Blockquote is the payload for plain quote lines.
type Blockquote struct {
	// Depth is the nesting depth (number of > markers).
	Depth int
}

// ListItem is the payload for bullet, numbered, and task list lines.
type ListItem struct {
	// Ordered is true for numbered items.
	Ordered bool

	// Marker is the literal marker text ("-", "*", "3.", ...).
	Marker string

	// Task is true for task-list items; Checked reflects [x].
	Task    bool
	Checked bool

	// Indent is the leading whitespace width in bytes.
	Indent int
}

// HorizontalRule is the payload for thematic breaks.
type HorizontalRule struct{}

// InlineCode is the payload for backtick code spans.
type InlineCode struct {
	Code string
}

// InlineMath is the payload for $...$ spans.
type InlineMath struct {
	Formula string
}

// Formatting is the payload for emphasis-family spans: bold, italic,
// bold-italic, strikethrough, highlight, superscript, subscript.
type Formatting struct {
	// Marker is the delimiter as written ("**", "_", "~~", "==", ...).
	Marker string

	// Text is the formatted content.
	Text string
}

// Link is the payload for all link kinds, including wiki links and
// autolinks.
type Link struct {
	Style LinkStyle

	// Text is the visible link text (the alias for wiki links).
	Text string

	// URL is the destination, resolved through the reference table for
	// reference styles.
	URL string

	// Title is the optional title.
	Title string

	// Label is the reference label for reference styles.
	Label string
}

// Image is the payload for images, inline or reference style.
type Image struct {
	Style LinkStyle
	Alt   string
	URL   string
	Title string
	Label string
}

// Embed is the payload for ![[target]] transclusions.
type Embed struct {
	Target string
	Alias  string
}

// FootnoteRef is the payload for [^id] references.
type FootnoteRef struct {
	ID string
}

// Kbd is the payload for <kbd>...</kbd> spans.
type Kbd struct {
	Key string
}

// Tag is the payload for #hashtags.
type Tag struct {
	Name string
}

// FootnoteDef is the payload for [^id]: definition blocks.
type FootnoteDef struct {
	ID   string
	Body string
}

// RefDef is the payload for [label]: url "title" definition lines.
type RefDef struct {
	Label string
	URL   string
	Title string
}

func (CodeBlock) isPayload()      {}
func (MathBlock) isPayload()      {}
func (Table) isPayload()          {}
func (Callout) isPayload()        {}
func (Details) isPayload()        {}
func (Heading) isPayload()        {}
func (Blockquote) isPayload()     {}
func (ListItem) isPayload()       {}
func (HorizontalRule) isPayload() {}
func (InlineCode) isPayload()     {}
func (InlineMath) isPayload()     {}
func (Formatting) isPayload()     {}
func (Link) isPayload()           {}
func (Image) isPayload()          {}
func (Embed) isPayload()          {}
func (FootnoteRef) isPayload()    {}
func (Kbd) isPayload()            {}
func (Tag) isPayload()            {}
func (FootnoteDef) isPayload()    {}
func (RefDef) isPayload()         {}
