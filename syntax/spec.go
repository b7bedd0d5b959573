package syntax

// WrapSpec describes an inline construct expressed as a prefix/suffix pair
// around the selected text.
type WrapSpec struct {
	Prefix string
	Suffix string
}

// LinePrefixSpec describes a construct expressed as a marker prepended to
// each affected line. AltMarkers are alternate spellings that count as
// "already marked" for removal detection but are never re-applied (the
// checked checkbox form).
type LinePrefixSpec struct {
	Marker     string
	AltMarkers []string
}

// Predefined inline constructs.
var (
	Bold          = WrapSpec{Prefix: "**", Suffix: "**"}
	Italic        = WrapSpec{Prefix: "*", Suffix: "*"}
	Strikethrough = WrapSpec{Prefix: "~~", Suffix: "~~"}
	Code          = WrapSpec{Prefix: "`", Suffix: "`"}
)

// Predefined line constructs.
var (
	Quote         = LinePrefixSpec{Marker: ">"}
	UnorderedList = LinePrefixSpec{Marker: "-"}
	CheckboxList  = LinePrefixSpec{Marker: "- [ ]", AltMarkers: []string{"- [x]", "- [X]"}}
)

// DefaultMaxHeadingLevel bounds ToggleHeading when the host does not
// configure its own limit.
const DefaultMaxHeadingLevel = 3

// Link template placeholders. InsertLink leaves one of them selected so the
// next keystroke overtypes it.
const (
	linkTitlePlaceholder = "title"
	linkURLPlaceholder   = "url"
)
