package formatter

// voidElements have no closing counterpart and never open a nesting level.
var voidElements = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// opaqueElements carry embedded non-markup content. Their interior is never
// re-tokenized, only shifted as a single block.
var opaqueElements = map[string]struct{}{
	"script": {},
	"style":  {},
}
