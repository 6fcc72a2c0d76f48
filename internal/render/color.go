package render

// indexColors is the 52-entry palette Excel's legacy indexed-color
// annotations ("[Color 12]") resolve against. Indices are 1-based at the
// call site; ResolveIndexColor shifts down to this slice's 0-based layout.
var indexColors = []string{
	"#000", "#FFF", "#F00", "#0F0", "#00F", "#FF0", "#F0F", "#0FF", "#000", "#FFF", "#F00", "#0F0",
	"#00F", "#FF0", "#F0F", "#0FF", "#800", "#080", "#008", "#880", "#808", "#088", "#CCC", "#888",
	"#99F", "#936", "#FFC", "#CFF", "#606", "#F88", "#06C", "#CCF", "#008", "#F0F", "#FF0", "#0FF",
	"#808", "#800", "#088", "#00F", "#0CF", "#CFF", "#CFC", "#FF9", "#9CF", "#F9C", "#C9F", "#FC9",
	"#36F", "#3CC", "#9C0", "#FC0",
}

// ResolveIndexColor maps a one-based indexed-color annotation to its RGB
// hex string, falling back to black for an index the palette doesn't cover.
func ResolveIndexColor(index uint32) string {
	pos := int(index) - 1
	if pos < 0 || pos >= len(indexColors) {
		return "#000"
	}
	return indexColors[pos]
}
