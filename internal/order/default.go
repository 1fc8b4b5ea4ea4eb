package order

var (
	hues = []string{
		"slate", "gray", "zinc", "neutral", "stone",
		"red", "orange", "amber", "yellow", "lime", "green", "emerald", "teal",
		"cyan", "sky", "blue", "indigo", "violet", "purple", "fuchsia", "pink", "rose",
	}
	shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

	spacing = []string{
		"0", "px", "0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5", "6", "7", "8", "9", "10",
		"11", "12", "14", "16", "20", "24", "28", "32", "36", "40", "44", "48", "52", "56",
		"60", "64", "72", "80", "96",
	}
	fractions = []string{
		"1/2", "1/3", "2/3", "1/4", "2/4", "3/4", "1/5", "2/5", "3/5", "4/5",
		"1/6", "2/6", "3/6", "4/6", "5/6", "full",
	}
	twelve     = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	radii      = []string{"", "none", "sm", "md", "lg", "xl", "2xl", "3xl", "full"}
	widths     = []string{"", "0", "2", "4", "8"}
	blendModes = []string{
		"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge",
		"color-burn", "hard-light", "soft-light", "difference", "exclusion", "hue",
		"saturation", "color", "luminosity",
	}
	positions = []string{
		"bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom",
		"right-top", "top",
	}
)

func build() []string {
	b := &builder{seen: make(map[string]struct{})}

	// layout
	b.add("container", "box-border", "box-content", "box-decoration-clone", "box-decoration-slice")
	b.add("block", "inline-block", "inline", "flex", "inline-flex", "table", "inline-table",
		"table-caption", "table-cell", "table-column", "table-column-group",
		"table-footer-group", "table-header-group", "table-row-group", "table-row",
		"flow-root", "grid", "inline-grid", "contents", "list-item", "hidden")
	b.scale("float", "right", "left", "none")
	b.scale("clear", "left", "right", "both", "none")
	b.add("isolate", "isolation-auto")
	b.scale("object", "contain", "cover", "fill", "none", "scale-down")
	b.scale("object", positions...)
	overflow := []string{"auto", "hidden", "clip", "visible", "scroll"}
	b.scales([]string{"overflow", "overflow-x", "overflow-y"}, overflow...)
	overscroll := []string{"auto", "contain", "none"}
	b.scales([]string{"overscroll", "overscroll-x", "overscroll-y"}, overscroll...)

	// position
	b.add("static", "fixed", "absolute", "relative", "sticky")

	// inset, sides in alphabetical order
	inset := append(append([]string{"auto"}, spacing...), fractions...)
	for _, side := range []string{"bottom", "end", "inset", "inset-x", "inset-y", "left", "right", "start", "top"} {
		b.scale(side, inset...)
		b.negative(side, inset...)
	}

	// visibility and stacking
	b.add("visible", "invisible", "collapse")
	b.scale("z", "0", "10", "20", "30", "40", "50", "auto")

	// flexbox and grid
	b.scale("basis", append(append([]string{"auto"}, spacing...), fractions...)...)
	b.scale("flex", "row", "row-reverse", "col", "col-reverse", "wrap", "wrap-reverse",
		"nowrap", "1", "auto", "initial", "none")
	b.scale("grow", "", "0")
	b.scale("shrink", "", "0")
	b.scale("order", append(append([]string(nil), twelve...), "first", "last", "none")...)
	b.scale("grid-cols", append(append([]string(nil), twelve...), "none", "subgrid")...)
	b.scale("col", "auto")
	b.scale("col-span", append(append([]string(nil), twelve...), "full")...)
	b.scale("col-start", append(append([]string(nil), twelve...), "13", "auto")...)
	b.scale("col-end", append(append([]string(nil), twelve...), "13", "auto")...)
	b.scale("grid-rows", append(append([]string(nil), twelve...), "none", "subgrid")...)
	b.scale("row", "auto")
	b.scale("row-span", append(append([]string(nil), twelve...), "full")...)
	b.scale("row-start", append(append([]string(nil), twelve...), "13", "auto")...)
	b.scale("row-end", append(append([]string(nil), twelve...), "13", "auto")...)
	b.scale("grid-flow", "row", "col", "dense", "row-dense", "col-dense")
	b.scales([]string{"auto-cols", "auto-rows"}, "auto", "min", "max", "fr")
	b.scales([]string{"gap", "gap-x", "gap-y"}, spacing...)
	b.scale("justify", "normal", "start", "end", "center", "between", "around", "evenly", "stretch")
	b.scale("justify-items", "start", "end", "center", "stretch")
	b.scale("justify-self", "auto", "start", "end", "center", "stretch")
	b.scale("content", "normal", "center", "start", "end", "between", "around", "evenly", "baseline", "stretch")
	b.scale("items", "start", "end", "center", "baseline", "stretch")
	b.scale("self", "auto", "start", "end", "center", "stretch", "baseline")
	b.scale("place-content", "center", "start", "end", "between", "around", "evenly", "baseline", "stretch")
	b.scale("place-items", "start", "end", "center", "baseline", "stretch")
	b.scale("place-self", "auto", "start", "end", "center", "stretch")

	// spacing
	for _, p := range []string{"p", "px", "py", "ps", "pe", "pt", "pr", "pb", "pl"} {
		b.scale(p, spacing...)
	}
	margin := append([]string{"auto"}, spacing...)
	for _, m := range []string{"m", "mx", "my", "ms", "me", "mt", "mr", "mb", "ml"} {
		b.scale(m, margin...)
		b.negative(m, spacing...)
	}
	b.scales([]string{"space-x", "space-y"}, spacing...)
	b.add("space-x-reverse", "space-y-reverse")

	// sizing
	sizes := append(append(append([]string{"auto"}, spacing...), fractions...), "screen", "svw", "lvw", "dvw", "min", "max", "fit")
	b.scale("w", sizes...)
	b.scale("min-w", "0", "full", "min", "max", "fit")
	b.scale("max-w", "0", "none", "xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl", "5xl",
		"6xl", "7xl", "full", "min", "max", "fit", "prose", "screen-sm", "screen-md",
		"screen-lg", "screen-xl", "screen-2xl")
	b.scale("h", append(append(append([]string{"auto"}, spacing...), fractions...), "screen", "svh", "lvh", "dvh", "min", "max", "fit")...)
	b.scale("min-h", "0", "full", "screen", "svh", "lvh", "dvh", "min", "max", "fit")
	b.scale("max-h", append(append([]string(nil), spacing...), "none", "full", "screen", "svh", "lvh", "dvh", "min", "max", "fit")...)

	// typography
	b.scale("font", "sans", "serif", "mono")
	b.scale("text", "xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl")
	b.add("antialiased", "subpixel-antialiased", "italic", "not-italic")
	b.scale("font", "thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black")
	b.add("normal-nums", "ordinal", "slashed-zero", "lining-nums", "oldstyle-nums",
		"proportional-nums", "tabular-nums", "diagonal-fractions", "stacked-fractions")
	b.scale("tracking", "tighter", "tight", "normal", "wide", "wider", "widest")
	b.scale("line-clamp", "1", "2", "3", "4", "5", "6", "none")
	b.scale("leading", "3", "4", "5", "6", "7", "8", "9", "10", "none", "tight", "snug", "normal", "relaxed", "loose")
	b.scale("list-image", "none")
	b.scale("list", "inside", "outside", "none", "disc", "decimal")
	b.scale("text", "left", "center", "right", "justify", "start", "end")
	b.colors("text")
	b.add("underline", "overline", "line-through", "no-underline")
	b.colors("decoration")
	b.scale("decoration", "solid", "double", "dotted", "dashed", "wavy", "auto", "from-font", "0", "1", "2", "4", "8")
	b.scale("underline-offset", "auto", "0", "1", "2", "4", "8")
	b.add("uppercase", "lowercase", "capitalize", "normal-case")
	b.add("truncate", "text-ellipsis", "text-clip")
	b.scale("text", "wrap", "nowrap", "balance", "pretty")
	b.scale("indent", spacing...)
	b.scale("align", "baseline", "top", "middle", "bottom", "text-top", "text-bottom", "sub", "super")
	b.scale("whitespace", "normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces")
	b.scale("break", "normal", "words", "all", "keep")
	b.scale("hyphens", "none", "manual", "auto")
	b.add("content-none")

	// backgrounds
	b.scale("bg", "fixed", "local", "scroll")
	b.scale("bg-clip", "border", "padding", "content", "text")
	b.colors("bg")
	b.scale("bg-origin", "border", "padding", "content")
	b.scale("bg", positions...)
	b.scale("bg", "repeat", "no-repeat", "repeat-x", "repeat-y", "repeat-round", "repeat-space")
	b.scale("bg", "auto", "cover", "contain", "none")
	b.scale("bg-gradient-to", "t", "tr", "r", "br", "b", "bl", "l", "tl")
	b.colors("from")
	b.colors("via")
	b.colors("to")

	// borders
	b.scale("rounded", radii...)
	for _, corner := range []string{"s", "e", "t", "r", "b", "l", "ss", "se", "ee", "es", "tl", "tr", "br", "bl"} {
		b.scale("rounded-"+corner, radii...)
	}
	b.scale("border", widths...)
	for _, side := range []string{"x", "y", "s", "e", "t", "r", "b", "l"} {
		b.scale("border-"+side, widths...)
	}
	b.scale("border", "solid", "dashed", "dotted", "double", "hidden", "none")
	b.colors("border")
	b.scales([]string{"divide-x", "divide-y"}, widths...)
	b.add("divide-x-reverse", "divide-y-reverse")
	b.scale("divide", "solid", "dashed", "dotted", "double", "none")
	b.colors("divide")
	b.scale("outline", "", "none", "dashed", "dotted", "double", "0", "1", "2", "4", "8")
	b.colors("outline")
	b.scale("outline-offset", "0", "1", "2", "4", "8")
	b.scale("ring", "", "0", "1", "2", "4", "8", "inset")
	b.colors("ring")
	b.scale("ring-offset", "0", "1", "2", "4", "8")
	b.colors("ring-offset")

	// effects
	b.scale("shadow", "", "sm", "md", "lg", "xl", "2xl", "inner", "none")
	b.colors("shadow")
	b.scale("opacity", "0", "5", "10", "15", "20", "25", "30", "35", "40", "45", "50",
		"55", "60", "65", "70", "75", "80", "85", "90", "95", "100")
	b.scale("mix-blend", append(append([]string(nil), blendModes...), "plus-lighter")...)
	b.scale("bg-blend", blendModes...)

	// filters
	blur := []string{"", "none", "sm", "md", "lg", "xl", "2xl", "3xl"}
	b.scale("blur", blur...)
	b.scale("brightness", "0", "50", "75", "90", "95", "100", "105", "110", "125", "150", "200")
	b.scale("contrast", "0", "50", "75", "100", "125", "150", "200")
	b.scale("drop-shadow", "", "sm", "md", "lg", "xl", "2xl", "none")
	b.scale("grayscale", "", "0")
	b.scale("hue-rotate", "0", "15", "30", "60", "90", "180")
	b.scale("invert", "", "0")
	b.scale("saturate", "0", "50", "100", "150", "200")
	b.scale("sepia", "", "0")
	b.scale("backdrop-blur", blur...)
	b.scale("backdrop-brightness", "0", "50", "75", "90", "95", "100", "105", "110", "125", "150", "200")
	b.scale("backdrop-contrast", "0", "50", "75", "100", "125", "150", "200")
	b.scale("backdrop-grayscale", "", "0")
	b.scale("backdrop-hue-rotate", "0", "15", "30", "60", "90", "180")
	b.scale("backdrop-invert", "", "0")
	b.scale("backdrop-opacity", "0", "5", "10", "20", "25", "30", "40", "50", "60", "70", "75", "80", "90", "95", "100")
	b.scale("backdrop-saturate", "0", "50", "100", "150", "200")
	b.scale("backdrop-sepia", "", "0")

	// tables
	b.add("border-collapse", "border-separate")
	b.scales([]string{"border-spacing", "border-spacing-x", "border-spacing-y"}, spacing...)
	b.add("table-auto", "table-fixed", "caption-top", "caption-bottom")

	// transitions and animation
	b.add("transition-none", "transition-all", "transition", "transition-colors",
		"transition-opacity", "transition-shadow", "transition-transform")
	b.scale("duration", "0", "75", "100", "150", "200", "300", "500", "700", "1000")
	b.scale("ease", "linear", "in", "out", "in-out")
	b.scale("delay", "0", "75", "100", "150", "200", "300", "500", "700", "1000")
	b.scale("animate", "none", "spin", "ping", "pulse", "bounce")

	// transforms
	scale := []string{"0", "50", "75", "90", "95", "100", "105", "110", "125", "150"}
	b.scales([]string{"scale", "scale-x", "scale-y"}, scale...)
	rotate := []string{"0", "1", "2", "3", "6", "12", "45", "90", "180"}
	b.scale("rotate", rotate...)
	b.negative("rotate", rotate...)
	translate := append(append([]string(nil), spacing...), fractions...)
	for _, axis := range []string{"translate-x", "translate-y"} {
		b.scale(axis, translate...)
		b.negative(axis, translate...)
	}
	skew := []string{"0", "1", "2", "3", "6", "12"}
	for _, axis := range []string{"skew-x", "skew-y"} {
		b.scale(axis, skew...)
		b.negative(axis, skew...)
	}
	b.scale("origin", "center", "top", "top-right", "right", "bottom-right", "bottom",
		"bottom-left", "left", "top-left")

	// interactivity
	b.colors("accent")
	b.scale("appearance", "none", "auto")
	b.scale("cursor", "auto", "default", "pointer", "wait", "text", "move", "help",
		"not-allowed", "none", "context-menu", "progress", "cell", "crosshair",
		"vertical-text", "alias", "copy", "no-drop", "grab", "grabbing", "all-scroll",
		"col-resize", "row-resize", "n-resize", "e-resize", "s-resize", "w-resize",
		"ne-resize", "nw-resize", "se-resize", "sw-resize", "ew-resize", "ns-resize",
		"nesw-resize", "nwse-resize", "zoom-in", "zoom-out")
	b.colors("caret")
	b.scale("pointer-events", "none", "auto")
	b.scale("resize", "none", "y", "x", "")
	b.scale("scroll", "auto", "smooth")
	b.scales([]string{"scroll-m", "scroll-p"}, spacing...)
	b.scale("snap", "start", "end", "center", "align-none", "normal", "always", "none", "x", "y", "both", "mandatory", "proximity")
	b.scale("touch", "auto", "none", "pan-x", "pan-left", "pan-right", "pan-y", "pan-up", "pan-down", "pinch-zoom", "manipulation")
	b.scale("select", "none", "text", "all", "auto")
	b.scale("will-change", "auto", "scroll", "contents", "transform")

	// svg
	b.scale("fill", "none")
	b.colors("fill")
	b.scale("stroke", "none")
	b.colors("stroke")
	b.scale("stroke", "0", "1", "2")

	// accessibility
	b.add("sr-only", "not-sr-only", "forced-color-adjust-auto", "forced-color-adjust-none")

	return b.list
}
