package catalog

var cursors = []string{
	"auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed",
	"none", "context-menu", "progress", "cell", "crosshair", "vertical-text",
	"alias", "copy", "no-drop", "grab", "grabbing", "all-scroll", "col-resize",
	"row-resize", "n-resize", "s-resize", "e-resize", "w-resize", "ne-resize",
	"nw-resize", "se-resize", "sw-resize", "ew-resize", "ns-resize",
	"nesw-resize", "nwse-resize", "zoom-in", "zoom-out",
}

func interactivity() []Entry {
	b := newBuilder(CategoryInteractivity)

	for _, c := range cursors {
		b.add(140, "cursor-"+c, "cursor: "+c+";", "Use the "+c+" cursor")
	}

	b.add(141, "pointer-events-none", "pointer-events: none;", "Ignore pointer events")
	b.add(141, "pointer-events-auto", "pointer-events: auto;", "Receive pointer events")

	b.add(142, "resize-none", "resize: none;", "Prevent resizing")
	b.add(142, "resize-y", "resize: vertical;", "Resize vertically")
	b.add(142, "resize-x", "resize: horizontal;", "Resize horizontally")
	b.add(142, "resize", "resize: both;", "Resize in both directions")

	b.add(143, "scroll-auto", "scroll-behavior: auto;", "Instant scroll")
	b.add(143, "scroll-smooth", "scroll-behavior: smooth;", "Smooth scrolling")

	b.add(144, "snap-start", "scroll-snap-align: start;", "Snap to start")
	b.add(144, "snap-end", "scroll-snap-align: end;", "Snap to end")
	b.add(144, "snap-center", "scroll-snap-align: center;", "Snap to center")
	b.add(144, "snap-align-none", "scroll-snap-align: none;", "No snap alignment")
	b.add(144, "snap-normal", "scroll-snap-stop: normal;", "Normal snap stop")
	b.add(144, "snap-always", "scroll-snap-stop: always;", "Always stop at snap point")
	b.add(144, "snap-none", "scroll-snap-type: none;", "No snapping")
	b.add(144, "snap-x", "scroll-snap-type: x var(--tw-scroll-snap-strictness);", "Horizontal snapping")
	b.add(144, "snap-y", "scroll-snap-type: y var(--tw-scroll-snap-strictness);", "Vertical snapping")
	b.add(144, "snap-both", "scroll-snap-type: both var(--tw-scroll-snap-strictness);", "Snap in both directions")
	b.add(144, "snap-mandatory", "--tw-scroll-snap-strictness: mandatory;", "Mandatory snapping")
	b.add(144, "snap-proximity", "--tw-scroll-snap-strictness: proximity;", "Proximity snapping")

	for _, t := range []string{"auto", "none", "pan-x", "pan-left", "pan-right", "pan-y", "pan-up", "pan-down", "pinch-zoom", "manipulation"} {
		b.add(145, "touch-"+t, "touch-action: "+t+";", "Set touch action to "+t)
	}

	for _, s := range []string{"none", "text", "all", "auto"} {
		b.add(146, "select-"+s, "user-select: "+s+";", "Set user select to "+s)
	}

	b.add(147, "will-change-auto", "will-change: auto;", "No change hint")
	b.add(147, "will-change-scroll", "will-change: scroll-position;", "Hint scroll changes")
	b.add(147, "will-change-contents", "will-change: contents;", "Hint content changes")
	b.add(147, "will-change-transform", "will-change: transform;", "Hint transform changes")

	b.add(148, "appearance-none", "appearance: none;", "Remove native styling")
	b.add(148, "appearance-auto", "appearance: auto;", "Use native styling")

	return b.entries
}
