package render

import "strings"

// FrameKind discriminates how a frame key is rendered.
type FrameKind int

const (
	// FramePlain is an ordinary frame: title plus an itemized list.
	FramePlain FrameKind = iota
	// FrameImage renders a single image, "image <name>".
	FrameImage
	// FrameInclude embeds a highlighted source file, "include <path>".
	FrameInclude
)

// FrameSpec is the result of classifying a frame key. Classification
// happens once per key; everything downstream branches on Kind instead
// of re-inspecting the key text.
type FrameSpec struct {
	Kind  FrameKind
	Title string // the raw key, used as title for plain frames
	Arg   string // image name or include path
}

// ClassifyFrame classifies a frame key by its reserved prefix. A
// prefix with no argument ("image" alone) is treated as an ordinary
// title rather than a broken directive.
func ClassifyFrame(key string) FrameSpec {
	if arg, ok := directiveArg(key, "image"); ok {
		return FrameSpec{Kind: FrameImage, Title: key, Arg: arg}
	}
	if arg, ok := directiveArg(key, "include"); ok {
		return FrameSpec{Kind: FrameInclude, Title: key, Arg: arg}
	}
	return FrameSpec{Kind: FramePlain, Title: key}
}

func directiveArg(key, token string) (string, bool) {
	rest, ok := strings.CutPrefix(key, token+" ")
	if !ok {
		return "", false
	}
	arg := strings.TrimSpace(rest)
	return arg, arg != ""
}

// splitPause applies the pause-marker rule: a leading "+" means the
// item appears immediately; anything else reveals on advance. The
// marker is stripped from the displayed text.
func splitPause(text string) (display string, immediate bool) {
	if stripped, ok := strings.CutPrefix(text, "+"); ok {
		return stripped, true
	}
	return text, false
}
