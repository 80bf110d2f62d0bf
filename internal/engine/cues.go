package engine

import "fmt"

// CueKind identifies an audio request.
type CueKind int

const (
	CueText CueKind = iota
	CueReward
	CueStepStart
	CueStepStop
	CueAmbient
	CueThemeStart
	CueThemeStop
)

// TextLength is the three-tier classification used for dialogue blips.
type TextLength string

const (
	TextShort   TextLength = "short"
	TextRegular TextLength = "regular"
	TextLong    TextLength = "long"
)

// Volume is the ambient volume level.
type Volume int

const (
	VolumeNormal Volume = iota
	VolumeAttenuated
)

// Cue is one discrete audio request.
type Cue struct {
	Kind   CueKind
	Length TextLength // CueText only
	Volume Volume     // CueAmbient only
	Theme  string     // CueThemeStart / CueThemeStop only
}

func (c Cue) String() string {
	switch c.Kind {
	case CueText:
		return "text:" + string(c.Length)
	case CueReward:
		return "reward"
	case CueStepStart:
		return "step:start"
	case CueStepStop:
		return "step:stop"
	case CueAmbient:
		if c.Volume == VolumeAttenuated {
			return "ambient:attenuated"
		}
		return "ambient:normal"
	case CueThemeStart:
		return "theme:start:" + c.Theme
	case CueThemeStop:
		return "theme:stop:" + c.Theme
	}
	return fmt.Sprintf("cue(%d)", int(c.Kind))
}

// ClassifyText returns the blip length for a dialogue line.
func ClassifyText(text string) TextLength {
	n := len([]rune(text))
	switch {
	case n > 40:
		return TextLong
	case n > 20:
		return TextRegular
	default:
		return TextShort
	}
}

// TextCue builds the cue emitted when a line is shown.
func TextCue(text string) Cue {
	return Cue{Kind: CueText, Length: ClassifyText(text)}
}

// Audio receives cue requests after each tick.
type Audio interface {
	Play(c Cue)
}
