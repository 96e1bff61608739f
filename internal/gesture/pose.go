// Package gesture turns classifier output into a small closed set of poses.
// Raw labels vary by model and language; everything downstream only sees Pose.
package gesture

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Pose is a canonical classifier class.
type Pose int

const (
	PoseUnknown Pose = iota
	PoseLeft
	PoseCenter
	PoseRight
	PoseJump
)

// String returns the canonical English token.
func (p Pose) String() string {
	switch p {
	case PoseLeft:
		return "left"
	case PoseCenter:
		return "center"
	case PoseRight:
		return "right"
	case PoseJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Lane returns the catcher lane for a directional pose.
func (p Pose) Lane() (int, bool) {
	switch p {
	case PoseLeft:
		return 0, true
	case PoseCenter:
		return 1, true
	case PoseRight:
		return 2, true
	default:
		return 0, false
	}
}

// LaneLabel returns the canonical label that selects lane i.
func LaneLabel(i int) string {
	switch i {
	case 0:
		return PoseLeft.String()
	case 1:
		return PoseCenter.String()
	case 2:
		return PoseRight.String()
	default:
		return ""
	}
}

type token struct {
	text string
	pose Pose
}

// exact lists whole-label spellings, including the Korean class names.
var exact = map[string]Pose{
	"left":   PoseLeft,
	"왼쪽":     PoseLeft,
	"center": PoseCenter,
	"centre": PoseCenter,
	"정면":     PoseCenter,
	"right":  PoseRight,
	"오른쪽":    PoseRight,
	"jump":   PoseJump,
	"점프":     PoseJump,
}

// contains is tried in order when no exact spelling matches.
var contains = []token{
	{"left", PoseLeft},
	{"왼쪽", PoseLeft},
	{"right", PoseRight},
	{"오른쪽", PoseRight},
	{"center", PoseCenter},
	{"정면", PoseCenter},
	{"jump", PoseJump},
	{"점프", PoseJump},
}

// Canonicalize maps a raw label to a Pose. Labels are NFC-normalized and
// case-folded, then matched exactly and finally by substring.
// Unrecognized labels yield PoseUnknown.
func Canonicalize(label string) Pose {
	s := strings.TrimSpace(norm.NFC.String(label))
	if s == "" {
		return PoseUnknown
	}
	s = cases.Fold().String(s) // a Caser is stateful; never share one across sessions

	if p, ok := exact[s]; ok {
		return p
	}
	for _, t := range contains {
		if strings.Contains(s, t.text) {
			return t.pose
		}
	}
	return PoseUnknown
}
