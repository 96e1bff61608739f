package gesture

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		label string
		want  Pose
	}{
		{"Left", PoseLeft},
		{"left", PoseLeft},
		{"왼쪽", PoseLeft},
		{"  Right ", PoseRight},
		{"오른쪽", PoseRight},
		{"Center", PoseCenter},
		{"정면", PoseCenter},
		{"Jump", PoseJump},
		{"점프", PoseJump},
		{"Class 1 - Left hand up", PoseLeft},
		{"Lean Right", PoseRight},
		{"LEFT", PoseLeft},
		{"Nothing", PoseUnknown},
		{"", PoseUnknown},
		{"   ", PoseUnknown},
	}

	for _, tt := range tests {
		if got := Canonicalize(tt.label); got != tt.want {
			t.Errorf("Canonicalize(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestCanonicalizeDecomposedHangul(t *testing.T) {
	// "정면" written as conjoining jamo normalizes to the precomposed form.
	decomposed := "\u110c\u1165\u11bc\u1106\u1167\u11ab"
	if got := Canonicalize(decomposed); got != PoseCenter {
		t.Errorf("Canonicalize(decomposed 정면) = %v, want center", got)
	}
}

func TestPoseLane(t *testing.T) {
	tests := []struct {
		pose   Pose
		lane   int
		wantOK bool
	}{
		{PoseLeft, 0, true},
		{PoseCenter, 1, true},
		{PoseRight, 2, true},
		{PoseJump, 0, false},
		{PoseUnknown, 0, false},
	}
	for _, tt := range tests {
		lane, ok := tt.pose.Lane()
		if ok != tt.wantOK || (ok && lane != tt.lane) {
			t.Errorf("%v.Lane() = %d, %v", tt.pose, lane, ok)
		}
	}
}

func TestLaneLabelRoundTrip(t *testing.T) {
	for i := 0; i < 3; i++ {
		lane, ok := Canonicalize(LaneLabel(i)).Lane()
		if !ok || lane != i {
			t.Errorf("LaneLabel(%d) canonicalizes to lane %d, %v", i, lane, ok)
		}
	}
	if LaneLabel(5) != "" {
		t.Error("LaneLabel out of range should be empty")
	}
}
