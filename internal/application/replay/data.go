package replay

import "github.com/younwookim/stride/internal/application/system"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	H   float64 `json:"h,omitempty"`   // Horizontal axis
	V   float64 `json:"v,omitempty"`   // Vertical axis
	T   float64 `json:"t,omitempty"`   // Turn axis
	J   bool    `json:"j,omitempty"`   // Jump held
	JP  bool    `json:"jp,omitempty"`  // JumpPressed
	S   bool    `json:"s,omitempty"`   // Sprint held
	C   bool    `json:"c,omitempty"`   // Crouch held
	CP  bool    `json:"cp,omitempty"`  // CrouchPressed
	CR  bool    `json:"cr,omitempty"`  // CrouchReleased
	Dsh bool    `json:"dsh,omitempty"` // Dash pressed
	Sl  bool    `json:"sl,omitempty"`  // Slide held
	W   bool    `json:"w,omitempty"`   // WallRun held
}

// NewFrameInput captures in as frame f.
func NewFrameInput(f int, in system.InputState) FrameInput {
	return FrameInput{
		F:   f,
		H:   in.Horizontal,
		V:   in.Vertical,
		T:   in.Turn,
		J:   in.Jump,
		JP:  in.JumpPressed,
		S:   in.Sprint,
		C:   in.Crouch,
		CP:  in.CrouchPressed,
		CR:  in.CrouchReleased,
		Dsh: in.Dash,
		Sl:  in.Slide,
		W:   in.WallRun,
	}
}

// Input converts the recorded frame back into controller input.
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Horizontal:     fi.H,
		Vertical:       fi.V,
		Turn:           fi.T,
		Jump:           fi.J,
		JumpPressed:    fi.JP,
		Sprint:         fi.S,
		Crouch:         fi.C,
		CrouchPressed:  fi.CP,
		CrouchReleased: fi.CR,
		Dash:           fi.Dsh,
		Slide:          fi.Sl,
		WallRun:        fi.W,
	}
}

// ReplayData contains all data needed to replay a session.
// DT is the frame delta the session was recorded at.
type ReplayData struct {
	Version   string       `json:"version"`
	Course    string       `json:"course"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
