package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	MX float64 `json:"mx,omitempty"` // Move strafe axis
	MY float64 `json:"my,omitempty"` // Move forward axis
	LX float64 `json:"lx,omitempty"` // Look yaw axis
	LY float64 `json:"ly,omitempty"` // Look pitch axis
	RP bool    `json:"rp,omitempty"` // RunPressed
	RR bool    `json:"rr,omitempty"` // RunReleased
	Dn bool    `json:"dn,omitempty"` // Dance
	J  bool    `json:"j,omitempty"`  // Jump
	C  bool    `json:"c,omitempty"`  // Crouch
	P  bool    `json:"p,omitempty"`  // Prone
	SP bool    `json:"sp,omitempty"` // SlidePressed
	SR bool    `json:"sr,omitempty"` // SlideReleased
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	TPS       int          `json:"tps"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
