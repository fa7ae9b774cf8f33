package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// ReplayInput represents input state during replay
type ReplayInput struct {
	Move          mgl64.Vec2
	Look          mgl64.Vec2
	RunPressed    bool
	RunReleased   bool
	Dance         bool
	Jump          bool
	Crouch        bool
	Prone         bool
	SlidePressed  bool
	SlideReleased bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		Move:          mgl64.Vec2{fi.MX, fi.MY},
		Look:          mgl64.Vec2{fi.LX, fi.LY},
		RunPressed:    fi.RP,
		RunReleased:   fi.RR,
		Dance:         fi.Dn,
		Jump:          fi.J,
		Crouch:        fi.C,
		Prone:         fi.P,
		SlidePressed:  fi.SP,
		SlideReleased: fi.SR,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// TPS returns the tick rate the replay was recorded at
func (r *Replayer) TPS() int {
	return r.data.TPS
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: the player walks
// forward for every frame
func CreateTestReplayData(frames int, forward float64) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		TPS:       60,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MY: forward,
		}
	}

	return data
}
