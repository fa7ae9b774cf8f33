package config

// LocomotionConfig is the root config for locomotion.json / locomotion.yaml.
// Distances are in centimetres, speeds in cm/s, angles in degrees.
type LocomotionConfig struct {
	Display   DisplayConfig   `json:"display" yaml:"display"`
	Physics   PhysicsSettings `json:"physics" yaml:"physics"`
	Movement  MovementConfig  `json:"movement" yaml:"movement"`
	Camera    CameraConfig    `json:"camera" yaml:"camera"`
	Jump      JumpConfig      `json:"jump" yaml:"jump"`
	Crouch    CrouchConfig    `json:"crouch" yaml:"crouch"`
	Prone     ProneConfig     `json:"prone" yaml:"prone"`
	Slide     SlideConfig     `json:"slide" yaml:"slide"`
	Animation AnimationConfig `json:"animation" yaml:"animation"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int     `json:"screenHeight" yaml:"screenHeight"`
	Scale        int     `json:"scale" yaml:"scale"`
	Framerate    int     `json:"framerate" yaml:"framerate"`
	PixelsPerCm  float64 `json:"pixelsPerCm" yaml:"pixelsPerCm"`
}

// PhysicsSettings tunes the reference integrator, not the state machine
type PhysicsSettings struct {
	Gravity             float64 `json:"gravity" yaml:"gravity"`
	GravityScale        float64 `json:"gravityScale" yaml:"gravityScale"`
	MaxFallSpeed        float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"`
	Acceleration        float64 `json:"acceleration" yaml:"acceleration"`
	BrakingDeceleration float64 `json:"brakingDeceleration" yaml:"brakingDeceleration"`
	AirControl          float64 `json:"airControl" yaml:"airControl"`
	CapsuleRadius       float64 `json:"capsuleRadius" yaml:"capsuleRadius"`
}

type MovementConfig struct {
	WalkSpeed     float64 `json:"walkSpeed" yaml:"walkSpeed"`
	SprintSpeed   float64 `json:"sprintSpeed" yaml:"sprintSpeed"`
	RotationSpeed float64 `json:"rotationSpeed" yaml:"rotationSpeed"`
}

type CameraConfig struct {
	SpawnPitch          float64 `json:"spawnPitch" yaml:"spawnPitch"`
	Sensitivity         float64 `json:"sensitivity" yaml:"sensitivity"`
	VerticalSensitivity float64 `json:"verticalSensitivity" yaml:"verticalSensitivity"`
	PitchMin            float64 `json:"pitchMin" yaml:"pitchMin"` // offset below spawn pitch
	PitchMax            float64 `json:"pitchMax" yaml:"pitchMax"` // offset above spawn pitch
}

type JumpConfig struct {
	Force                  float64 `json:"force" yaml:"force"`
	FlipForce              float64 `json:"flipForce" yaml:"flipForce"`
	BufferTime             float64 `json:"bufferTime" yaml:"bufferTime"`
	AllowDoubleJump        bool    `json:"allowDoubleJump" yaml:"allowDoubleJump"`
	AllowJumpWhileCrouched bool    `json:"allowJumpWhileCrouched" yaml:"allowJumpWhileCrouched"`
}

type CrouchConfig struct {
	Speed            float64 `json:"speed" yaml:"speed"`
	BackwardSpeed    float64 `json:"backwardSpeed" yaml:"backwardSpeed"` // 0 uses Speed
	StandHalfHeight  float64 `json:"standHalfHeight" yaml:"standHalfHeight"`
	CrouchHalfHeight float64 `json:"crouchHalfHeight" yaml:"crouchHalfHeight"`
	// CapsuleOffset is added to the settle delta when rising from prone
	CapsuleOffset float64 `json:"capsuleOffset" yaml:"capsuleOffset"`
	CeilingMargin float64 `json:"ceilingMargin" yaml:"ceilingMargin"`
}

type ProneConfig struct {
	Speed         float64 `json:"speed" yaml:"speed"`
	BackwardSpeed float64 `json:"backwardSpeed" yaml:"backwardSpeed"` // 0 uses Speed
	HalfHeight    float64 `json:"halfHeight" yaml:"halfHeight"`
	CapsuleOffset float64 `json:"capsuleOffset" yaml:"capsuleOffset"`
	SettleFactor  float64 `json:"settleFactor" yaml:"settleFactor"`
	RiseNudge     float64 `json:"riseNudge" yaml:"riseNudge"`
}

// SlideConfig tunes the run-and-hold-crouch slide. The slide velocity gains
// SlopeBoost down a slope and FlatBoost along the move input, loses
// Friction of itself per second, and ends below MinSpeed.
type SlideConfig struct {
	Enabled       bool    `json:"enabled" yaml:"enabled"`
	HalfHeight    float64 `json:"halfHeight" yaml:"halfHeight"`
	SlopeBoost    float64 `json:"slopeBoost" yaml:"slopeBoost"`
	FlatBoost     float64 `json:"flatBoost" yaml:"flatBoost"`
	Friction      float64 `json:"friction" yaml:"friction"`
	MinSpeed      float64 `json:"minSpeed" yaml:"minSpeed"`
	FallGraceTime float64 `json:"fallGraceTime" yaml:"fallGraceTime"`
}

// AnimationConfig times the notifies fired by the demo animation timeline
type AnimationConfig struct {
	JumpLiftoffDelay        float64 `json:"jumpLiftoffDelay" yaml:"jumpLiftoffDelay"`
	FlipDuration            float64 `json:"flipDuration" yaml:"flipDuration"`
	ProneTransitionDuration float64 `json:"proneTransitionDuration" yaml:"proneTransitionDuration"`
}

// DefaultLocomotionConfig returns the tunables of the crouch/prone character
func DefaultLocomotionConfig() *LocomotionConfig {
	return &LocomotionConfig{
		Display: DisplayConfig{
			ScreenWidth:  480,
			ScreenHeight: 320,
			Scale:        2,
			Framerate:    60,
			PixelsPerCm:  0.25,
		},
		Physics: PhysicsSettings{
			Gravity:             980,
			GravityScale:        2,
			MaxFallSpeed:        4000,
			Acceleration:        2048,
			BrakingDeceleration: 1800,
			AirControl:          1.5,
			CapsuleRadius:       34,
		},
		Movement: MovementConfig{
			WalkSpeed:     300,
			SprintSpeed:   600,
			RotationSpeed: 10,
		},
		Camera: CameraConfig{
			SpawnPitch:          -20,
			Sensitivity:         0.75,
			VerticalSensitivity: 0.75,
			PitchMin:            -15,
			PitchMax:            45,
		},
		Jump: JumpConfig{
			Force:           1000,
			FlipForce:       800,
			BufferTime:      0.1,
			AllowDoubleJump: true,
		},
		Crouch: CrouchConfig{
			Speed:            200,
			StandHalfHeight:  88,
			CrouchHalfHeight: 44,
			CapsuleOffset:    -40,
			CeilingMargin:    5,
		},
		Prone: ProneConfig{
			Speed:         125,
			HalfHeight:    40,
			CapsuleOffset: -20,
			SettleFactor:  0.95,
			RiseNudge:     2,
		},
		Slide: SlideConfig{
			Enabled:       true,
			HalfHeight:    40,
			SlopeBoost:    1800,
			FlatBoost:     300,
			Friction:      1,
			MinSpeed:      420,
			FallGraceTime: 1,
		},
		Animation: AnimationConfig{
			JumpLiftoffDelay:        0.12,
			FlipDuration:            0.6,
			ProneTransitionDuration: 0.8,
		},
	}
}
