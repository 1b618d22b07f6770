package config

// BotConfig tunes the built-in opponent. Distances are world pixels,
// periods are ticks.
type BotConfig struct {
	ApproachDeadzone float64 // stop steering when this close horizontally
	JumpHeightGap    float64 // chase upward when the target is this far above
	DropHeightGap    float64 // drop through platforms when this far below
	ShootAlignY      float64 // vertical alignment required to take a shot
	MeleeRangeX      float64
	MeleeRangeY      float64
	JumpPeriod       int
	ShootPeriod      int
	MeleePeriod      int
}

var Bot BotConfig

func init() {
	Bot = BotConfig{
		ApproachDeadzone: 8,
		JumpHeightGap:    24,
		DropHeightGap:    48,
		ShootAlignY:      20,
		MeleeRangeX:      40,
		MeleeRangeY:      30,
		JumpPeriod:       24,
		ShootPeriod:      18,
		MeleePeriod:      30,
	}
}
