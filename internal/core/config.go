package core

// RuntimeConfig is handed to the game when it (re)starts.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is what the platform needs to know after each input.
type GameState struct {
	Score     int
	BestScore int
	NewBest   bool // final score beat the best the game started with
	GameOver  bool // no moves left
	Won       bool // target reached and not yet dismissed
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State   GameState
	Changed bool // the board or outcome changed
}
