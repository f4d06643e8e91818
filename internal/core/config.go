package core

// RuntimeConfig contains the terminal dimensions and RNG seed a view starts with.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for target selection
}
