package config

// Game holds the tunables of one simulation run
type Game struct {
	Seed int64

	MapWidth  int
	MapHeight int

	// Rooms architect
	RoomCount    int
	RoomAttempts int

	// Drunkard's walk architect
	StaggerDistance  int
	DrunkardCoverage float64
	DrunkardWalks    int

	// Cellular automata architect
	WallChance      int // percent
	SmoothingPasses int
	WallThreshold   int

	// Prefab overlay; candidate tiles must sit strictly between the two
	// path distances from the start
	PrefabAttempts int
	PrefabMinDist  float64
	PrefabMaxDist  float64

	PathfindingDepth float64
	MonsterCount     int
	SpawnMinDistance float64

	PlayerHealth     int
	PlayerFOVRadius  int
	MonsterFOVRadius int
	ChaseAdjacency   float64

	DisplayWidth  int
	DisplayHeight int
}

// Default returns the standard configuration
func Default() Game {
	return Game{
		Seed:             1,
		MapWidth:         MapWidth,
		MapHeight:        MapHeight,
		RoomCount:        20,
		RoomAttempts:     10000,
		StaggerDistance:  400,
		DrunkardCoverage: 1.0 / 3.0,
		DrunkardWalks:    2000,
		WallChance:       55,
		SmoothingPasses:  10,
		WallThreshold:    4,
		PrefabAttempts:   10,
		PrefabMinDist:    20,
		PrefabMaxDist:    2000,
		PathfindingDepth: 1024,
		MonsterCount:     50,
		SpawnMinDistance: 10,
		PlayerHealth:     10,
		PlayerFOVRadius:  8,
		MonsterFOVRadius: 6,
		ChaseAdjacency:   1.2,
		DisplayWidth:     DisplayWidth,
		DisplayHeight:    DisplayHeight,
	}
}
