package game

// Arena dimensions (world units). The arena is square and maps 1:1 to the
// window at the default scale.
const (
	ArenaSize = 800.0
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 800
	WindowTitle  = "Scurry!"
)

// Character geometry. WallPad keeps the mouse from clipping into walls;
// the cheese uses a wider margin so it never spawns flush against one.
const (
	CharRadius   = 20.0
	CheeseRadius = 12.0
	WallMargin   = 5.0
	WallPad      = CharRadius + WallMargin
	CheesePad    = 48.0
)

// Movement. Speeds are in world units per reference tick (60 Hz frame).
const (
	MouseSpeed     = 5.0
	CatBaseSpeed   = 2.0
	CatTickAccel   = 0.002 // passive, every tick
	CatCheeseBoost = 0.25  // discrete, per cheese eaten
)

// Starting positions. The cat spawns in the far corner so a fresh run
// always opens with breathing room.
const (
	MouseStartX = ArenaSize / 2
	MouseStartY = ArenaSize / 2
	CatStartX   = 60.0
	CatStartY   = 60.0
)

// Scoring.
const (
	ScoreRate   = 1.5 // per reference tick survived
	CheeseBonus = 100.0
)

// Tick clock. Delta is measured in reference frames and clamped so a
// stalled host can't produce a teleporting catch-up tick.
const (
	RefFrameSeconds = 1.0 / 60.0
	DeltaMax        = 2.5
	FirstTickDelta  = 1.0
	NoTickYet       = -1.0 // LastTick sentinel
)

// Particles. MaxSpriteRender caps a single streaming draw call; it bounds
// the VBO size allocated up front.
const (
	MaxParticles    = 512
	MaxSpriteRender = 1024
)

// Camera shake on capture.
const (
	CaptureShakeIntensity = 9.0
	CaptureShakeDuration  = 0.45
)

// Font atlas layout. Glyphs are generated at startup: 5x7 pixels in 6x8
// cells, 16 columns, rows indexed by raw ASCII code (rows 0-1 stay blank).
const (
	FontGlyphW = 5
	FontGlyphH = 7
	FontCellW  = 6
	FontCellH  = 8
	FontCols   = 16
	FontRows   = 8
	FontAtlasW = FontCellW * FontCols // 96
	FontAtlasH = FontCellH * FontRows // 64
)
