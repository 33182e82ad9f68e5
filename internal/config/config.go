package config

const (
	WindowWidth  = 1024
	WindowHeight = 720
	WindowTitle  = "Portfolio"

	FrameRingSize = 120

	// Particle field
	ParticleCount      = 40
	ParticleMinRadius  = 1.0
	ParticleRadiusSpan = 2.0
	ParticleMaxSpeed   = 0.25
	LinkDistance       = 100.0
	LinkAlphaBase      = 0.2
	LinkAlphaFalloff   = 500.0
	LinkWidth          = 0.5

	// Scroll tracking
	ScrolledOffset   = 50
	ScrollTopOffset  = 300
	SectionProbeLine = 200
	ScrollEase       = 0.18
	WheelStep        = 60
	KeyStep          = 40

	// Header
	HeaderHeight        = 64
	HeaderCompactHeight = 48

	// Scroll-to-top button
	ScrollTopSize   = 40
	ScrollTopMargin = 24

	ClickVolume = -1.5

	ThemeKey = "darkMode"
)
