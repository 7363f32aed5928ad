package parameter

// Camera
const (
	CameraX       = 10.0
	CameraY       = 10.0
	CameraZ       = 20.0
	CameraTargetX = 0.0
	CameraTargetY = 5.0
	CameraTargetZ = 0.0
	CameraFovDeg  = 75.0
	CameraNear    = 0.1
	CameraFar     = 1000.0
)

// Terminal cells are about twice as tall as wide
const CellAspect = 2.0

// Mesh colors as 0xRRGGBB
const (
	ColorSky       = 0x87CEEB
	ColorGround    = 0x3A5F0B
	ColorBall      = 0xFF0000
	ColorBlockBase = 0x8B4513
	ColorHUD       = 0xFFFFFF
)
