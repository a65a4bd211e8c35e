package rawlinear

const (
	outputBPS    = 16
	userQuality  = 3 // AHD demosaic.
	highlightOff = 0 // Clip.
	noiseThresh  = 100
	linearGamma  = 1.0
)

const (
	defaultColorSpace = ColorSpaceXYZ
	defaultWorkers    = 2
)

const floatDumpMagic = "RLF1"
