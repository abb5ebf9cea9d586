package io

const (
	ExampleFriedmannCompareFile = `[FriedmannCompare]

#######################
# Required Parameters #
#######################

# File the comparison figure will be written to.
Output = path/to/friedmann.png

#######################
# Optional Parameters #
#######################

# Density parameters of the LambdaCDM model. The defaults are the Planck
# concordance values.
# OmegaM = 0.309
# OmegaL = 0.691

# Largest scale factor plotted. a = 1 is today.
# AMax = 2.5

# Number of scale factor samples along each curve.
# Samples = 400

# Plotting backend. "chart" renders the PNG in-process, "pyplot" hands the
# figure to matplotlib, which must be installed.
# Backend = chart

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`
	ExampleFreezeOutFile = `[FreezeOut]

#######################
# Required Parameters #
#######################

# File the abundance integral figure will be written to.
Output = path/to/freezeout.png

#######################
# Optional Parameters #
#######################

# Upper limit of the outermost integral, in units of m/T.
# XMax = 50

# Number of samples along the curve.
# Samples = 1000

# Samples with x above PlateauMin are averaged into the reported
# saturation value.
# PlateauMin = 10

# Plotting backend, "chart" or "pyplot".
# Backend = chart

# ProfileFile = prof.out
# LogFile = log.out`
	ExampleRotationCurveFile = `[RotationCurve]

#######################
# Required Parameters #
#######################

# Whitespace separated table holding, per row, the radius, the halo
# angular velocity, two unused columns, the total circular velocity and
# the bulge circular velocity. Lines starting with # are skipped.
Input = path/to/curve.dat

# File the decomposition figure will be written to.
Output = path/to/rotation.png

#######################
# Optional Parameters #
#######################

# Velocity unit of the table in km/s. 220 makes the tabulated unit the
# solar circular speed.
# VelScale = 220

# Radius unit of the table in kpc.
# RadScale = 1

# Backend = chart
# ProfileFile = prof.out
# LogFile = log.out`
	ExampleMassProfileFile = `[MassProfile]

#######################
# Required Parameters #
#######################

# The same table layout the RotationCurve mode reads.
Input = path/to/curve.dat

# File the enclosed mass figure will be written to.
Output = path/to/mass.png

#######################
# Optional Parameters #
#######################

# Velocity unit of the table in km/s. 300 makes the tabulated total
# velocity come out near 210 km/s at the solar radius.
# VelScale = 300

# Backend = chart
# ProfileFile = prof.out
# LogFile = log.out`
	ExampleToomreFile = `[Toomre]

#######################
# Required Parameters #
#######################

# Whitespace separated table holding, per row, a radius and the Toomre Q
# parameter at that radius.
Input = path/to/toomre.dat

# File the stability figure will be written to.
Output = path/to/toomre.png

#######################
# Optional Parameters #
#######################

# Backend = chart
# ProfileFile = prof.out
# LogFile = log.out`
	ExampleDiskVideoFile = `[DiskVideo]

#######################
# Required Parameters #
#######################

# Directory containing format 1 Gadget-2 snapshots. Every file whose name
# starts with "snapshot" is rendered, in lexical order.
Input = path/to/snapshot/dir

# File the AVI video will be written to.
Output = path/to/disk.avi

#######################
# Optional Parameters #
#######################

# Rendered particle type, one of
# [ gas | halo | disk | bulge | stars | bndry | all ].
# Type = disk

# Plotted coordinate pair, one of [ xy | xz | yz | z-vz ].
# Projection = xy

# Width and height of the square frames in pixels.
# Size = 512

# Frame rate of the video.
# FPS = 10

# Half width of the plotted region, in the snapshot's position units.
# Limit = 50

# Half width of the velocity axis, used only by the z-vz projection.
# VLimit = 300

# When set, every frame is additionally saved into this directory as a
# PNG. The directory must exist.
# FrameDir = path/to/frames

# Snapshots are little endian by default.
# BigEndian = false

# ProfileFile = prof.out
# LogFile = log.out`
	ExampleDiskStructureFile = `[DiskStructure]

#######################
# Required Parameters #
#######################

# Directory containing format 1 Gadget-2 snapshots.
Input = path/to/snapshot/dir

# File the extent and scale height figure will be written to.
Output = path/to/structure.png

#######################
# Optional Parameters #
#######################

# Measured particle type.
# Type = disk

# Outermost radius of the scale height rings, in position units.
# RMax = 15

# Number of scale height rings.
# Bins = 30

# BigEndian = false
# Backend = chart
# ProfileFile = prof.out
# LogFile = log.out`
	ExampleBrightnessFile = `[Brightness]

#######################
# Required Parameters #
#######################

# File the surface brightness figure will be written to.
Output = path/to/brightness.png

#######################
# Optional Parameters #
#######################

# CSV profile with an SMA column holding the semi-major axis in arcsec
# and one mu_<band> column per band, in mag/arcsec^2. When Input is not
# set, a built-in g, r, i profile of NGC 628 is plotted instead.
# Input = path/to/profile.csv

# Comma separated list of plotted bands. All bands by default.
# Bands = g,r

# Each band is fit over this fraction of the radial span, skipping the
# bulge-dominated center and the noisy outskirts. The fit lines and the
# window boundaries are drawn over the raw points.
# InnerFrac = 0.05
# OuterFrac = 0.85

# Backend = chart
# ProfileFile = prof.out
# LogFile = log.out`
	ExampleScaleLengthFile = `[ScaleLength]

#######################
# Required Parameters #
#######################

# File the disk fit figure will be written to. A LaTeX table of the
# fitted scale lengths is printed to stdout.
Output = path/to/scalelength.png

#######################
# Optional Parameters #
#######################

# CSV profile in the layout the Brightness mode reads. The built-in
# NGC 628 profile is used when Input is not set.
# Input = path/to/profile.csv

# Fit a single band instead of all of them.
# Band = r

# Physical scale at the galaxy's distance. 0 skips the kpc conversion.
# KpcPerArcsec = 0.0484

# When both are set, the fit is restricted to this fraction of the
# radial span. Skips the bulge-dominated center and noisy outskirts.
# InnerFrac = 0.25
# OuterFrac = 0.9

# Backend = chart
# ProfileFile = prof.out
# LogFile = log.out`
	ExampleColorGradientFile = `[ColorGradient]

#######################
# Required Parameters #
#######################

# File the color profile figure will be written to.
Output = path/to/color.png

#######################
# Optional Parameters #
#######################

# CSV profile in the layout the Brightness mode reads. The built-in
# NGC 628 profile is used when Input is not set.
# Input = path/to/profile.csv

# Bands of the plotted color index, Blue - Red.
# Blue = g
# Red = r

# Width of the rolling mean smoothing window, in samples. Must be odd.
# Smooth = 3

# Backend = chart
# ProfileFile = prof.out
# LogFile = log.out`
)

type SharedConfig struct {
	// Required
	Input, Output string
	// Optional
	Backend              string
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidBackend() bool {
	return con.Backend == "chart" || con.Backend == "pyplot"
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type FriedmannCompareConfig struct {
	SharedConfig
	OmegaM, OmegaL float64
	AMax           float64
	Samples        int
}

func DefaultFriedmannCompareWrapper() *FriedmannCompareWrapper {
	con := FriedmannCompareConfig{}
	con.Backend = "chart"
	con.OmegaM = 0.309
	con.OmegaL = 0.691
	con.AMax = 2.5
	con.Samples = 400
	return &FriedmannCompareWrapper{con}
}

func (con *FriedmannCompareConfig) ValidOmegaM() bool {
	return con.OmegaM > 0
}
func (con *FriedmannCompareConfig) ValidOmegaL() bool {
	return con.OmegaL >= 0
}
func (con *FriedmannCompareConfig) ValidAMax() bool {
	return con.AMax > 0
}
func (con *FriedmannCompareConfig) ValidSamples() bool {
	return con.Samples > 1
}

type FreezeOutConfig struct {
	SharedConfig
	XMax       float64
	Samples    int
	PlateauMin float64
}

func DefaultFreezeOutWrapper() *FreezeOutWrapper {
	con := FreezeOutConfig{}
	con.Backend = "chart"
	con.XMax = 50
	con.Samples = 1000
	con.PlateauMin = 10
	return &FreezeOutWrapper{con}
}

func (con *FreezeOutConfig) ValidXMax() bool {
	return con.XMax > 0
}
func (con *FreezeOutConfig) ValidSamples() bool {
	return con.Samples > 1
}
func (con *FreezeOutConfig) ValidPlateauMin() bool {
	return con.PlateauMin > 0 && con.PlateauMin < con.XMax
}

type RotationCurveConfig struct {
	SharedConfig
	VelScale, RadScale float64
}

func DefaultRotationCurveWrapper() *RotationCurveWrapper {
	con := RotationCurveConfig{}
	con.Backend = "chart"
	con.VelScale = 220
	con.RadScale = 1
	return &RotationCurveWrapper{con}
}

func (con *RotationCurveConfig) ValidVelScale() bool {
	return con.VelScale > 0
}
func (con *RotationCurveConfig) ValidRadScale() bool {
	return con.RadScale > 0
}

type MassProfileConfig struct {
	SharedConfig
	VelScale float64
}

func DefaultMassProfileWrapper() *MassProfileWrapper {
	con := MassProfileConfig{}
	con.Backend = "chart"
	con.VelScale = 300
	return &MassProfileWrapper{con}
}

func (con *MassProfileConfig) ValidVelScale() bool {
	return con.VelScale > 0
}

type ToomreConfig struct {
	SharedConfig
}

func DefaultToomreWrapper() *ToomreWrapper {
	con := ToomreConfig{}
	con.Backend = "chart"
	return &ToomreWrapper{con}
}

type DiskVideoConfig struct {
	SharedConfig
	Type       string
	Projection string
	Size, FPS  int
	Limit      float64
	VLimit     float64
	FrameDir   string
	BigEndian  bool
}

func DefaultDiskVideoWrapper() *DiskVideoWrapper {
	con := DiskVideoConfig{}
	con.Type = "disk"
	con.Projection = "xy"
	con.Size = 512
	con.FPS = 10
	con.Limit = 50
	con.VLimit = 300
	return &DiskVideoWrapper{con}
}

func (con *DiskVideoConfig) ValidSize() bool {
	return con.Size > 0
}
func (con *DiskVideoConfig) ValidFPS() bool {
	return con.FPS > 0
}
func (con *DiskVideoConfig) ValidLimit() bool {
	return con.Limit > 0
}
func (con *DiskVideoConfig) ValidVLimit() bool {
	return con.VLimit > 0
}

type DiskStructureConfig struct {
	SharedConfig
	Type      string
	RMax      float64
	Bins      int
	BigEndian bool
}

func DefaultDiskStructureWrapper() *DiskStructureWrapper {
	con := DiskStructureConfig{}
	con.Backend = "chart"
	con.Type = "disk"
	con.RMax = 15
	con.Bins = 30
	return &DiskStructureWrapper{con}
}

func (con *DiskStructureConfig) ValidRMax() bool {
	return con.RMax > 0
}
func (con *DiskStructureConfig) ValidBins() bool {
	return con.Bins > 0
}

type BrightnessConfig struct {
	SharedConfig
	Bands                string
	InnerFrac, OuterFrac float64
}

func DefaultBrightnessWrapper() *BrightnessWrapper {
	con := BrightnessConfig{}
	con.Backend = "chart"
	con.InnerFrac = 0.05
	con.OuterFrac = 0.85
	return &BrightnessWrapper{con}
}

func (con *BrightnessConfig) ValidWindow() bool {
	return con.InnerFrac >= 0 && con.InnerFrac < con.OuterFrac &&
		con.OuterFrac <= 1
}

type ScaleLengthConfig struct {
	SharedConfig
	Band                 string
	KpcPerArcsec         float64
	InnerFrac, OuterFrac float64
}

func DefaultScaleLengthWrapper() *ScaleLengthWrapper {
	con := ScaleLengthConfig{}
	con.Backend = "chart"
	return &ScaleLengthWrapper{con}
}

func (con *ScaleLengthConfig) ValidKpcPerArcsec() bool {
	return con.KpcPerArcsec > 0
}
func (con *ScaleLengthConfig) ValidWindow() bool {
	return con.InnerFrac >= 0 && con.InnerFrac < con.OuterFrac &&
		con.OuterFrac <= 1
}
func (con *ScaleLengthConfig) WindowSet() bool {
	return con.InnerFrac != 0 || con.OuterFrac != 0
}

type ColorGradientConfig struct {
	SharedConfig
	Blue, Red string
	Smooth    int
}

func DefaultColorGradientWrapper() *ColorGradientWrapper {
	con := ColorGradientConfig{}
	con.Backend = "chart"
	con.Blue = "g"
	con.Red = "r"
	con.Smooth = 3
	return &ColorGradientWrapper{con}
}

func (con *ColorGradientConfig) ValidBands() bool {
	return con.Blue != "" && con.Red != "" && con.Blue != con.Red
}
func (con *ColorGradientConfig) ValidSmooth() bool {
	return con.Smooth > 0 && con.Smooth%2 == 1
}

type FriedmannCompareWrapper struct {
	FriedmannCompare FriedmannCompareConfig
}

type FreezeOutWrapper struct {
	FreezeOut FreezeOutConfig
}

type RotationCurveWrapper struct {
	RotationCurve RotationCurveConfig
}

type MassProfileWrapper struct {
	MassProfile MassProfileConfig
}

type ToomreWrapper struct {
	Toomre ToomreConfig
}

type DiskVideoWrapper struct {
	DiskVideo DiskVideoConfig
}

type DiskStructureWrapper struct {
	DiskStructure DiskStructureConfig
}

type BrightnessWrapper struct {
	Brightness BrightnessConfig
}

type ScaleLengthWrapper struct {
	ScaleLength ScaleLengthConfig
}

type ColorGradientWrapper struct {
	ColorGradient ColorGradientConfig
}
