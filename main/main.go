package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/albertmrtnz25/galkit/io"
)

type FileGroup struct {
	log, prof *os.File
}

// Init opens the optional log and profile files of a mode's config.
func (fg *FileGroup) Init(con *io.SharedConfig) {
	if con.ValidLogFile() {
		f, err := os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(f)
		fg.log = f
	}

	if con.ValidProfileFile() {
		f, err := os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err.Error())
		}
		fg.prof = f
	}
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		friedmannCompare, freezeOut            string
		rotationCurve, massProfile, toomre     string
		diskVideo, diskStructure               string
		brightness, scaleLength, colorGradient string
		exampleConfig                          string
	)
	vars := map[string]*string{
		"FriedmannCompare": &friedmannCompare,
		"FreezeOut":        &freezeOut,
		"RotationCurve":    &rotationCurve,
		"MassProfile":      &massProfile,
		"Toomre":           &toomre,
		"DiskVideo":        &diskVideo,
		"DiskStructure":    &diskStructure,
		"Brightness":       &brightness,
		"ScaleLength":      &scaleLength,
		"ColorGradient":    &colorGradient,
		"ExampleConfig":    &exampleConfig,
	}

	flag.StringVar(
		&friedmannCompare, "FriedmannCompare", "",
		"Configuration file for [FriedmannCompare] mode.",
	)
	flag.StringVar(
		&freezeOut, "FreezeOut", "",
		"Configuration file for [FreezeOut] mode.",
	)
	flag.StringVar(
		&rotationCurve, "RotationCurve", "",
		"Configuration file for [RotationCurve] mode.",
	)
	flag.StringVar(
		&massProfile, "MassProfile", "",
		"Configuration file for [MassProfile] mode.",
	)
	flag.StringVar(
		&toomre, "Toomre", "",
		"Configuration file for [Toomre] mode.",
	)
	flag.StringVar(
		&diskVideo, "DiskVideo", "",
		"Configuration file for [DiskVideo] mode.",
	)
	flag.StringVar(
		&diskStructure, "DiskStructure", "",
		"Configuration file for [DiskStructure] mode.",
	)
	flag.StringVar(
		&brightness, "Brightness", "",
		"Configuration file for [Brightness] mode.",
	)
	flag.StringVar(
		&scaleLength, "ScaleLength", "",
		"Configuration file for [ScaleLength] mode.",
	)
	flag.StringVar(
		&colorGradient, "ColorGradient", "",
		"Configuration file for [ColorGradient] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are the names of the other flags.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	fg := &FileGroup{}
	defer fg.Close()

	switch modeName {
	case "FriedmannCompare":
		wrap := io.DefaultFriedmannCompareWrapper()
		readConfig(wrap, friedmannCompare)
		con := &wrap.FriedmannCompare

		if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidOmegaM() || !con.ValidOmegaL() {
			log.Fatal("Invalid 'OmegaM'/'OmegaL' values.")
		} else if !con.ValidAMax() {
			log.Fatal("Invalid 'AMax' value.")
		} else if !con.ValidSamples() {
			log.Fatal("Invalid 'Samples' value.")
		} else if !con.ValidBackend() {
			log.Fatal("Invalid 'Backend' value.")
		}

		fg.Init(&con.SharedConfig)
		friedmannCompareMain(con)

	case "FreezeOut":
		wrap := io.DefaultFreezeOutWrapper()
		readConfig(wrap, freezeOut)
		con := &wrap.FreezeOut

		if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidXMax() {
			log.Fatal("Invalid 'XMax' value.")
		} else if !con.ValidSamples() {
			log.Fatal("Invalid 'Samples' value.")
		} else if !con.ValidPlateauMin() {
			log.Fatal("'PlateauMin' must be positive and below 'XMax'.")
		} else if !con.ValidBackend() {
			log.Fatal("Invalid 'Backend' value.")
		}

		fg.Init(&con.SharedConfig)
		freezeOutMain(con)

	case "RotationCurve":
		wrap := io.DefaultRotationCurveWrapper()
		readConfig(wrap, rotationCurve)
		con := &wrap.RotationCurve

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidVelScale() || !con.ValidRadScale() {
			log.Fatal("Invalid 'VelScale'/'RadScale' values.")
		} else if !con.ValidBackend() {
			log.Fatal("Invalid 'Backend' value.")
		}

		fg.Init(&con.SharedConfig)
		rotationCurveMain(con)

	case "MassProfile":
		wrap := io.DefaultMassProfileWrapper()
		readConfig(wrap, massProfile)
		con := &wrap.MassProfile

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidVelScale() {
			log.Fatal("Invalid 'VelScale' value.")
		} else if !con.ValidBackend() {
			log.Fatal("Invalid 'Backend' value.")
		}

		fg.Init(&con.SharedConfig)
		massProfileMain(con)

	case "Toomre":
		wrap := io.DefaultToomreWrapper()
		readConfig(wrap, toomre)
		con := &wrap.Toomre

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidBackend() {
			log.Fatal("Invalid 'Backend' value.")
		}

		fg.Init(&con.SharedConfig)
		toomreMain(con)

	case "DiskVideo":
		wrap := io.DefaultDiskVideoWrapper()
		readConfig(wrap, diskVideo)
		con := &wrap.DiskVideo

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidSize() || !con.ValidFPS() {
			log.Fatal("Invalid 'Size'/'FPS' values.")
		} else if !con.ValidLimit() || !con.ValidVLimit() {
			log.Fatal("Invalid 'Limit'/'VLimit' values.")
		}

		fg.Init(&con.SharedConfig)
		diskVideoMain(con)

	case "DiskStructure":
		wrap := io.DefaultDiskStructureWrapper()
		readConfig(wrap, diskStructure)
		con := &wrap.DiskStructure

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidRMax() || !con.ValidBins() {
			log.Fatal("Invalid 'RMax'/'Bins' values.")
		} else if !con.ValidBackend() {
			log.Fatal("Invalid 'Backend' value.")
		}

		fg.Init(&con.SharedConfig)
		diskStructureMain(con)

	case "Brightness":
		wrap := io.DefaultBrightnessWrapper()
		readConfig(wrap, brightness)
		con := &wrap.Brightness

		if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidWindow() {
			log.Fatal("'InnerFrac' and 'OuterFrac' must satisfy " +
				"0 <= InnerFrac < OuterFrac <= 1.")
		} else if !con.ValidBackend() {
			log.Fatal("Invalid 'Backend' value.")
		}

		fg.Init(&con.SharedConfig)
		brightnessMain(con)

	case "ScaleLength":
		wrap := io.DefaultScaleLengthWrapper()
		readConfig(wrap, scaleLength)
		con := &wrap.ScaleLength

		if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if con.WindowSet() && !con.ValidWindow() {
			log.Fatal("'InnerFrac' and 'OuterFrac' must satisfy " +
				"0 <= InnerFrac < OuterFrac <= 1.")
		} else if !con.ValidBackend() {
			log.Fatal("Invalid 'Backend' value.")
		}

		fg.Init(&con.SharedConfig)
		scaleLengthMain(con)

	case "ColorGradient":
		wrap := io.DefaultColorGradientWrapper()
		readConfig(wrap, colorGradient)
		con := &wrap.ColorGradient

		if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidBands() {
			log.Fatal("'Blue' and 'Red' must be two different bands.")
		} else if !con.ValidSmooth() {
			log.Fatal("'Smooth' must be a positive odd sample count.")
		} else if !con.ValidBackend() {
			log.Fatal("Invalid 'Backend' value.")
		}

		fg.Init(&con.SharedConfig)
		colorGradientMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "FriedmannCompare":
			fmt.Println(io.ExampleFriedmannCompareFile)
		case "FreezeOut":
			fmt.Println(io.ExampleFreezeOutFile)
		case "RotationCurve":
			fmt.Println(io.ExampleRotationCurveFile)
		case "MassProfile":
			fmt.Println(io.ExampleMassProfileFile)
		case "Toomre":
			fmt.Println(io.ExampleToomreFile)
		case "DiskVideo":
			fmt.Println(io.ExampleDiskVideoFile)
		case "DiskStructure":
			fmt.Println(io.ExampleDiskStructureFile)
		case "Brightness":
			fmt.Println(io.ExampleBrightnessFile)
		case "ScaleLength":
			fmt.Println(io.ExampleScaleLengthFile)
		case "ColorGradient":
			fmt.Println(io.ExampleColorGradientFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The recognized " +
					"arguments are the names of the mode flags.",
			)
		}
	default:
		panic("Impossible")
	}
}

func readConfig(wrap interface{}, file string) {
	if err := gcfg.ReadFileInto(wrap, file); err != nil {
		log.Fatal(err.Error())
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but galkit only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}
