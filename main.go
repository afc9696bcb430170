package main

import "github.com/joushou/gocanon/canon"
import "github.com/joushou/gocanon/export"
import "github.com/joushou/gocanon/script"
import "github.com/joushou/gocanon/streaming"
import "github.com/joushou/gocanon/vector"
import "github.com/cheggaaa/pb"

import "flag"
import "fmt"
import "os"
import "time"

var (
	device       = flag.String("device", "", "Serial device for the motion controller")
	inputFile    = flag.String("input", "", "Canonical-call script to process")
	outputFile   = flag.String("output", "", "Location to dump the command stream")
	dumpStdout   = flag.Bool("stdout", false, "Output to stdout")
	precision    = flag.Int("precision", 4, "Precision to use for rendered commands")
	axisMask     = flag.Int("axismask", 0x1FF, "Bitmask of installed axes (X=1, Y=2, ...)")
	maxVel       = flag.Float64("maxvel", 100, "Per-axis velocity limit")
	maxAcc       = flag.Float64("maxacc", 1000, "Per-axis acceleration limit")
	maxJerk      = flag.Float64("maxjerk", 10000, "Per-axis jerk limit")
	lengthFactor = flag.Float64("lengthfactor", 1, "External length units per millimeter")
	angleFactor  = flag.Float64("anglefactor", 1, "External angle units per degree")
	digitalIn    = flag.Int("digitalin", 4, "Number of digital inputs")
	analogIn     = flag.Int("analogin", 4, "Number of analog inputs")
)

func main() {
	// Parse arguments
	flag.Parse()
	if len(flag.Args()) > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: No file provided\n")
		flag.Usage()
		os.Exit(1)
	}

	if *outputFile == "" && *device == "" && !*dumpStdout {
		fmt.Fprintf(os.Stderr, "Error: No output location provided\n")
		flag.Usage()
		os.Exit(1)
	}

	fhandle, err := os.ReadFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Could not open file: %s\n", err)
		os.Exit(2)
	}

	// Parse
	document, err := script.Parse(string(fhandle))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Could not parse script: %s\n", err)
		os.Exit(3)
	}

	// Run through the compiler
	status := &canon.BasicStatus{
		AxisBits:     *axisMask,
		LengthFactor: *lengthFactor,
		AngleFactor:  *angleFactor,
		Digital:      make([]bool, *digitalIn),
		Analog:       make([]float64, *analogIn),
	}
	for n := 0; n < vector.AxisCount; n++ {
		status.Vel[n] = *maxVel
		status.Acc[n] = *maxAcc
		status.Jerk[n] = *maxJerk
	}

	stream := &canon.Stream{}
	m := canon.New(status, stream)

	if err := script.Run(document, m); err != nil {
		fmt.Fprintf(os.Stderr, "Compiler failed: %s\n", err)
		os.Exit(3)
	}

	// Render the command stream
	g := &export.StringGenerator{Precision: *precision}
	g.Init()
	export.HandleAllCommands(g, stream.Commands)

	if *dumpStdout {
		fmt.Print(g.Retrieve())
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(g.Retrieve()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Could not write to file: %s\n", err)
			os.Exit(2)
		}
	}

	if *device != "" {
		startTime := time.Now()
		var s streaming.SerialStreamer
		if err := s.Connect(*device); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Unable to connect to device: %s\n", err)
			os.Exit(2)
		}

		pBar := pb.StartNew(len(g.Lines))
		pBar.Format("[=> ]")

		progress := make(chan int)
		sigchan := make(chan string, 1)
		registerSignals(sigchan)

		go func() {
			paused := false
			for sig := range sigchan {
				switch sig {
				case "interrupt":
					fmt.Fprintf(os.Stderr, "\nStopping...\n")
					s.Stop()
					os.Exit(7)
				case "stop":
					if paused {
						s.Resume()
					} else {
						s.Pause()
					}
					paused = !paused
				}
			}
		}()

		go func() {
			err := s.Send(g.Lines, progress)
			if err != nil {
				fmt.Fprintf(os.Stderr, "\nSend failed: %s\n", err)
				s.Stop()
				os.Exit(2)
			}
		}()
		for range progress {
			pBar.Increment()
		}
		pBar.Finish()
		fmt.Fprintf(os.Stderr, "%s\n", time.Since(startTime).String())
	}
}
