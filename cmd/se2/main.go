package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oliverbestmann/se2/gm"
	"github.com/oliverbestmann/se2/msgconv"
	"github.com/pkg/profile"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the exit code. Deferred
// cleanup like stopping the profiler has happened once it returns.
func execute(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("se2", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { usage(flags) }

	asJSON := flags.Bool("json", false, "print the result as geometry_msgs/Pose2D json")
	profileMode := flags.String("profile", "", "write a cpu or mem profile")
	profilePath := flags.String("profile-path", ".", "directory to write the profile to")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	options := []func(*profile.Profile){profile.ProfilePath(*profilePath), profile.Quiet}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(append(options, profile.CPUProfile)...).Stop()
	case "mem":
		defer profile.Start(append(options, profile.MemProfile)...).Stop()
	default:
		slog.Error("Unknown profile mode", slog.String("mode", *profileMode))
		return 2
	}

	result, err := run(flags.Args())
	if err != nil {
		slog.Error("Failed to evaluate", slog.Any("err", err))
		usage(flags)
		return 1
	}

	if err := printResult(stdout, result, *asJSON); err != nil {
		slog.Error("Failed to write result", slog.Any("err", err))
		return 1
	}

	return 0
}

func usage(flags *flag.FlagSet) {
	out := flags.Output()
	_, _ = fmt.Fprintln(out, "Usage: se2 [flags] <op> args...")
	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, "Transforms are written as x,y,angle with the angle in radians.")
	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, "  compose A B [C...]   A * B * C ...")
	_, _ = fmt.Fprintln(out, "  inverse A            inverse of A")
	_, _ = fmt.Fprintln(out, "  relative A B         B expressed in the frame of A")
	_, _ = fmt.Fprintln(out, "  lerp A B ratio       interpolate between A and B")
	_, _ = fmt.Fprintln(out, "")
	flags.PrintDefaults()
}

func printResult(w io.Writer, result gm.Transform, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(msgconv.TransformToPose2D(result))
	}

	_, err := fmt.Fprintln(w, result)
	return err
}
