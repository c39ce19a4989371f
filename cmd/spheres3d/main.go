package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/lukaszgryglicki/spheres3d/internal/spheres3d"
)

func main() {
	spheres3d.Debug = os.Getenv("DEBUG") != ""
	spheres3d.Progress = os.Getenv("PROGRESS") != ""
	spheres3d.RAW = os.Getenv("RAW") != ""
	spheres3d.AlwaysBVH = os.Getenv("ALWAYS_BVH") != ""
	spheres3d.NeverBVH = os.Getenv("NEVER_BVH") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// no argument renders the built-in demo scene
	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := spheres3d.Run(ctx, cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
