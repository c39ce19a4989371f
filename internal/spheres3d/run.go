package spheres3d

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Run renders the scene described by cfgPath (the built-in demo when empty) and saves it.
func Run(ctx context.Context, cfgPath string) error {
	cfg := DefaultConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = loadConfig(cfgPath); err != nil {
			return err
		}
	}

	// fail before rendering, not at save time
	if err := checkGamma(cfg.Gamma); err != nil {
		return err
	}
	scene, err := cfg.BuildScene()
	if err != nil {
		return err
	}
	opts, err := cfg.TracerOptions()
	if err != nil {
		return err
	}
	if AlwaysBVH {
		opts.BVH = BVHAlways
	}
	if NeverBVH {
		opts.BVH = BVHNever
	}
	tracer, err := NewTracer(scene, opts)
	if err != nil {
		return err
	}
	canvas, err := NewCanvas(cfg.CanvasWidth, cfg.CanvasHeight)
	if err != nil {
		return err
	}

	coverage := estimateCoverage(tracer, cfg.CanvasWidth, cfg.CanvasHeight, ProbeRays)
	DebugLog("Estimated sphere coverage: %.2f%%", coverage*100)
	if coverage == 0 && len(scene.Spheres) > 0 {
		fmt.Printf("[WARN] no sphere visible in %d probe rays, check camera and viewport\n", ProbeRays)
	}
	if Debug {
		DumpAABBBVH(tracer)
	}

	start := time.Now()
	if err := tracer.Render(ctx, canvas); err != nil {
		return err
	}
	DebugLog("Rendered %dx%d with %d workers in %s", cfg.CanvasWidth, cfg.CanvasHeight, tracer.Options().Workers, time.Since(start))

	if Debug {
		raysStats()
	}

	if err := canvas.SaveImage(cfg.Output, cfg.Gamma); err != nil {
		return err
	}
	DebugLog("Saved image: %s", cfg.Output)
	if RAW {
		raw := strings.TrimSuffix(cfg.Output, filepath.Ext(cfg.Output)) + ".raw"
		if err := canvas.SaveRawRGB64(raw); err != nil {
			return err
		}
		DebugLog("Saved raw canvas: %s", raw)
	}
	return nil
}
