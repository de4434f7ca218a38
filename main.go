package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-vcm/pkg/core"
	"github.com/df07/go-vcm/pkg/integrator"
	"github.com/df07/go-vcm/pkg/log"
	"github.com/df07/go-vcm/pkg/renderer"
	"github.com/df07/go-vcm/pkg/scene"
)

var logger = log.New("go-vcm")

// renderOptions are the resolved command line settings of a render
type renderOptions struct {
	SceneIndex    int
	Algorithm     string
	Iterations    int
	Seconds       float64
	Threads       int
	Seed          uint64
	MinPathLength int
	MaxPathLength int
	Width         int
	Height        int
	Out           string
	Gamma         float64
}

func main() {
	app := cli.NewApp()
	app.Name = "go-vcm"
	app.Usage = "render Cornell box scenes with Monte Carlo light transport"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a PNG file",
			Description: `
Render one of the preset Cornell box scenes. Each worker runs its own renderer
with seed base+i; the normalized framebuffers of all workers that completed
an iteration are averaged into the final image.

Exactly one of --iterations and --time is used; --time wins when set.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "scene, s",
					Value: 0,
					Usage: "preset scene index (see list)",
				},
				cli.StringFlag{
					Name:  "algorithm, a",
					Value: integrator.EyeLight.Acronym(),
					Usage: "rendering algorithm acronym (see list)",
				},
				cli.IntFlag{
					Name:  "iterations, i",
					Value: 1,
					Usage: "number of iterations",
				},
				cli.Float64Flag{
					Name:  "time, t",
					Usage: "render time in seconds, overrides --iterations",
				},
				cli.IntFlag{
					Name:  "threads",
					Usage: "number of worker goroutines (0 = number of CPUs)",
				},
				cli.Uint64Flag{
					Name:  "seed",
					Value: 1234,
					Usage: "base random seed; worker i uses seed+i",
				},
				cli.IntFlag{
					Name:  "min-path-length",
					Value: 0,
					Usage: "minimum path length",
				},
				cli.IntFlag{
					Name:  "max-path-length",
					Value: 10,
					Usage: "maximum path length (0 = unbounded)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Value: 2.2,
					Usage: "gamma applied when writing the image",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output image, defaults to <scene>_<algorithm>_<limit>.png",
				},
			},
			Action: renderAction,
		},
		{
			Name:   "list",
			Usage:  "list preset scenes and algorithms",
			Action: listAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	verbosity := 0
	if ctx.GlobalBool("v") {
		verbosity = 1
	}
	if ctx.GlobalBool("vv") {
		verbosity = 2
	}
	log.SetLevel(log.LevelFromVerbosity(verbosity))
}

func renderAction(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderOptions{
		SceneIndex:    ctx.Int("scene"),
		Algorithm:     ctx.String("algorithm"),
		Iterations:    ctx.Int("iterations"),
		Seconds:       ctx.Float64("time"),
		Threads:       ctx.Int("threads"),
		Seed:          ctx.Uint64("seed"),
		MinPathLength: ctx.Int("min-path-length"),
		MaxPathLength: ctx.Int("max-path-length"),
		Width:         ctx.Int("width"),
		Height:        ctx.Int("height"),
		Out:           ctx.String("out"),
		Gamma:         ctx.Float64("gamma"),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := render(runCtx, opts)
	if err != nil {
		return err
	}

	logger.Noticef("worker statistics\n%s", workerStatsTable(result))
	return nil
}

func listAction(ctx *cli.Context) error {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Acronym", "Description"})
	for i, mask := range scene.Presets {
		name, acronym := scene.CornellName(mask)
		table.Append([]string{fmt.Sprintf("%d", i), acronym, name})
	}
	table.Render()

	table = tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Name"})
	for _, a := range integrator.Algorithms() {
		table.Append([]string{a.Acronym(), a.Name()})
	}
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

// render builds the scene, runs the worker pool and writes the image
func render(ctx context.Context, opts renderOptions) (*renderer.RenderResult, error) {
	mask, err := scene.PresetByIndex(opts.SceneIndex)
	if err != nil {
		return nil, err
	}
	alg, err := integrator.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return nil, err
	}
	factory, err := integrator.NewFactory(alg)
	if err != nil {
		return nil, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid resolution %dx%d", opts.Width, opts.Height)
	}

	config := renderer.Config{
		NumWorkers:    opts.Threads,
		BaseSeed:      opts.Seed,
		MinPathLength: opts.MinPathLength,
		MaxPathLength: opts.MaxPathLength,
		Limit:         runLimit(opts.Iterations, opts.Seconds),
	}

	sc := scene.NewCornellBox(core.NewVec2(float64(opts.Width), float64(opts.Height)), mask)
	pool, err := renderer.NewWorkerPool(sc, factory, config, nil)
	if err != nil {
		return nil, err
	}

	logger.Noticef("scene:   %s", sc.Name)
	logger.Noticef("target:  %s", config.Limit)
	logger.Noticef("running: %s with %d workers", alg.Name(), pool.GetNumWorkers())

	result, err := pool.Render(ctx)
	if err != nil {
		return nil, err
	}
	logger.Noticef("done in %.2f s (%d iterations, %.1f it/s)", result.Elapsed.Seconds(), result.Iterations, result.IterationsPerSecond())

	out := opts.Out
	if out == "" {
		out = defaultOutputName(sc.Acronym, alg, config.Limit)
	}
	if err := savePNG(out, result.Framebuffer, opts.Gamma); err != nil {
		return nil, err
	}
	logger.Noticef("image saved as %s", out)

	return result, nil
}

// runLimit prefers a time budget when one is given
func runLimit(iterations int, seconds float64) renderer.RunLimit {
	if seconds > 0 {
		return renderer.RunLimit{Duration: time.Duration(seconds * float64(time.Second))}
	}
	return renderer.RunLimit{Iterations: iterations}
}

func defaultOutputName(sceneAcronym string, alg integrator.Algorithm, limit renderer.RunLimit) string {
	tag := fmt.Sprintf("%di", limit.Iterations)
	if limit.IsTimed() {
		tag = strconv.FormatFloat(limit.Duration.Seconds(), 'f', -1, 64) + "s"
	}
	return fmt.Sprintf("%s_%s_%s.png", sceneAcronym, alg.Acronym(), tag)
}

func savePNG(path string, fb *renderer.Framebuffer, gamma float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage(gamma)); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return file.Close()
}

// workerStatsTable renders per-worker statistics the way frame stats are shown
func workerStatsTable(result *renderer.RenderResult) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Seed", "Iterations", "Used", "Render time"})
	for _, stat := range result.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Seed),
			fmt.Sprintf("%d", stat.Iterations),
			fmt.Sprintf("%t", stat.Used),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d", result.Iterations), fmt.Sprintf("%d used", result.UsedWorkers), result.Elapsed.String()})
	table.Render()

	return buf.String()
}
