package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/xide/triangulate"
	"github.com/xide/triangulate/internal/render"
	"github.com/xide/triangulate/internal/svgpoly"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

type config struct {
	mode     string
	cycle    bool
	legalize bool
	validate bool
	svgIn    string
	pngOut   string
	svgOut   string
	imgcat   bool
	scale    float64
	labels   bool
	dump     bool
	verbose  bool
}

// Demo of triangulation. Input on stdin should be newline separated points in
// the form "x y", with each polygon separated by an extra newline. Polygons
// may also be read from the <polygon> elements of an SVG file with --svg.
//
// Each polygon is triangulated on its own. The output has one "a b c" line
// per triangle, indexing into the input points in the order they were read.
func main() {
	var cfg config
	app := kingpin.New("triangulate", "Triangulate polygons and point sets.")
	app.Flag("mode", "Triangulation mode.").Short('m').Default("earclip").EnumVar(&cfg.mode, "earclip", "delaunay", "radial")
	app.Flag("cycle", "Close the fan in radial mode.").BoolVar(&cfg.cycle)
	app.Flag("legalize", "Flip ear clipping output to Delaunay.").Default("true").BoolVar(&cfg.legalize)
	app.Flag("validate", "Reject self-intersecting polygons before ear clipping.").BoolVar(&cfg.validate)
	app.Flag("svg", "Read polygons from an SVG file instead of stdin.").ExistingFileVar(&cfg.svgIn)
	app.Flag("png", "Write a PNG preview.").StringVar(&cfg.pngOut)
	app.Flag("svg-out", "Write an SVG preview.").StringVar(&cfg.svgOut)
	app.Flag("imgcat", "Print a preview to the terminal (iTerm only).").BoolVar(&cfg.imgcat)
	app.Flag("scale", "Preview pixels per unit.").Default("50").Float64Var(&cfg.scale)
	app.Flag("labels", "Label vertices in previews.").Default("true").BoolVar(&cfg.labels)
	app.Flag("dump", "Dump the triangles to stderr.").BoolVar(&cfg.dump)
	app.Flag("verbose", "Log debug events.").Short('v').BoolVar(&cfg.verbose)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(execute(cfg, os.Stdin, os.Stdout, logger))
}

// Run and return the exit code, flushing the logger first.
func execute(cfg config, in io.Reader, out io.Writer, logger *zap.Logger) int {
	defer logger.Sync()
	if err := run(cfg, in, out, logger); err != nil {
		logger.Error("triangulation failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg config, in io.Reader, out io.Writer, logger *zap.Logger) error {
	mode, err := triangulate.ParseMode(cfg.mode)
	if err != nil {
		return err
	}

	var polygons [][]triangulate.Point
	if cfg.svgIn != "" {
		polygons, err = readSVG(cfg.svgIn)
	} else {
		polygons, err = readPolygons(in)
	}
	if err != nil {
		return err
	}
	logger.Info("read polygons", zap.Int("count", len(polygons)))

	opts := []triangulate.Option{
		triangulate.WithCycle(cfg.cycle),
		triangulate.WithLegalization(cfg.legalize),
		triangulate.WithSimplicityCheck(cfg.validate),
		triangulate.WithLogger(logger),
	}
	points, indices, err := triangulateAll(mode, polygons, opts...)
	if err != nil {
		return err
	}
	logger.Info("triangulated", zap.Stringer("mode", mode), zap.Int("triangles", len(indices)/3))

	if err := writeTriangles(out, indices); err != nil {
		return err
	}
	if cfg.dump {
		pretty.Fprintf(os.Stderr, "%# v\n", groupTriangles(indices))
	}
	return preview(cfg, points, indices)
}

func readSVG(path string) ([][]triangulate.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return svgpoly.Parse(file)
}

func readPolygons(in io.Reader) ([][]triangulate.Point, error) {
	var polygons [][]triangulate.Point
	// Scan lines
	scanner := bufio.NewScanner(in)
	var points []triangulate.Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (triangulate.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return triangulate.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return triangulate.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return triangulate.Point{}, errors.Wrap(err, "y")
	}
	return triangulate.Point{X: x, Y: y}, nil
}

// Triangulate every polygon, returning the concatenated points and the indices
// into them.
func triangulateAll(mode triangulate.Mode, polygons [][]triangulate.Point, opts ...triangulate.Option) ([]triangulate.Point, []int, error) {
	var points []triangulate.Point
	var indices []int
	for i, polygon := range polygons {
		polygonIndices, err := triangulate.Triangulate(mode, polygon, opts...)
		if err != nil {
			return nil, nil, errors.WithMessagef(err, "polygon %d", i)
		}
		offset := len(points)
		for _, index := range polygonIndices {
			indices = append(indices, index+offset)
		}
		points = append(points, polygon...)
	}
	return points, indices, nil
}

func writeTriangles(out io.Writer, indices []int) error {
	w := bufio.NewWriter(out)
	for i := 0; i+2 < len(indices); i += 3 {
		fmt.Fprintf(w, "%d %d %d\n", indices[i], indices[i+1], indices[i+2])
	}
	return w.Flush()
}

func groupTriangles(indices []int) [][3]int {
	result := make([][3]int, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		result = append(result, [3]int{indices[i], indices[i+1], indices[i+2]})
	}
	return result
}

func preview(cfg config, points []triangulate.Point, indices []int) error {
	style := render.DefaultStyle()
	style.Scale = cfg.scale
	style.Labels = cfg.labels

	if cfg.pngOut != "" {
		if err := writeFile(cfg.pngOut, func(w io.Writer) error {
			return render.PNG(w, points, indices, style)
		}); err != nil {
			return err
		}
	}
	if cfg.svgOut != "" {
		if err := writeFile(cfg.svgOut, func(w io.Writer) error {
			return render.SVG(w, points, indices, style)
		}); err != nil {
			return err
		}
	}
	if cfg.imgcat {
		return render.Terminal(os.Stdout, points, indices, style)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return errors.Wrapf(err, "writing %s", path)
}
