// This defines a basic executable for generating a maze, printing it as text,
// and saving it as an image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yalue/image_utils"
	maze "github.com/yalue/mazegrid"
)

// Used for all status output.
var log = logrus.New()

func getArrowForDirection(dir maze.Direction,
	arrowColor color.Color) image.Image {
	switch dir {
	case maze.North:
		return image_utils.UpArrow(arrowColor)
	case maze.West:
		return image_utils.LeftArrow(arrowColor)
	case maze.South:
		return image_utils.DownArrow(arrowColor)
	}
	return image_utils.RightArrow(arrowColor)
}

// Returns a square arrow image, length pixels across, pointing in the given
// direction.
func getOutlinedArrow(dir maze.Direction, arrowColor color.Color,
	length int) image.Image {
	outerArrow := image_utils.ResizeImage(getArrowForDirection(dir,
		arrowColor), length, length)
	innerArrow := image_utils.ResizeImage(getArrowForDirection(dir,
		color.White), length/2, length/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(length/4, length/4))
	return image_utils.ToRGBA(toReturn)
}

// Returns the direction of the step from a to b, which must be neighbors.
func stepDirection(g *maze.Grid, a, b maze.Cell) maze.Direction {
	for _, d := range maze.Directions {
		if n, ok := g.CellTo(a, d); ok && (n == b) {
			return d
		}
	}
	panic("Cells in a path aren't neighbors")
}

// Rasterizes the maze, adding arrows to the first and last cells of the path
// pointing along the path. The path must contain at least two cells.
func drawMazeDecorations(g *maze.Grid, r maze.ImageRenderer,
	path []maze.Cell) (*image.RGBA, error) {
	decorated := image_utils.NewCompositeImage()
	mazePic := image_utils.ToRGBA(r.Render(g, path))
	e := decorated.AddImage(mazePic, image.Pt(0, 0))
	if e != nil {
		return nil, fmt.Errorf("Error setting base maze image: %w", e)
	}
	blueColor := color.RGBA{100, 120, 255, 255}
	greenColor := color.RGBA{40, 180, 70, 255}
	length := r.CellSize - 2
	half := image.Pt(length/2, length/2)

	start, end := path[0], path[len(path)-1]
	startDir := stepDirection(g, start, path[1])
	startArrow := getOutlinedArrow(startDir, greenColor, length)
	e = decorated.AddImage(startArrow, r.CellCenter(g, start).Sub(half))
	if e != nil {
		return nil, fmt.Errorf("Error adding start arrow: %w", e)
	}

	endDir := stepDirection(g, path[len(path)-2], end)
	endArrow := getOutlinedArrow(endDir, blueColor, length)
	e = decorated.AddImage(endArrow, r.CellCenter(g, end).Sub(half))
	if e != nil {
		return nil, fmt.Errorf("Error adding end arrow: %w", e)
	}

	return image_utils.ToRGBA(decorated), nil
}

// Returns the maze as text, optionally labeling each cell with its distance
// from the start of the path.
func renderText(g *maze.Grid, path []maze.Cell, showDistances bool) string {
	if !showDistances || (len(path) == 0) {
		return maze.DefaultTextRenderer().Render(g)
	}
	dists := g.Distances(path[0])
	r := maze.DefaultTextRenderer()
	r.AutoWidth = true
	r.Margin = 1
	return r.RenderWith(g, func(c maze.Cell) (string, bool) {
		d, ok := dists.To(c)
		if !ok {
			return "", false
		}
		return strconv.Itoa(d), true
	})
}

func writePNG(pic image.Image, filename string) error {
	f, e := os.Create(filename)
	if e != nil {
		return fmt.Errorf("Error creating output file %s: %w", filename, e)
	}
	defer f.Close()
	e = png.Encode(f, pic)
	if e != nil {
		return fmt.Errorf("Error writing image to %s: %w", filename, e)
	}
	return nil
}

func run() int {
	d := loadDefaults()
	var rows, cols, cellSize int
	var randomSeed int64
	var braid float64
	var showSolution, showText, showDistances, verbose bool
	var algorithmName, outFilename, wallColor, pathColor string
	flag.IntVar(&rows, "rows", d.Rows,
		"The height of the maze, in grid cells.")
	flag.IntVar(&cols, "cols", d.Cols,
		"The width of the maze, in grid cells.")
	flag.StringVar(&algorithmName, "algorithm", d.Algorithm,
		"The generation algorithm. One of: "+
			strings.Join(maze.AlgorithmNames(), ", ")+".")
	flag.Int64Var(&randomSeed, "random_seed", -1,
		"If positive, specifies the random seed to use.")
	flag.Float64Var(&braid, "braid", 0,
		"The probability, 0 to 1, of removing each dead end.")
	flag.BoolVar(&showSolution, "show_solution", false,
		"If set, highlights the longest path through the maze.")
	flag.BoolVar(&showText, "text", false,
		"If set, prints the maze to stdout as text.")
	flag.BoolVar(&showDistances, "distances", false,
		"If set, text output includes each cell's distance from the start "+
			"of the longest path.")
	flag.IntVar(&cellSize, "cell_size", d.CellSize,
		"The width of each cell in the image, in pixels. At least 5.")
	flag.StringVar(&wallColor, "wall_color", "#000000",
		"The wall color, as #rrggbb.")
	flag.StringVar(&pathColor, "path_color", "#e61414",
		"The solution path color, as #rrggbb.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png file to which the maze will be saved.")
	flag.BoolVar(&verbose, "verbose", false, "Enables debug logging.")
	flag.Parse()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if (rows < 2) || (cols < 2) || (cellSize < 5) || (braid < 0) ||
		(braid > 1) || ((outFilename == "") && !showText) {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}
	generate, e := maze.LookupAlgorithm(algorithmName)
	if e != nil {
		log.WithError(e).Error("Bad -algorithm")
		return 1
	}
	r := maze.DefaultImageRenderer()
	r.CellSize = cellSize
	wall, e := maze.ParseColor(wallColor)
	if e != nil {
		log.WithError(e).Error("Bad -wall_color")
		return 1
	}
	highlight, e := maze.ParseColor(pathColor)
	if e != nil {
		log.WithError(e).Error("Bad -path_color")
		return 1
	}
	r.Wall = wall
	r.Highlight = highlight
	log.WithFields(logrus.Fields{
		"cell_size":  r.CellSize,
		"wall_color": maze.FormatColor(wall),
		"path_color": maze.FormatColor(highlight),
	}).Debug("Image settings")

	if randomSeed <= 0 {
		randomSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(randomSeed))
	g := maze.NewGrid(rows, cols)
	startTime := time.Now()
	generate(g, rng)
	generationTime := time.Since(startTime)
	if braid > 0 {
		log.WithField("probability", braid).Debug("Braiding maze")
		maze.Braid(g, rng, braid)
	}
	path := g.LongestPath()
	log.WithFields(logrus.Fields{
		"algorithm":      algorithmName,
		"seed":           randomSeed,
		"size":           fmt.Sprintf("%dx%d", rows, cols),
		"dead_ends":      len(g.DeadEnds()),
		"longest_path":   len(path) - 1,
		"generation_sec": fmt.Sprintf("%.03f", generationTime.Seconds()),
	}).Info("Generated maze")

	if showText {
		fmt.Print(renderText(g, path, showDistances))
	}
	if outFilename == "" {
		return 0
	}
	var finalPic image.Image
	if showSolution && (len(path) >= 2) {
		finalPic, e = drawMazeDecorations(g, r, path)
		if e != nil {
			log.WithError(e).Error("Error adding maze decorations")
			return 1
		}
	} else {
		finalPic = r.Render(g, nil)
	}
	e = writePNG(finalPic, outFilename)
	if e != nil {
		log.WithError(e).Error("Failed saving maze")
		return 1
	}
	log.WithField("file", outFilename).Info("Image written OK")
	return 0
}

func main() {
	os.Exit(run())
}
