package main

import (
	"encoding/json"
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/swdee/go-posegt"
	"github.com/swdee/go-posegt/render"
	"gocv.io/x/gocv"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	modelsFile := flag.String("m", "../data/models_info.json", "BOP models info JSON file with object bounding box extents")
	annFile := flag.String("a", "../data/annotation.json", "JSON file containing a list of object instance annotations")
	imgFile := flag.String("i", "../data/scene.jpg", "Image file the annotations belong to")
	saveFile := flag.String("o", "../data/scene-gt-out.jpg", "The output JPG file with projected box and belief map overlay")
	beliefFile := flag.String("b", "", "Optional PNG file to dump the centroid belief map channel to")

	flag.Parse()

	// load object bounding box models
	models, err := posegt.LoadObjectModels(*modelsFile)

	if err != nil {
		log.Fatal("Error loading object models: ", err)
	}

	// load annotations
	annData, err := os.ReadFile(*annFile)

	if err != nil {
		log.Fatal("Error reading annotation file: ", err)
	}

	var anns []posegt.Annotation

	if err := json.Unmarshal(annData, &anns); err != nil {
		log.Fatal("Error parsing annotation file: ", err)
	}

	if len(anns) == 0 {
		log.Fatal("Annotation file contains no annotations")
	}

	// load image
	img := gocv.IMRead(*imgFile, gocv.IMReadColor)

	if img.Empty() {
		log.Fatal("Error reading image from: ", *imgFile)
	}

	defer img.Close()

	// generate the ground truth maps for the first annotation
	gen := posegt.NewGenerator(models, posegt.LineMODParams())

	gt, projected, err := gen.Generate(img.Rows(), img.Cols(), anns[0])

	if err != nil {
		log.Fatal("Error generating ground truth: ", err)
	}

	log.Printf("Generated %d channel tensor at %dx%d for category %d\n",
		posegt.NumChannels, gt.Width, gt.Height, anns[0].CategoryID)

	// overlay belief maps and draw the projected bounding box
	err = render.BeliefOverlay(&img, gt, 0.5)

	if err != nil {
		log.Fatal("Error rendering belief overlay: ", err)
	}

	render.ProjectedBox(&img, projected, render.DefaultFont(), 2)

	if ok := gocv.IMWrite(*saveFile, img); !ok {
		log.Fatal("Failed to save the image to: ", *saveFile)
	}

	log.Println("Saved visualization to", *saveFile)

	// optionally dump the centroid belief channel
	if *beliefFile != "" {
		f, err := os.Create(*beliefFile)

		if err != nil {
			log.Fatal("Error creating belief map file: ", err)
		}

		defer f.Close()

		beliefImg := render.BeliefImage(gt, posegt.NumCorners, 8)

		if err := png.Encode(f, beliefImg); err != nil {
			log.Fatal("Error encoding belief map PNG: ", err)
		}

		log.Println("Saved centroid belief map to", *beliefFile)
	}
}
