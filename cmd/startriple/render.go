package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/katalvlaran/startriple/render"
	"github.com/katalvlaran/startriple/startriple"
)

// runRender handles `startriple render`.
func runRender(au aurora.Aurora) error {
	points, err := loadSorted(*renderFile)
	if err != nil {
		return err
	}
	res, err := startriple.Solve(points, startriple.DefaultOptions())
	if err != nil {
		return err
	}

	opts := render.DefaultOptions()
	opts.Width, opts.Height = *renderSize, *renderSize
	img, err := render.Draw(points, res, opts)
	if err != nil {
		return err
	}

	out := *renderOut
	if out == "" {
		out = strings.TrimSuffix(*renderFile, filepath.Ext(*renderFile)) + ".png"
	}
	if err = render.SavePNG(out, img); err != nil {
		return err
	}
	fmt.Printf("%s %s (cost %.10g)\n", au.Green("wrote"), au.Bold(out), res.Cost)

	if *renderCat {
		return preview(out, os.Stdout)
	}

	return nil
}

// preview prints the PNG at path inline (iTerm2 escape sequence).
func preview(path string, w io.Writer) error {
	if err := imgcat.CatFile(path, w); err != nil {
		return fmt.Errorf("imgcat: %w", err)
	}

	return nil
}
