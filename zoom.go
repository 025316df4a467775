package main

import (
	"fmt"
	"sort"
	"strings"
)

// baseHalfSpan is the half width and half height of the window at zoom 1.
const baseHalfSpan = 2.0

// ZoomPlan interpolates the view from the origin at zoom 1 to the target
// centre and zoom across a fixed number of frames.
type ZoomPlan struct {
	TargetZoom float64
	TargetDx   float64
	TargetDy   float64
	Frames     int
}

// Progress returns t in [0, 1] for frame i. The first frame is 0 and the
// last frame is exactly 1.
func (p ZoomPlan) Progress(i int) float64 {
	if p.Frames <= 1 {
		return 0
	}
	return float64(i) / float64(p.Frames-1)
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// ZoomAt returns the zoom factor for frame i.
func (p ZoomPlan) ZoomAt(i int) float64 {
	return lerp(1, p.TargetZoom, p.Progress(i))
}

// CenterAt returns the view centre for frame i.
func (p ZoomPlan) CenterAt(i int) (x, y float64) {
	t := p.Progress(i)
	return lerp(0, p.TargetDx, t), lerp(0, p.TargetDy, t)
}

// WindowAt returns the view window for frame i.
func (p ZoomPlan) WindowAt(i int) ViewWindow {
	cx, cy := p.CenterAt(i)
	half := baseHalfSpan / p.ZoomAt(i)
	return ViewWindow{
		Xmin: cx - half,
		Xmax: cx + half,
		Ymin: cy - half,
		Ymax: cy + half,
	}
}

// Classic regions / landmarks in the Mandelbrot set, usable as zoom targets.
var landmarks = map[string]ViewWindow{
	// Seahorse Valley – dense filaments and repeating "seahorse" curls
	"seahorse": {Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15},
	// Elephant Valley – large bulb with trunk-like tendrils
	"elephant": {Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02},
	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	"spiral": {Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325},
	// Triple Spiral – threefold symmetric spiral structure
	"triple-spiral": {Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980},
	// Valley of the Dragon – deep, highly detailed spiral filaments
	"dragon": {Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850},
	// Minibrot in a Mini-Spiral – self-similar copy inside a spiral arm
	"mini-spiral": {Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220},
}

func landmarkNames() string {
	names := make([]string, 0, len(landmarks))
	for name := range landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// landmarkTarget returns the zoom and centre that frame the named region on
// the last frame.
func landmarkTarget(name string) (zoom, dx, dy float64, err error) {
	r, ok := landmarks[name]
	if !ok {
		return 0, 0, 0, fmt.Errorf("unknown region %q (known: %s)", name, landmarkNames())
	}
	dx, dy = r.Center()
	zoom = 2 * baseHalfSpan / (r.Xmax - r.Xmin)
	return zoom, dx, dy, nil
}
