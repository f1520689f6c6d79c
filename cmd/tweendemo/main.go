// Command tweendemo bounces a colored glyph across a terminal screen using
// a repeating, yoyoing sequence timeline, and separately cycles its hue on
// an independent infinite tween — a small terminal harness for exercising
// the interpolation engine's timing, easing, and accessor plumbing.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/tweenengine/accessor"
	"github.com/lixenwraith/tweenengine/easing"
	"github.com/lixenwraith/tweenengine/tween"
)

var debugFlag = flag.Bool("debug", false, "enable verbose logging to stderr")

const (
	typePosition = iota
	typeHue
)

type sprite struct {
	x, y  float64
	hue   float64
	glyph rune
}

type spriteAccessor struct{}

func (spriteAccessor) GetValues(target any, typeCode int, out []float64) int {
	s := target.(*sprite)
	switch typeCode {
	case typePosition:
		out[0] = s.x
		out[1] = s.y
		return 2
	case typeHue:
		out[0] = s.hue
		return 1
	}
	return 0
}

func (spriteAccessor) SetValues(target any, typeCode int, values []float64) {
	s := target.(*sprite)
	switch typeCode {
	case typePosition:
		s.x, s.y = values[0], values[1]
	case typeHue:
		s.hue = values[0]
	}
}

func setupLogging(debug bool) *log.Logger {
	if !debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "tweendemo: ", log.Ltime|log.Lmicroseconds)
}

func main() {
	flag.Parse()
	logger := setupLogging(*debugFlag)

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\ntweendemo crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	accessor.Register((*sprite)(nil), spriteAccessor{})

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.Clear()

	w, h := screen.Size()
	sp := &sprite{x: 2, y: float64(h / 2), glyph: '@'}

	manager := tween.NewManager()

	stroll := tween.SequenceOf(
		tween.To(sp, typePosition, 1.5).Ease(easing.QuadInOut).Target(float64(w-3), float64(h/2)),
		tween.To(sp, typePosition, 1.5).Ease(easing.BounceOut).Target(2, float64(h/2)),
	).RepeatYoyo(tween.Infinity, 0.2)

	hueCycle := tween.To(sp, typeHue, 3).Ease(easing.Linear).Target(360).Repeat(tween.Infinity, 0)

	manager.Add(stroll)
	manager.Add(hueCycle)
	logger.Printf("running: sprite at (%.1f,%.1f), screen %dx%d", sp.x, sp.y, w, h)

	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			eventCh <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventCh:
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			manager.Update(delta)

			screen.Clear()
			c := colorful.Hsv(sp.hue, 0.85, 1)
			r, g, b := c.RGB255()
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			screen.SetContent(int(sp.x), int(sp.y), sp.glyph, nil, style)
			screen.Show()
		}
	}
}
