// Command audiofade plays a looping tone and animates its volume and
// stereo pan live via the interpolation engine, driven by a background
// tickdriver.Ticker instead of a caller-owned loop — a small harness for
// exercising the engine against a streaming audio target.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tweenengine/accessor"
	"github.com/lixenwraith/tweenengine/easing"
	"github.com/lixenwraith/tweenengine/tween"
	"github.com/lixenwraith/tweenengine/tween/tickdriver"
)

var (
	debugFlag = flag.Bool("debug", false, "enable verbose logging to stderr")
	holdFlag  = flag.Duration("hold", 8*time.Second, "how long to play before exiting")
)

const (
	typeVolume = iota
	typePan
)

// fader is the live-mutable control surface for a playing stream: a
// beep/effects Volume/Pan pair the tween writes into while the mixer is
// pulling samples on its own goroutine.
type fader struct {
	vol *effects.Volume
	pan *effects.Pan
}

type faderAccessor struct{}

func (faderAccessor) GetValues(target any, typeCode int, out []float64) int {
	f := target.(*fader)
	switch typeCode {
	case typeVolume:
		out[0] = f.vol.Volume
		return 1
	case typePan:
		out[0] = f.pan.Pan
		return 1
	}
	return 0
}

func (faderAccessor) SetValues(target any, typeCode int, values []float64) {
	f := target.(*fader)
	speaker.Lock()
	switch typeCode {
	case typeVolume:
		f.vol.Volume = values[0]
		f.vol.Silent = values[0] <= -6
	case typePan:
		f.pan.Pan = values[0]
	}
	speaker.Unlock()
}

func setupLogging(debug bool) *log.Logger {
	if !debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "audiofade: ", log.Ltime|log.Lmicroseconds)
}

func main() {
	flag.Parse()
	logger := setupLogging(*debugFlag)

	accessor.Register((*fader)(nil), faderAccessor{})

	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init speaker: %v\n", err)
		os.Exit(1)
	}
	defer speaker.Close()

	tone, err := generators.SineTone(sampleRate, 440)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build tone: %v\n", err)
		os.Exit(1)
	}
	looped := beep.Loop(-1, tone)

	vol := &effects.Volume{Streamer: looped, Base: 2, Volume: -6, Silent: true}
	pan := &effects.Pan{Streamer: vol, Pan: -1}
	f := &fader{vol: vol, pan: pan}

	manager := tween.NewManager()

	// Pushed into a sequence, so each child's own delay is derived from the
	// cumulative duration of what precedes it: fadeOut starts the instant
	// fadeIn ends, with no separate Delay call needed.
	fadeIn := tween.To(f, typeVolume, 1.5).Ease(easing.QuadOut).Target(0)
	fadeOut := tween.To(f, typeVolume, 1.5).Ease(easing.QuadIn).Target(-6)
	manager.Add(tween.SequenceOf(fadeIn, fadeOut).Delay(3))

	panSweep := tween.To(f, typePan, 3).Ease(easing.SineInOut).RepeatYoyo(tween.Infinity, 0).Target(1)
	manager.Add(panSweep)

	speaker.Play(pan)
	logger.Printf("playing: wait 3s, fade in 1.5s, fade out 1.5s, panning -1..1 over 3s")

	driver := tickdriver.New(manager, 16*time.Millisecond)
	driver.Start()
	defer driver.Stop()

	time.Sleep(*holdFlag)
}
