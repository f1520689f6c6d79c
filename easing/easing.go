// Package easing provides pure interpolation curves used by tween.Tween to
// shape the progress of an interpolation over time.
//
// Every equation maps t in [0,1] to a curved progress value. All families
// satisfy f(0)=0 and f(1)=1; the overshoot families (Back, Elastic) may
// leave [0,1] in between.
package easing

import "math"

// Equation is a pure progress-shaping function.
type Equation func(t float64) float64

const back = 1.70158

// Lerp linearly interpolates between a and b at t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Linear leaves progress unchanged.
func Linear(t float64) float64 { return t }

func QuadIn(t float64) float64  { return t * t }
func QuadOut(t float64) float64 { return t * (2 - t) }
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	t = 2*t - 1
	return -0.5 * (t*(t-2) - 1)
}

func CubicIn(t float64) float64  { return t * t * t }
func CubicOut(t float64) float64 { t--; return t*t*t + 1 }
func CubicInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

func QuartIn(t float64) float64  { return t * t * t * t }
func QuartOut(t float64) float64 { t--; return 1 - t*t*t*t }
func QuartInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t
	}
	t -= 2
	return -0.5 * (t*t*t*t - 2)
}

func QuintIn(t float64) float64  { return t * t * t * t * t }
func QuintOut(t float64) float64 { t--; return t*t*t*t*t + 1 }
func QuintInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t*t*t + 2)
}

func SineIn(t float64) float64  { return 1 - math.Cos(t*math.Pi/2) }
func SineOut(t float64) float64 { return math.Sin(t * math.Pi / 2) }
func SineInOut(t float64) float64 {
	return -0.5 * (math.Cos(math.Pi*t) - 1)
}

func ExpoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}
func ExpoOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}
func ExpoInOut(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	t *= 2
	if t < 1 {
		return 0.5 * math.Pow(2, 10*(t-1))
	}
	return 0.5 * (2 - math.Pow(2, -10*(t-1)))
}

func CircIn(t float64) float64  { return 1 - math.Sqrt(1-t*t) }
func CircOut(t float64) float64 { t--; return math.Sqrt(1 - t*t) }
func CircInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return -0.5 * (math.Sqrt(1-t*t) - 1)
	}
	t -= 2
	return 0.5 * (math.Sqrt(1-t*t) + 1)
}

func BackIn(t float64) float64 { return t * t * ((back+1)*t - back) }
func BackOut(t float64) float64 {
	t--
	return t*t*((back+1)*t+back) + 1
}
func BackInOut(t float64) float64 {
	s := back * 1.525
	t *= 2
	if t < 1 {
		return 0.5 * (t * t * ((s+1)*t - s))
	}
	t -= 2
	return 0.5 * (t*t*((s+1)*t+s) + 2)
}

func BounceOut(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}
func BounceIn(t float64) float64 { return 1 - BounceOut(1-t) }
func BounceInOut(t float64) float64 {
	if t < 0.5 {
		return BounceIn(t*2) * 0.5
	}
	return BounceOut(t*2-1)*0.5 + 0.5
}

func ElasticIn(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	p := 0.3
	s := p / 4
	t--
	return -math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p)
}
func ElasticOut(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	p := 0.3
	s := p / 4
	return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p) + 1
}
func ElasticInOut(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	p := 0.45
	s := p / 4
	t = t*2 - 1
	if t < 0 {
		return -0.5 * math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p)
	}
	return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p)*0.5 + 1
}
