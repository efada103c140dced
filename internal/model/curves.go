package model

import "math"

// Performance curves. Coefficient numbering follows the engine's convention:
// biquadratic is c1 + c2*x + c3*x^2 + c4*y + c5*y^2 + c6*x*y. Evaluate clamps
// inputs to the curve limits before computing.

func clamp(v, lo, hi float64) float64 {
	if lo != 0 || hi != 0 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
	}
	return v
}

type CurveLinear struct {
	Object
	C1   float64 `json:"c1"`
	C2   float64 `json:"c2"`
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
}

func NewCurveLinear(m *Model, name string) *CurveLinear {
	c := &CurveLinear{Object: m.newObject("Curve:Linear", name)}
	m.add(c)
	return c
}

func (c *CurveLinear) Evaluate(x float64) float64 {
	x = clamp(x, c.MinX, c.MaxX)
	return c.C1 + c.C2*x
}

type CurveQuadratic struct {
	Object
	C1   float64 `json:"c1"`
	C2   float64 `json:"c2"`
	C3   float64 `json:"c3"`
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
}

func NewCurveQuadratic(m *Model, name string) *CurveQuadratic {
	c := &CurveQuadratic{Object: m.newObject("Curve:Quadratic", name)}
	m.add(c)
	return c
}

func (c *CurveQuadratic) Evaluate(x float64) float64 {
	x = clamp(x, c.MinX, c.MaxX)
	return c.C1 + c.C2*x + c.C3*x*x
}

type CurveCubic struct {
	Object
	C1   float64 `json:"c1"`
	C2   float64 `json:"c2"`
	C3   float64 `json:"c3"`
	C4   float64 `json:"c4"`
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
}

func NewCurveCubic(m *Model, name string) *CurveCubic {
	c := &CurveCubic{Object: m.newObject("Curve:Cubic", name)}
	m.add(c)
	return c
}

func (c *CurveCubic) Evaluate(x float64) float64 {
	x = clamp(x, c.MinX, c.MaxX)
	return c.C1 + c.C2*x + c.C3*x*x + c.C4*x*x*x
}

type CurveExponent struct {
	Object
	C1   float64 `json:"c1"`
	C2   float64 `json:"c2"`
	C3   float64 `json:"c3"`
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
}

func NewCurveExponent(m *Model, name string) *CurveExponent {
	c := &CurveExponent{Object: m.newObject("Curve:Exponent", name)}
	m.add(c)
	return c
}

func (c *CurveExponent) Evaluate(x float64) float64 {
	x = clamp(x, c.MinX, c.MaxX)
	return c.C1 + c.C2*math.Pow(x, c.C3)
}

type CurveBiquadratic struct {
	Object
	C1   float64 `json:"c1"`
	C2   float64 `json:"c2"`
	C3   float64 `json:"c3"`
	C4   float64 `json:"c4"`
	C5   float64 `json:"c5"`
	C6   float64 `json:"c6"`
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

func NewCurveBiquadratic(m *Model, name string) *CurveBiquadratic {
	c := &CurveBiquadratic{Object: m.newObject("Curve:Biquadratic", name)}
	m.add(c)
	return c
}

func (c *CurveBiquadratic) Evaluate(x, y float64) float64 {
	x = clamp(x, c.MinX, c.MaxX)
	y = clamp(y, c.MinY, c.MaxY)
	return c.C1 + c.C2*x + c.C3*x*x + c.C4*y + c.C5*y*y + c.C6*x*y
}

// SetCoefficients assigns c1..c6 in engine order.
func (c *CurveBiquadratic) SetCoefficients(coeffs [6]float64) {
	c.C1, c.C2, c.C3, c.C4, c.C5, c.C6 = coeffs[0], coeffs[1], coeffs[2], coeffs[3], coeffs[4], coeffs[5]
}

type CurveBicubic struct {
	Object
	C1   float64 `json:"c1"`
	C2   float64 `json:"c2"`
	C3   float64 `json:"c3"`
	C4   float64 `json:"c4"`
	C5   float64 `json:"c5"`
	C6   float64 `json:"c6"`
	C7   float64 `json:"c7"`
	C8   float64 `json:"c8"`
	C9   float64 `json:"c9"`
	C10  float64 `json:"c10"`
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

func NewCurveBicubic(m *Model, name string) *CurveBicubic {
	c := &CurveBicubic{Object: m.newObject("Curve:Bicubic", name)}
	m.add(c)
	return c
}

func (c *CurveBicubic) Evaluate(x, y float64) float64 {
	x = clamp(x, c.MinX, c.MaxX)
	y = clamp(y, c.MinY, c.MaxY)
	return c.C1 + c.C2*x + c.C3*x*x + c.C4*y + c.C5*y*y + c.C6*x*y +
		c.C7*x*x*x + c.C8*y*y*y + c.C9*x*x*y + c.C10*x*y*y
}
