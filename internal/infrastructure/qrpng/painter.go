// Package qrpng pinta la matriz de módulos QR como PNG aplicando el estilo
// normalizado: colores sólidos o degradados, forma de módulo, esquinas
// redondeadas en los patrones de posicionamiento, logo centrado y marco.
// El texto del call-to-action solo existe en la salida vectorial (SVG);
// rasterizar tipografía queda fuera del alcance del pintor PNG.
package qrpng

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"

	"github.com/jhoicas/stockpilot-api/internal/application/qr"
)

const frameStroke = 4 // px

// Render produce el PNG final para el estilo dado.
func Render(st qr.Style) ([]byte, error) {
	matrix, err := qr.Matrix(st.Content, st.ECC)
	if err != nil {
		return nil, err
	}
	n := len(matrix)

	img := image.NewRGBA(image.Rect(0, 0, st.Size, st.Size))
	if !st.Transparent {
		fill(img, img.Bounds(), parseHex(st.Background))
	}

	// Geometría: módulos enteros centrados dentro del margen.
	avail := st.Size - 2*st.Margin
	scale := avail / n
	if scale < 1 {
		scale = 1
	}
	content := scale * n
	offset := (st.Size - content) / 2

	fg := newForeground(st)

	rounded := st.CornerStyle == qr.CornerRounded
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !matrix[y][x] || (rounded && qr.InFinder(x, y, n)) {
				continue
			}
			px := offset + x*scale
			py := offset + y*scale
			c := fg.moduleColor(st, x, y, n, px+scale/2, py+scale/2)
			if st.ModuleShape == qr.ModuleDot {
				fillCircle(img, px+scale/2, py+scale/2, scale/2, c)
			} else {
				fill(img, image.Rect(px, py, px+scale, py+scale), c)
			}
		}
	}

	if rounded {
		paintRoundedFinders(img, st, fg, n, scale, offset)
	}

	if st.LogoData != "" {
		if err := paintLogo(img, st); err != nil {
			return nil, err
		}
	}

	if st.Frame {
		paintFrame(img, st)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("codificar PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// ── Color de primer plano ─────────────────────────────────────────────────────

type foreground struct {
	base      color.RGBA
	secondary color.RGBA
	palette   []color.RGBA
}

func newForeground(st qr.Style) *foreground {
	f := &foreground{
		base:      parseHex(st.Foreground),
		secondary: parseHex(st.ForegroundSecondary),
	}
	for _, p := range st.ForegroundPalette {
		f.palette = append(f.palette, parseHex(p))
	}
	return f
}

// moduleColor resuelve el color según el modo: sólido, degradado lineal o
// radial (interpolado en espacio de píxeles) o multicolor (paleta rotada por
// diagonal de módulo).
func (f *foreground) moduleColor(st qr.Style, mx, my, n, px, py int) color.RGBA {
	switch st.ForegroundMode {
	case qr.ForegroundLinear:
		rad := float64(st.GradientAngle) * math.Pi / 180
		// proyección del píxel sobre el eje del degradado, normalizada
		t := (float64(px)*math.Cos(rad) + float64(py)*math.Sin(rad)) / float64(st.Size)
		return lerp(f.base, f.secondary, clamp01(t))
	case qr.ForegroundRadial:
		cx, cy := float64(st.Size)/2, float64(st.Size)/2
		d := math.Hypot(float64(px)-cx, float64(py)-cy) / (float64(st.Size) / 2)
		return lerp(f.base, f.secondary, clamp01(d))
	case qr.ForegroundMulticolor:
		return f.palette[(mx+my)%len(f.palette)]
	default:
		return f.base
	}
}

// ── Patrones de posicionamiento redondeados ───────────────────────────────────

// paintRoundedFinders pinta cada patrón 7×7 como tres anillos: bloque externo
// redondeado, anillo interior al color de fondo y núcleo 3×3 redondeado.
func paintRoundedFinders(img *image.RGBA, st qr.Style, fg *foreground, n, scale, offset int) {
	bg := parseHex(st.Background)
	for _, o := range qr.FinderOrigins(n) {
		x0 := offset + o[0]*scale
		y0 := offset + o[1]*scale
		side := 7 * scale
		c := fg.moduleColor(st, o[0]+3, o[1]+3, n, x0+side/2, y0+side/2)

		fillRounded(img, image.Rect(x0, y0, x0+side, y0+side), scale*2, c)
		inner := image.Rect(x0+scale, y0+scale, x0+6*scale, y0+6*scale)
		if st.Transparent {
			erase(img, inner, scale)
		} else {
			fillRounded(img, inner, scale, bg)
		}
		core := image.Rect(x0+2*scale, y0+2*scale, x0+5*scale, y0+5*scale)
		fillRounded(img, core, scale, c)
	}
}

// ── Logo ──────────────────────────────────────────────────────────────────────

func paintLogo(img *image.RGBA, st qr.Style) error {
	raw := st.LogoData
	if i := strings.Index(raw, "base64,"); i >= 0 { // admite data-URI
		raw = raw[i+len("base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("logo: decodificar base64: %w", err)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("logo: decodificar imagen: %w", err)
	}

	side := int(st.LogoSize * float64(st.Size))
	if side <= 0 {
		return nil
	}
	x0 := (st.Size - side) / 2
	y0 := (st.Size - side) / 2

	if st.LogoHideBehind {
		hide := image.Rect(x0-st.LogoMargin, y0-st.LogoMargin, x0+side+st.LogoMargin, y0+side+st.LogoMargin)
		if st.Transparent {
			erase(img, hide, 0)
		} else {
			fill(img, hide, parseHex(st.Background))
		}
	}

	dst := image.Rect(x0, y0, x0+side, y0+side)
	xdraw.ApproxBiLinear.Scale(img, dst, src, src.Bounds(), xdraw.Over, nil)
	return nil
}

// ── Marco ─────────────────────────────────────────────────────────────────────

func paintFrame(img *image.RGBA, st qr.Style) {
	c := parseHex(st.FrameColor)
	inset := frameStroke
	r := image.Rect(inset, inset, st.Size-inset, st.Size-inset)
	dashed := st.FrameStyle == qr.FrameDashed

	drawEdge := func(rect image.Rectangle, horizontal bool) {
		if !dashed {
			fill(img, rect, c)
			return
		}
		const dash, gap = 12, 8
		if horizontal {
			for x := rect.Min.X; x < rect.Max.X; x += dash + gap {
				end := x + dash
				if end > rect.Max.X {
					end = rect.Max.X
				}
				fill(img, image.Rect(x, rect.Min.Y, end, rect.Max.Y), c)
			}
			return
		}
		for y := rect.Min.Y; y < rect.Max.Y; y += dash + gap {
			end := y + dash
			if end > rect.Max.Y {
				end = rect.Max.Y
			}
			fill(img, image.Rect(rect.Min.X, y, rect.Max.X, end), c)
		}
	}

	drawEdge(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+frameStroke), true)
	drawEdge(image.Rect(r.Min.X, r.Max.Y-frameStroke, r.Max.X, r.Max.Y), true)
	drawEdge(image.Rect(r.Min.X, r.Min.Y, r.Min.X+frameStroke, r.Max.Y), false)
	drawEdge(image.Rect(r.Max.X-frameStroke, r.Min.Y, r.Max.X, r.Max.Y), false)
}

// ── Primitivas ────────────────────────────────────────────────────────────────

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func erase(img *image.RGBA, r image.Rectangle, radius int) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if radius > 0 && !insideRounded(r, radius, x, y) {
				continue
			}
			img.SetRGBA(x, y, color.RGBA{})
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	r2 := radius * radius
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 && image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func fillRounded(img *image.RGBA, r image.Rectangle, radius int, c color.RGBA) {
	rr := r.Intersect(img.Bounds())
	for y := rr.Min.Y; y < rr.Max.Y; y++ {
		for x := rr.Min.X; x < rr.Max.X; x++ {
			if insideRounded(r, radius, x, y) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// insideRounded descarta los píxeles fuera del radio en las cuatro esquinas.
func insideRounded(r image.Rectangle, radius, x, y int) bool {
	cx, cy := x, y
	switch {
	case x < r.Min.X+radius && y < r.Min.Y+radius:
		cx, cy = r.Min.X+radius, r.Min.Y+radius
	case x >= r.Max.X-radius && y < r.Min.Y+radius:
		cx, cy = r.Max.X-radius-1, r.Min.Y+radius
	case x < r.Min.X+radius && y >= r.Max.Y-radius:
		cx, cy = r.Min.X+radius, r.Max.Y-radius-1
	case x >= r.Max.X-radius && y >= r.Max.Y-radius:
		cx, cy = r.Max.X-radius-1, r.Max.Y-radius-1
	default:
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

func parseHex(hex string) color.RGBA {
	var r, g, b uint8
	fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
