// Package qrsvg construye la salida vectorial del generador QR con etree.
// A diferencia del PNG, el SVG sí incluye el marco y el texto del
// call-to-action: el texto es nativo en SVG y no exige rasterizar fuentes.
package qrsvg

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/stockpilot-api/internal/application/qr"
)

const (
	frameStroke = 4  // px
	ctaBand     = 34 // alto extra reservado para la leyenda
)

// Render produce el documento SVG para el estilo dado.
func Render(st qr.Style) ([]byte, error) {
	matrix, err := qr.Matrix(st.Content, st.ECC)
	if err != nil {
		return nil, err
	}
	n := len(matrix)

	withCTA := st.Frame && st.CTAText != ""
	height := st.Size
	qrTop := 0
	if withCTA {
		height += ctaBand
		if st.CTAPosition == qr.CTATop {
			qrTop = ctaBand
		}
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", strconv.Itoa(st.Size))
	svg.CreateAttr("height", strconv.Itoa(height))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", st.Size, height))

	fgRef := addForegroundDefs(svg, st)

	if !st.Transparent {
		bg := svg.CreateElement("rect")
		bg.CreateAttr("width", strconv.Itoa(st.Size))
		bg.CreateAttr("height", strconv.Itoa(height))
		bg.CreateAttr("fill", st.Background)
	}

	// Geometría idéntica al painter PNG: módulos enteros centrados.
	avail := st.Size - 2*st.Margin
	scale := avail / n
	if scale < 1 {
		scale = 1
	}
	offset := (st.Size - scale*n) / 2

	group := svg.CreateElement("g")
	rounded := st.CornerStyle == qr.CornerRounded
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !matrix[y][x] || (rounded && qr.InFinder(x, y, n)) {
				continue
			}
			px := offset + x*scale
			py := qrTop + offset + y*scale
			addModule(group, st, fgRef, x, y, px, py, scale)
		}
	}

	if rounded {
		for _, o := range qr.FinderOrigins(n) {
			addRoundedFinder(group, st, fgRef,
				offset+o[0]*scale, qrTop+offset+o[1]*scale, scale)
		}
	}

	if st.LogoData != "" {
		addLogo(svg, st, qrTop)
	}

	if st.Frame {
		addFrame(svg, st, height)
	}
	if withCTA {
		addCTA(svg, st, height)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// addForegroundDefs registra el degradado cuando aplica y devuelve el valor
// de fill a usar por los módulos (color plano o url(#...)).
func addForegroundDefs(svg *etree.Element, st qr.Style) string {
	switch st.ForegroundMode {
	case qr.ForegroundLinear:
		defs := svg.CreateElement("defs")
		grad := defs.CreateElement("linearGradient")
		grad.CreateAttr("id", "fg")
		grad.CreateAttr("gradientTransform", fmt.Sprintf("rotate(%d 0.5 0.5)", st.GradientAngle))
		addStop(grad, "0%", st.Foreground)
		addStop(grad, "100%", st.ForegroundSecondary)
		return "url(#fg)"
	case qr.ForegroundRadial:
		defs := svg.CreateElement("defs")
		grad := defs.CreateElement("radialGradient")
		grad.CreateAttr("id", "fg")
		addStop(grad, "0%", st.Foreground)
		addStop(grad, "100%", st.ForegroundSecondary)
		return "url(#fg)"
	default:
		return st.Foreground
	}
}

func addStop(grad *etree.Element, offset, color string) {
	stop := grad.CreateElement("stop")
	stop.CreateAttr("offset", offset)
	stop.CreateAttr("stop-color", color)
}

func addModule(group *etree.Element, st qr.Style, fgRef string, mx, my, px, py, scale int) {
	fill := fgRef
	if st.ForegroundMode == qr.ForegroundMulticolor {
		fill = st.ForegroundPalette[(mx+my)%len(st.ForegroundPalette)]
	}
	if st.ModuleShape == qr.ModuleDot {
		c := group.CreateElement("circle")
		c.CreateAttr("cx", strconv.Itoa(px+scale/2))
		c.CreateAttr("cy", strconv.Itoa(py+scale/2))
		c.CreateAttr("r", strconv.Itoa(scale/2))
		c.CreateAttr("fill", fill)
		return
	}
	r := group.CreateElement("rect")
	r.CreateAttr("x", strconv.Itoa(px))
	r.CreateAttr("y", strconv.Itoa(py))
	r.CreateAttr("width", strconv.Itoa(scale))
	r.CreateAttr("height", strconv.Itoa(scale))
	r.CreateAttr("fill", fill)
}

// addRoundedFinder pinta el patrón 7×7 como tres anillos anidados.
func addRoundedFinder(group *etree.Element, st qr.Style, fgRef string, x0, y0, scale int) {
	fill := fgRef
	if st.ForegroundMode == qr.ForegroundMulticolor {
		fill = st.ForegroundPalette[0]
	}
	ring := func(x, y, side, radius int, color string) {
		r := group.CreateElement("rect")
		r.CreateAttr("x", strconv.Itoa(x))
		r.CreateAttr("y", strconv.Itoa(y))
		r.CreateAttr("width", strconv.Itoa(side))
		r.CreateAttr("height", strconv.Itoa(side))
		r.CreateAttr("rx", strconv.Itoa(radius))
		r.CreateAttr("fill", color)
	}
	inner := st.Background
	if st.Transparent {
		inner = "#ffffff"
	}
	ring(x0, y0, 7*scale, 2*scale, fill)
	ring(x0+scale, y0+scale, 5*scale, scale, inner)
	ring(x0+2*scale, y0+2*scale, 3*scale, scale, fill)
}

func addLogo(svg *etree.Element, st qr.Style, qrTop int) {
	side := int(st.LogoSize * float64(st.Size))
	if side <= 0 {
		return
	}
	x0 := (st.Size - side) / 2
	y0 := qrTop + (st.Size-side)/2

	if st.LogoHideBehind {
		hide := svg.CreateElement("rect")
		hide.CreateAttr("x", strconv.Itoa(x0-st.LogoMargin))
		hide.CreateAttr("y", strconv.Itoa(y0-st.LogoMargin))
		hide.CreateAttr("width", strconv.Itoa(side+2*st.LogoMargin))
		hide.CreateAttr("height", strconv.Itoa(side+2*st.LogoMargin))
		hide.CreateAttr("fill", st.Background)
	}

	img := svg.CreateElement("image")
	img.CreateAttr("x", strconv.Itoa(x0))
	img.CreateAttr("y", strconv.Itoa(y0))
	img.CreateAttr("width", strconv.Itoa(side))
	img.CreateAttr("height", strconv.Itoa(side))
	href := st.LogoData
	if len(href) < 5 || href[:5] != "data:" {
		href = "data:image/png;base64," + href
	}
	img.CreateAttr("href", href)
}

func addFrame(svg *etree.Element, st qr.Style, height int) {
	r := svg.CreateElement("rect")
	r.CreateAttr("x", strconv.Itoa(frameStroke/2))
	r.CreateAttr("y", strconv.Itoa(frameStroke/2))
	r.CreateAttr("width", strconv.Itoa(st.Size-frameStroke))
	r.CreateAttr("height", strconv.Itoa(height-frameStroke))
	r.CreateAttr("fill", "none")
	r.CreateAttr("stroke", st.FrameColor)
	r.CreateAttr("stroke-width", strconv.Itoa(frameStroke))
	r.CreateAttr("rx", "10")
	if st.FrameStyle == qr.FrameDashed {
		r.CreateAttr("stroke-dasharray", "12 8")
	}
}

func addCTA(svg *etree.Element, st qr.Style, height int) {
	y := height - ctaBand/2
	if st.CTAPosition == qr.CTATop {
		y = ctaBand / 2
	}
	t := svg.CreateElement("text")
	t.CreateAttr("x", strconv.Itoa(st.Size/2))
	t.CreateAttr("y", strconv.Itoa(y))
	t.CreateAttr("text-anchor", "middle")
	t.CreateAttr("dominant-baseline", "middle")
	t.CreateAttr("font-family", "sans-serif")
	t.CreateAttr("font-size", strconv.Itoa(st.CTAFontSize))
	t.CreateAttr("fill", st.CTAColor)
	if st.CTAFontBold {
		t.CreateAttr("font-weight", "bold")
	}
	t.SetText(st.CTAText)
}
