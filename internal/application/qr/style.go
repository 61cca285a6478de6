// Package qr normaliza la configuración de estilo del generador de códigos
// QR y delega la codificación en la librería externa (boombuler/barcode).
// Este paquete nunca implementa codificación QR propia.
package qr

import (
	"regexp"
	"strings"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/domain"
)

// Formas y modos admitidos.
const (
	ModuleSquare = "square"
	ModuleDot    = "dot"

	CornerSquare  = "square"
	CornerRounded = "rounded"

	ForegroundSolid      = "solid"
	ForegroundLinear     = "linear"
	ForegroundRadial     = "radial"
	ForegroundMulticolor = "multicolor"

	BackgroundTransparent = "transparent"

	FrameSolid  = "solid"
	FrameDashed = "dashed"

	CTATop    = "top"
	CTABottom = "bottom"
)

// Rangos admitidos por el editor de estilo.
const (
	MinSize, MaxSize             = 180, 900
	MinMargin, MaxMargin         = 0, 40
	MaxLogoSize                  = 0.42
	MinLogoMargin, MaxLogoMargin = 0, 20
	MinCTAFont, MaxCTAFont       = 9, 22
)

// Valores por defecto.
const (
	defaultSize       = 300
	defaultMargin     = 16
	defaultECC        = "M"
	defaultForeground = "#000000"
	defaultBackground = "#ffffff"
	defaultCTAColor   = "#111111"
	defaultCTAFont    = 13
)

// Style es la configuración ya normalizada: colores en #rrggbb minúscula,
// rangos recortados, enumeraciones validadas.
type Style struct {
	Content string
	Size    int
	Margin  int
	ECC     string

	ModuleShape string
	CornerStyle string

	Transparent bool
	Background  string

	ForegroundMode      string
	Foreground          string
	ForegroundSecondary string
	ForegroundPalette   []string
	GradientAngle       int // grados, solo modo linear

	LogoData       string
	LogoSize       float64
	LogoMargin     int
	LogoHideBehind bool

	Frame       bool
	FrameStyle  string
	FrameColor  string
	CTAText     string
	CTAPosition string
	CTAColor    string
	CTAFontSize int
	CTAFontBold bool
}

// Normalize valida el contenido y construye el Style aplicando defaults,
// normalización de colores y recortes de rango. Un color ilegible cae al
// valor por defecto del campo, nunca aborta el render.
func Normalize(in dto.QRRenderRequest) (Style, error) {
	if strings.TrimSpace(in.Content) == "" {
		return Style{}, domain.ErrInvalidInput
	}

	st := Style{
		Content:     strings.TrimSpace(in.Content),
		Size:        clampInt(orInt(in.Size, defaultSize), MinSize, MaxSize),
		Margin:      clampInt(in.Margin, MinMargin, MaxMargin),
		ECC:         normalizeECC(in.ECC),
		ModuleShape: oneOf(in.ModuleShape, ModuleSquare, ModuleDot),
		CornerStyle: oneOf(in.CornerStyle, CornerSquare, CornerRounded),

		ForegroundMode: oneOf(in.ForegroundMode, ForegroundSolid,
			ForegroundLinear, ForegroundRadial, ForegroundMulticolor),
		Foreground:    NormalizeHexColor(in.Foreground, defaultForeground),
		GradientAngle: ((in.GradientAngleDegrees % 360) + 360) % 360,

		LogoData:       in.LogoData,
		LogoSize:       clampFloat(in.LogoSize, 0, MaxLogoSize),
		LogoMargin:     clampInt(in.LogoMargin, MinLogoMargin, MaxLogoMargin),
		LogoHideBehind: in.LogoHideBehind,

		Frame:       in.Frame,
		FrameStyle:  oneOf(in.FrameStyle, FrameSolid, FrameDashed),
		CTAText:     strings.TrimSpace(in.CTAText),
		CTAPosition: oneOf(in.CTAPosition, CTABottom, CTATop),
		CTAColor:    NormalizeHexColor(in.CTAColor, defaultCTAColor),
		CTAFontSize: clampInt(orInt(in.CTAFontSize, defaultCTAFont), MinCTAFont, MaxCTAFont),
		CTAFontBold: in.CTAFontBold,
	}

	if strings.EqualFold(in.Background, BackgroundTransparent) {
		st.Transparent = true
		st.Background = defaultBackground
	} else {
		st.Background = NormalizeHexColor(in.Background, defaultBackground)
	}

	st.ForegroundSecondary = NormalizeHexColor(in.ForegroundSecondary, st.Foreground)
	st.FrameColor = NormalizeHexColor(in.FrameColor, st.Foreground)

	for _, p := range in.ForegroundPalette {
		if hex, ok := tryHexColor(p); ok {
			st.ForegroundPalette = append(st.ForegroundPalette, hex)
		}
	}
	if len(st.ForegroundPalette) == 0 {
		st.ForegroundPalette = []string{st.Foreground}
	}

	return st, nil
}

var hexColorRe = regexp.MustCompile(`^[0-9a-f]{6}$|^[0-9a-f]{3}$`)

// NormalizeHexColor acepta hex con o sin '#', de 3 o 6 dígitos, sin
// distinguir mayúsculas, y devuelve #rrggbb en minúsculas. Entrada ilegible
// cae a def.
func NormalizeHexColor(s, def string) string {
	if hex, ok := tryHexColor(s); ok {
		return hex
	}
	return def
}

func tryHexColor(s string) (string, bool) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if !hexColorRe.MatchString(s) {
		return "", false
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	return "#" + s, true
}

func normalizeECC(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return "L"
	case "Q":
		return "Q"
	case "H":
		return "H"
	case "M", "":
		return defaultECC
	default:
		return defaultECC
	}
}

func oneOf(s string, valid ...string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range valid {
		if s == v {
			return v
		}
	}
	return valid[0]
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func clampFloat(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

func orInt(n, def int) int {
	if n == 0 {
		return def
	}
	return n
}
