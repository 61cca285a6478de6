package dto

// QRRenderRequest body para POST /api/qr/render. Todos los campos de estilo
// son opcionales; el normalizador aplica valores por defecto y recorta los
// rangos numéricos antes de delegar la codificación QR a la librería externa.
type QRRenderRequest struct {
	Content string `json:"content"`
	Size    int    `json:"size"`   // px, 180–900
	Margin  int    `json:"margin"` // px, 0–40
	ECC     string `json:"ecc"`    // L | M | Q | H

	ModuleShape string `json:"module_shape"` // square | dot
	CornerStyle string `json:"corner_style"` // square | rounded

	Background           string   `json:"background"`      // color hex o "transparent"
	ForegroundMode       string   `json:"foreground_mode"` // solid | linear | radial | multicolor
	Foreground           string   `json:"foreground"`
	ForegroundSecondary  string   `json:"foreground_secondary"` // segundo color de gradientes
	ForegroundPalette    []string `json:"foreground_palette"`   // modo multicolor
	GradientAngleDegrees int      `json:"gradient_angle_degrees"`

	LogoData       string  `json:"logo_data"` // imagen base64 (PNG/JPEG)
	LogoSize       float64 `json:"logo_size"` // proporción 0–0.42
	LogoMargin     int     `json:"logo_margin"`
	LogoHideBehind bool    `json:"logo_hide_behind"` // tapa los módulos bajo el logo

	Frame       bool   `json:"frame"`
	FrameStyle  string `json:"frame_style"` // solid | dashed
	FrameColor  string `json:"frame_color"`
	CTAText     string `json:"cta_text"`
	CTAPosition string `json:"cta_position"` // top | bottom
	CTAColor    string `json:"cta_color"`
	CTAFontSize int    `json:"cta_font_size"` // 9–22
	CTAFontBold bool   `json:"cta_font_bold"`
}
