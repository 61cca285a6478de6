package qrsvg_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/qr"
	"github.com/jhoicas/stockpilot-api/internal/infrastructure/qrsvg"
)

func render(t *testing.T, req dto.QRRenderRequest) *etree.Document {
	t.Helper()
	st, err := qr.Normalize(req)
	require.NoError(t, err)
	data, err := qrsvg.Render(st)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data), "la salida debe ser XML bien formado")
	return doc
}

func TestRender_DocumentoBasico(t *testing.T) {
	doc := render(t, dto.QRRenderRequest{Content: "https://example.com", Size: 300})

	svg := doc.SelectElement("svg")
	require.NotNil(t, svg)
	assert.Equal(t, "300", svg.SelectAttrValue("width", ""))
	assert.Equal(t, "300", svg.SelectAttrValue("height", ""), "sin CTA la altura es el propio tamaño")
	assert.Equal(t, "0 0 300 300", svg.SelectAttrValue("viewBox", ""))

	group := svg.SelectElement("g")
	require.NotNil(t, group)
	assert.NotEmpty(t, group.SelectElements("rect"), "módulos cuadrados por defecto")
}

func TestRender_CTAExtiendeLaAltura(t *testing.T) {
	doc := render(t, dto.QRRenderRequest{
		Content: "x", Size: 300, Frame: true, CTAText: "Escanéame", CTAFontBold: true,
	})

	svg := doc.SelectElement("svg")
	assert.Equal(t, "334", svg.SelectAttrValue("height", ""), "la banda del CTA añade 34px")

	text := svg.SelectElement("text")
	require.NotNil(t, text, "el CTA viaja como <text> nativo")
	assert.Equal(t, "Escanéame", text.Text())
	assert.Equal(t, "bold", text.SelectAttrValue("font-weight", ""))
	assert.Equal(t, "middle", text.SelectAttrValue("text-anchor", ""))
}

func TestRender_CTASinMarcoNoSeEmite(t *testing.T) {
	doc := render(t, dto.QRRenderRequest{Content: "x", Size: 300, CTAText: "Escanéame"})

	svg := doc.SelectElement("svg")
	assert.Nil(t, svg.SelectElement("text"), "el CTA requiere marco activo")
	assert.Equal(t, "300", svg.SelectAttrValue("height", ""))
}

func TestRender_DegradadoLineal(t *testing.T) {
	doc := render(t, dto.QRRenderRequest{
		Content: "x", ForegroundMode: "linear",
		Foreground: "#C02425", ForegroundSecondary: "#F0CB35",
		GradientAngleDegrees: 45,
	})

	svg := doc.SelectElement("svg")
	defs := svg.SelectElement("defs")
	require.NotNil(t, defs)
	grad := defs.SelectElement("linearGradient")
	require.NotNil(t, grad)
	assert.Equal(t, "rotate(45 0.5 0.5)", grad.SelectAttrValue("gradientTransform", ""))

	stops := grad.SelectElements("stop")
	require.Len(t, stops, 2)
	assert.Equal(t, "#c02425", stops[0].SelectAttrValue("stop-color", ""))
	assert.Equal(t, "#f0cb35", stops[1].SelectAttrValue("stop-color", ""))

	group := svg.SelectElement("g")
	require.NotEmpty(t, group.SelectElements("rect"))
	assert.Equal(t, "url(#fg)", group.SelectElements("rect")[0].SelectAttrValue("fill", ""))
}

func TestRender_ModulosCircularesYEsquinasRedondeadas(t *testing.T) {
	doc := render(t, dto.QRRenderRequest{
		Content: "x", ModuleShape: "dot", CornerStyle: "rounded",
	})

	svg := doc.SelectElement("svg")
	group := svg.SelectElement("g")
	assert.NotEmpty(t, group.SelectElements("circle"), "módulos punto")

	// Tres buscadores redondeados × tres anillos cada uno.
	conRadio := 0
	for _, r := range group.SelectElements("rect") {
		if r.SelectAttrValue("rx", "") != "" {
			conRadio++
		}
	}
	assert.Equal(t, 9, conRadio, "3 patrones × 3 anillos con esquinas redondeadas")
}

func TestRender_FondoTransparente(t *testing.T) {
	st, err := qr.Normalize(dto.QRRenderRequest{Content: "x", Background: "transparent"})
	require.NoError(t, err)
	data, err := qrsvg.Render(st)
	require.NoError(t, err)

	out := string(data)
	assert.NotContains(t, out, `fill="#ffffff"`, "sin rect de fondo en modo transparente")
	assert.True(t, strings.Contains(out, "<svg"))
}

func TestRender_MarcoDiscontinuo(t *testing.T) {
	doc := render(t, dto.QRRenderRequest{
		Content: "x", Frame: true, FrameStyle: "dashed", FrameColor: "#112233",
	})

	svg := doc.SelectElement("svg")
	var frame *etree.Element
	for _, r := range svg.SelectElements("rect") {
		if r.SelectAttrValue("stroke", "") != "" {
			frame = r
		}
	}
	require.NotNil(t, frame, "el marco es el único rect con stroke")
	assert.Equal(t, "#112233", frame.SelectAttrValue("stroke", ""))
	assert.Equal(t, "12 8", frame.SelectAttrValue("stroke-dasharray", ""))
	assert.Equal(t, "none", frame.SelectAttrValue("fill", ""))
}
