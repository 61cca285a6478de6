package qr

import (
	"fmt"

	bqr "github.com/boombuler/barcode/qr"
)

// Matrix codifica el contenido delegando en boombuler/barcode y devuelve la
// matriz cuadrada de módulos (true = módulo oscuro).
func Matrix(content, ecc string) ([][]bool, error) {
	code, err := bqr.Encode(content, level(ecc), bqr.Auto)
	if err != nil {
		return nil, fmt.Errorf("codificar QR: %w", err)
	}

	b := code.Bounds()
	n := b.Dx()
	m := make([][]bool, n)
	for y := 0; y < n; y++ {
		m[y] = make([]bool, n)
		for x := 0; x < n; x++ {
			r, g, bl, _ := code.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m[y][x] = r == 0 && g == 0 && bl == 0
		}
	}
	return m, nil
}

// InFinder indica si el módulo (x, y) pertenece a uno de los tres patrones
// de posicionamiento (7×7 en tres esquinas); el renderizador los pinta como
// bloque cuando el estilo de esquina es redondeado.
func InFinder(x, y, n int) bool {
	in := func(v, lo int) bool { return v >= lo && v < lo+7 }
	switch {
	case in(x, 0) && in(y, 0):
		return true
	case in(x, n-7) && in(y, 0):
		return true
	case in(x, 0) && in(y, n-7):
		return true
	}
	return false
}

// FinderOrigins devuelve las esquinas (módulo superior-izquierdo) de los
// tres patrones de posicionamiento.
func FinderOrigins(n int) [3][2]int {
	return [3][2]int{{0, 0}, {n - 7, 0}, {0, n - 7}}
}

func level(ecc string) bqr.ErrorCorrectionLevel {
	switch ecc {
	case "L":
		return bqr.L
	case "Q":
		return bqr.Q
	case "H":
		return bqr.H
	default:
		return bqr.M
	}
}
