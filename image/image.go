// Package image renders study-card PNGs for declined forms.
package image

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

func face(b []byte, size float64) (font.Face, error) {
	fnt, err := opentype.Parse(b)
	if err != nil {
		col, cerr := opentype.ParseCollection(b)
		if cerr != nil {
			return nil, err
		}
		if fnt, err = col.Font(0); err != nil {
			return nil, err
		}
	}

	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Card draws front (the declined Russian form) over back (gloss or
// sentence stem) and returns the image sized to fit. fontData is a
// caller-supplied otf/ttf file.
func Card(height int, front, back string, fg, bg color.NRGBA, fontData []byte) (*image.NRGBA, error) {
	if front == "" {
		return nil, errors.New("empty card front")
	}

	startX := height / 8
	stopX := height / 8
	startY := height / 8
	padding := height / 8
	rest := height - 2*startY - padding
	if rest < 0 {
		rest = 0
	}
	frontSize := float64(rest) * 2 / 3
	backSize := float64(rest) / 3

	frontFace, err := face(fontData, frontSize)
	if err != nil {
		return nil, err
	}
	backFace, err := face(fontData, backSize)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	src := image.NewUniform(fg)
	do := func(x1, x2 int) (int, int) {
		dwr := font.Drawer{Dst: img, Src: src, Face: frontFace}
		dwr.Dot = fixed.P(x1, startY+int(frontSize))
		dwr.DrawString(front)
		w1 := int(dwr.Dot.X>>6) - startX

		dwr.Face = backFace
		dwr.Dot = fixed.P(x2, startY+padding+int(frontSize)+int(backSize))
		dwr.DrawString(back)
		w2 := int(dwr.Dot.X>>6) - startX
		return w1, w2
	}

	// first pass measures, second draws centered
	w1, w2 := do(startX, startX)
	w := w1 + startX + stopX
	x1, x2 := startX, startX+(w1-w2)/2
	if w2 > w1 {
		w = w2 + startX + stopX
		x1, x2 = startX+(w2-w1)/2, startX
	}

	img = image.NewNRGBA(image.Rect(0, 0, w, height))

	if bg.A != 0 {
		for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
			for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
				o := img.PixOffset(x, y)
				img.Pix[o+0] = bg.R
				img.Pix[o+1] = bg.G
				img.Pix[o+2] = bg.B
				img.Pix[o+3] = bg.A
			}
		}
	}

	do(x1, x2)

	return img, nil
}
