// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command qrgen batch-renders the provisioned codes as QR PNG images with
// the event logo embedded in the centre. It is an offline tool: the images
// are printed and hidden around the venue before the hunt starts.
//
// Usage:
//
//	qrgen -codes codes.csv -logo logo.png -out qr_output
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"

	"github.com/Maheesh07/Bech-De/db"
)

const qrSize = 512

func main() {
	codesPath := flag.String("codes", "codes.csv", "CSV file of codes")
	logoPath := flag.String("logo", "", "Logo image (PNG or JPEG) to embed")
	outDir := flag.String("out", "qr_output", "Output directory")
	scale := flag.Int("scale", 4, "Logo scale divisor (4 = logo ~25% of QR width)")
	flag.Parse()

	if err := run(*codesPath, *logoPath, *outDir, *scale); err != nil {
		slog.Error("qrgen failed", "error", err)
		os.Exit(1)
	}
}

func run(codesPath, logoPath, outDir string, scale int) error {
	if scale < 2 {
		return fmt.Errorf("scale must be at least 2")
	}

	codes, err := db.ReadCodesFile(codesPath)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		return fmt.Errorf("no codes found in %s", codesPath)
	}

	var logo image.Image
	if logoPath != "" {
		logo, err = loadImage(logoPath)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	for i, code := range codes {
		img, err := renderCode(code, logo, scale)
		if err != nil {
			return fmt.Errorf("failed to render %q: %w", code, err)
		}

		name := sanitizeFilename(code)
		if name == "" {
			name = fmt.Sprintf("%d", i)
		}
		outPath := filepath.Join(outDir, "QR_"+name+".png")
		if err := writePNG(outPath, img); err != nil {
			return err
		}
		slog.Info("wrote QR image", "code", code, "path", outPath)
	}

	slog.Info("done", "count", len(codes), "dir", outDir)
	return nil
}

// renderCode encodes the code at high error correction (so the centre logo
// doesn't break scanning) and composites the logo over a white pad.
func renderCode(code string, logo image.Image, scale int) (image.Image, error) {
	qr, err := qrcode.New(code, qrcode.High)
	if err != nil {
		return nil, err
	}

	base := qr.Image(qrSize)
	if logo == nil {
		return base, nil
	}

	out := image.NewRGBA(base.Bounds())
	draw.Draw(out, out.Bounds(), base, base.Bounds().Min, draw.Src)
	embedLogo(out, logo, scale)
	return out, nil
}

// embedLogo scales the logo to fit within width/scale and draws it centred
// over a white pad so the QR modules behind it don't bleed through.
func embedLogo(dst *image.RGBA, logo image.Image, scale int) {
	qrW := dst.Bounds().Dx()
	qrH := dst.Bounds().Dy()
	box := qrW / scale

	lw, lh := fitWithin(logo.Bounds().Dx(), logo.Bounds().Dy(), box)

	const padding = 10
	padW, padH := lw+padding, lh+padding
	padMin := image.Pt((qrW-padW)/2, (qrH-padH)/2)
	padRect := image.Rectangle{Min: padMin, Max: padMin.Add(image.Pt(padW, padH))}
	draw.Draw(dst, padRect, image.NewUniform(color.White), image.Point{}, draw.Src)

	logoMin := padMin.Add(image.Pt(padding/2, padding/2))
	logoRect := image.Rectangle{Min: logoMin, Max: logoMin.Add(image.Pt(lw, lh))}
	xdraw.CatmullRom.Scale(dst, logoRect, logo, logo.Bounds(), xdraw.Over, nil)
}

// fitWithin shrinks w x h to fit inside a box x box square, preserving
// aspect ratio. Images already smaller than the box are left alone.
func fitWithin(w, h, box int) (int, int) {
	if w <= box && h <= box {
		return w, h
	}
	if w >= h {
		return box, h * box / w
	}
	return w * box / h, box
}

// sanitizeFilename replaces every non-alphanumeric rune with an underscore
func sanitizeFilename(code string) string {
	out := make([]rune, 0, len(code))
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo: %w", err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
