package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	tgaTypeTrueColor = 2
	tgaTypeRLE       = 10
)

var errTGATruncated = errors.New("tga: data truncated")

// DecodeTGA decodes uncompressed (type 2) and RLE (type 10) true-color TGA
// data with 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < 18 {
		return nil, errTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != tgaTypeTrueColor && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("tga: empty image %dx%d", width, height)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	d := tgaDecoder{
		src:         data[offset:],
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		width:       width,
		height:      height,
		bytesPerPx:  bpp / 8,
		topToBottom: topToBottom,
	}

	var err error
	if imageType == tgaTypeTrueColor {
		err = d.decodeRaw()
	} else {
		err = d.decodeRLE()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	src         []byte
	pos         int
	img         *image.RGBA
	width       int
	height      int
	bytesPerPx  int
	topToBottom bool
}

// readPixel consumes one BGR(A) pixel.
func (d *tgaDecoder) readPixel() (color.RGBA, bool) {
	if d.pos+d.bytesPerPx > len(d.src) {
		return color.RGBA{}, false
	}
	p := d.src[d.pos:]
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bytesPerPx == 4 {
		c.A = p[3]
	}
	d.pos += d.bytesPerPx
	return c, true
}

// put writes the n-th pixel in file order. TGA rows are bottom-up unless the
// descriptor says otherwise.
func (d *tgaDecoder) put(n int, c color.RGBA) {
	x, y := n%d.width, n/d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) decodeRaw() error {
	total := d.width * d.height
	if len(d.src) < total*d.bytesPerPx {
		return errTGATruncated
	}
	for n := 0; n < total; n++ {
		c, _ := d.readPixel()
		d.put(n, c)
	}
	return nil
}

// decodeRLE stops quietly at the end of the data, leaving the rest of the
// image transparent.
func (d *tgaDecoder) decodeRLE() error {
	total := d.width * d.height
	n := 0
	for n < total && d.pos < len(d.src) {
		header := d.src[d.pos]
		d.pos++
		count := int(header&0x7F) + 1

		if header&0x80 != 0 {
			c, ok := d.readPixel()
			if !ok {
				return nil
			}
			for i := 0; i < count && n < total; i++ {
				d.put(n, c)
				n++
			}
			continue
		}

		for i := 0; i < count && n < total; i++ {
			c, ok := d.readPixel()
			if !ok {
				return nil
			}
			d.put(n, c)
			n++
		}
	}
	return nil
}
