package approach

import "strconv"

// boxIDCounter is a plain counter; stages are single-threaded.
var boxIDCounter uint32

func nextBoxID() uint32 {
	boxIDCounter++
	return boxIDCounter
}

// Box is the element type of the reference Stage host: a positioned
// rectangle carrying an inline style. The width and height styles, when set
// to pixel values, override Width and Height.
type Box struct {
	// Identity
	ID   uint32
	Name string

	// Geometry (pixels, top-left origin)
	X, Y          float64
	Width, Height float64

	Visible bool

	style    map[string]string
	disposed bool
}

// NewBox creates a visible box with an empty style.
func NewBox(name string, x, y, width, height float64) *Box {
	return &Box{
		ID:      nextBoxID(),
		Name:    name,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Visible: true,
		style:   make(map[string]string),
	}
}

// ElementID implements Element.
func (b *Box) ElementID() uint32 {
	return b.ID
}

// Style returns the inline value of a property and whether it is set.
func (b *Box) Style(property string) (string, bool) {
	v, ok := b.style[property]
	return v, ok
}

// SetStyle sets an inline property. An empty value removes it.
func (b *Box) SetStyle(property, value string) {
	if b.disposed {
		return
	}
	if value == "" {
		delete(b.style, property)
		return
	}
	b.style[property] = value
}

// SetStyles applies declarations in order. Non-string values are formatted
// with their String method when they have one.
func (b *Box) SetStyles(decls []Declaration) {
	for _, d := range decls {
		switch v := d.Value.(type) {
		case string:
			b.SetStyle(d.Property, v)
		case RGB:
			b.SetStyle(d.Property, v.String())
		case float64:
			b.SetStyle(d.Property, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
}

// Size returns the effective width and height.
func (b *Box) Size() (w, h float64) {
	w, h = b.Width, b.Height
	if v, ok := b.pixelStyle("width"); ok {
		w = v
	}
	if v, ok := b.pixelStyle("height"); ok {
		h = v
	}
	return w, h
}

// Bounds returns the box rectangle using the effective size.
func (b *Box) Bounds() Rect {
	w, h := b.Size()
	return Rect{X: b.X, Y: b.Y, Width: w, Height: h}
}

func (b *Box) pixelStyle(property string) (float64, bool) {
	v, ok := b.style[property]
	if !ok {
		return 0, false
	}
	p, ok := parseScalar(v)
	if !ok || p.relative != "" || (p.unit != "" && p.unit != "px") {
		return 0, false
	}
	return p.number, true
}

// --- Disposal ---

// Dispose marks the box as disposed. The owning stage drops it on its next
// Update and sessions forget it on their next processed sample.
func (b *Box) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.style = nil
}

// IsDisposed returns true if this box has been disposed.
func (b *Box) IsDisposed() bool {
	return b.disposed
}
