// Package sdl2 is a Display backed by an SDL window, used on handheld Linux
// devices and for previewing a panel layout on a workstation.
package sdl2

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"time"

	"github.com/pawndev/espir/pkg/espir"
	"github.com/pawndev/espir/pkg/espir/constants"
	"github.com/pawndev/espir/pkg/espir/internal"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	_ espir.Display = (*Display)(nil)
	_ espir.Delayer = (*Display)(nil)
)

type Options struct {
	Title    string
	Width    int32 // Logical panel width in pixels
	Height   int32 // Logical panel height in pixels
	Scale    int32 // Window pixels per panel pixel
	FontPath string
}

func DefaultOptions() Options {
	return Options{
		Title:  "espir",
		Width:  128,
		Height: 160,
		Scale:  4,
	}
}

// Display draws into a persistent target texture so partial redraws behave
// like a panel's own framebuffer. Present copies it to the window.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	target   *sdl.Texture

	width, height int32
	fontPath      string
	fonts         map[int]*ttf.Font

	cursorX, cursorY int32
	textColor        color.RGBA
	textSize         int
}

func New(options Options) (*Display, error) {
	if options.Scale < 1 {
		options.Scale = 1
	}
	if constants.IsDevMode() {
		if v := os.Getenv("WINDOW_SCALE"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
				options.Scale = int32(n)
			} else {
				internal.GetInternalLogger().Warn("Invalid WINDOW_SCALE; using default", "value", v, "error", err)
			}
		}
	}
	if options.FontPath == "" {
		options.FontPath = os.Getenv("FALLBACK_FONT")
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialise SDL: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to initialise SDL_ttf: %w", err)
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", options.Width, "height", options.Height, "scale", options.Scale)

	pos := int32(sdl.WINDOWPOS_CENTERED)
	window, err := sdl.CreateWindow(options.Title, pos, pos,
		options.Width*options.Scale, options.Height*options.Scale, sdl.WINDOW_SHOWN)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	renderer.SetLogicalSize(options.Width, options.Height)

	target, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA8888), sdl.TEXTUREACCESS_TARGET, options.Width, options.Height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create target texture: %w", err)
	}
	renderer.SetRenderTarget(target)

	return &Display{
		window:    window,
		renderer:  renderer,
		target:    target,
		width:     options.Width,
		height:    options.Height,
		fontPath:  options.FontPath,
		fonts:     make(map[int]*ttf.Font),
		textColor: internal.HexToColor(0xFFFFFF),
		textSize:  1,
	}, nil
}

func (d *Display) Width() int32  { return d.width }
func (d *Display) Height() int32 { return d.height }

func (d *Display) FillRect(x, y, w, h int32, c color.RGBA) {
	d.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	d.renderer.FillRect(&sdl.Rect{X: x, Y: y, W: w, H: h})
}

func (d *Display) FillRoundRect(x, y, w, h, radius int32, c color.RGBA) {
	drawRoundedRect(d.renderer, &sdl.Rect{X: x, Y: y, W: w, H: h}, radius, sdlColor(c))
}

func (d *Display) SetCursor(x, y int32) {
	d.cursorX, d.cursorY = x, y
}

func (d *Display) SetTextColor(c color.RGBA) {
	d.textColor = c
}

func (d *Display) SetTextSize(size int) {
	if size < 1 {
		size = 1
	}
	d.textSize = size
}

// Print renders text at the cursor and advances the cursor past it.
// Without a font the text is skipped and only the cursor advances.
func (d *Display) Print(text string) {
	advance := int32(len(text) * constants.GlyphWidth * d.textSize)
	defer func() { d.cursorX += advance }()

	font := d.font(d.textSize)
	if font == nil || text == "" {
		return
	}

	surface, err := font.RenderUTF8Blended(text, sdlColor(d.textColor))
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to render text", "text", text, "error", err)
		return
	}
	defer surface.Free()

	texture, err := d.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to create text texture", "text", text, "error", err)
		return
	}
	defer texture.Destroy()

	d.renderer.Copy(texture, nil, &sdl.Rect{X: d.cursorX, Y: d.cursorY, W: surface.W, H: surface.H})
	advance = surface.W
}

// Present shows everything painted so far.
func (d *Display) Present() {
	d.renderer.SetRenderTarget(nil)
	d.renderer.Copy(d.target, nil, nil)
	d.renderer.Present()
	d.renderer.SetRenderTarget(d.target)
}

// Delay presents pending paint calls, then blocks.
func (d *Display) Delay(duration time.Duration) {
	d.Present()
	sdl.Delay(uint32(duration / time.Millisecond))
}

func (d *Display) Close() {
	for _, font := range d.fonts {
		font.Close()
	}
	d.target.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
	ttf.Quit()
	sdl.Quit()
}

func (d *Display) font(size int) *ttf.Font {
	if font, ok := d.fonts[size]; ok {
		return font
	}
	if d.fontPath == "" {
		return nil
	}

	font, err := ttf.OpenFont(d.fontPath, constants.GlyphHeight*size)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load font, text disabled", "path", d.fontPath, "size", size, "error", err)
		d.fontPath = ""
		return nil
	}

	d.fonts[size] = font
	return font
}

func sdlColor(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func drawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, c sdl.Color) {
	if radius <= 0 {
		renderer.SetDrawColor(c.R, c.G, c.B, c.A)
		renderer.FillRect(rect)
		return
	}

	gfx.BoxColor(renderer, rect.X+radius, rect.Y, rect.X+rect.W-1-radius, rect.Y+rect.H-1, c)
	gfx.BoxColor(renderer, rect.X, rect.Y+radius, rect.X+radius, rect.Y+rect.H-1-radius, c)
	gfx.BoxColor(renderer, rect.X+rect.W-1-radius, rect.Y+radius, rect.X+rect.W-1, rect.Y+rect.H-1-radius, c)

	gfx.FilledCircleColor(renderer, rect.X+radius, rect.Y+radius, radius, c)
	gfx.FilledCircleColor(renderer, rect.X+rect.W-1-radius, rect.Y+radius, radius, c)
	gfx.FilledCircleColor(renderer, rect.X+radius, rect.Y+rect.H-1-radius, radius, c)
	gfx.FilledCircleColor(renderer, rect.X+rect.W-1-radius, rect.Y+rect.H-1-radius, radius, c)
}
