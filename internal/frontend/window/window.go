//go:build !headless

// Package window provides a graphical front-end that shows the display in
// a scaled window.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

const title = "retrochip8"

var (
	pixelOn  = color.RGBA{R: 0xE0, G: 0xF0, B: 0xE0, A: 0xFF}
	pixelOff = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xFF}
	overlay  = color.RGBA{A: 0xC0}
)

// hostKeys lists the keyboard keys of the keypad layout.
var hostKeys = []struct {
	key ebiten.Key
	r   rune
}{
	{ebiten.Key1, '1'}, {ebiten.Key2, '2'}, {ebiten.Key3, '3'}, {ebiten.Key4, '4'},
	{ebiten.KeyQ, 'q'}, {ebiten.KeyW, 'w'}, {ebiten.KeyE, 'e'}, {ebiten.KeyR, 'r'},
	{ebiten.KeyA, 'a'}, {ebiten.KeyS, 's'}, {ebiten.KeyD, 'd'}, {ebiten.KeyF, 'f'},
	{ebiten.KeyZ, 'z'}, {ebiten.KeyX, 'x'}, {ebiten.KeyC, 'c'}, {ebiten.KeyV, 'v'},
}

// Frontend renders into an ebiten window.
type Frontend struct {
	logger *log.Logger
	scale  int
	keymap map[ebiten.Key]uint8

	mu      sync.RWMutex
	pixels  []byte
	keys    chip8.KeyState
	message string
	closed  bool

	image    *ebiten.Image
	done     chan struct{}
	doneOnce sync.Once
	ready    chan struct{}
	once     sync.Once
}

// New opens a window with the display scaled by the given factor. The ebiten
// game loop runs in its own goroutine.
func New(logger *log.Logger, scale int) (*Frontend, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}

	f := &Frontend{
		logger: logger,
		scale:  scale,
		keymap: make(map[ebiten.Key]uint8, len(hostKeys)),
		pixels: make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4),
		done:   make(chan struct{}),
		ready:  make(chan struct{}),
	}
	for _, hk := range hostKeys {
		key, ok := frontend.KeyFromRune(hk.r)
		if !ok {
			return nil, fmt.Errorf("key %q is not part of the keypad layout", hk.r)
		}
		f.keymap[hk.key] = key
	}
	fillPixels(f.pixels, &chip8.Framebuffer{})

	ebiten.SetWindowSize(chip8.DisplayWidth*scale, chip8.DisplayHeight*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)

	go func() {
		defer f.stop()
		if err := ebiten.RunGame(f); err != nil && !errors.Is(err, ebiten.Termination) {
			f.logger.Error("Window closed with error", log.Err(err))
		}
	}()

	select {
	case <-f.ready:
	case <-f.done:
		return nil, errors.New("window could not be opened")
	}
	return f, nil
}

// Present copies the framebuffer for the next Draw call.
func (f *Frontend) Present(fb chip8.Framebuffer) error {
	f.mu.Lock()
	fillPixels(f.pixels, &fb)
	f.mu.Unlock()
	return nil
}

// Keys returns the keypad state of the last Update.
func (f *Frontend) Keys() chip8.KeyState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.keys
}

// ShowHalt shows the given message on top of the display.
func (f *Frontend) ShowHalt(message string) {
	f.mu.Lock()
	f.message = message
	f.mu.Unlock()
}

// Done returns a channel that is closed when the window was closed.
func (f *Frontend) Done() <-chan struct{} {
	return f.done
}

// Close requests the game loop to terminate.
func (f *Frontend) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func (f *Frontend) stop() {
	f.doneOnce.Do(func() { close(f.done) })
}

// Update implements the ebiten.Game interface.
func (f *Frontend) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var keys chip8.KeyState
	for hostKey, key := range f.keymap {
		if ebiten.IsKeyPressed(hostKey) {
			keys.Set(key, true)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = keys
	if f.closed {
		return ebiten.Termination
	}
	return nil
}

// Draw implements the ebiten.Game interface.
func (f *Frontend) Draw(screen *ebiten.Image) {
	if f.image == nil {
		f.image = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
	}

	f.mu.RLock()
	f.image.WritePixels(f.pixels)
	message := f.message
	f.mu.RUnlock()

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(f.scale), float64(f.scale))
	screen.DrawImage(f.image, opts)

	if message != "" {
		drawOverlay(screen, message)
	}

	f.once.Do(func() { close(f.ready) })
}

// Layout implements the ebiten.Game interface.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth * f.scale, chip8.DisplayHeight * f.scale
}

func drawOverlay(screen *ebiten.Image, message string) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, message)
	width := screen.Bounds().Dx()
	height := bounds.Dy() + 12

	ebitenutil.DrawRect(screen, 0, 0, float64(width), float64(height), overlay)
	text.Draw(screen, message, face, 6, 6-bounds.Min.Y, pixelOn)
}

// fillPixels converts the framebuffer to RGBA pixels.
func fillPixels(pixels []byte, fb *chip8.Framebuffer) {
	i := 0
	for y := range fb {
		for x := range fb[y] {
			c := pixelOff
			if fb[y][x] {
				c = pixelOn
			}
			pixels[i] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			pixels[i+3] = c.A
			i += 4
		}
	}
}
