//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/st7789"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *tinyGoFramebuffer
	clk    *tinyGoClock
	bat    *adcBattery
	health Health
}

// New returns a watch HAL for an RP2040 board with an ST7789 panel.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Display: SPI1 on GP10 (SCK) / GP11 (SDO), CS GP13, DC GP14, RST GP15.
// Battery sense: ADC0 on GP26 behind a 1:2 divider.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	display := st7789.New(machine.SPI1,
		machine.GP15, // reset
		machine.GP14, // dc
		machine.GP13, // cs
		machine.NoPin,
	)
	display.Configure(st7789.Config{
		Width:    DisplayWidth,
		Height:   DisplayHeight,
		Rotation: st7789.NO_ROTATION,
	})

	machine.InitADC()
	sense := machine.ADC{Pin: machine.GP26}
	sense.Configure(machine.ADCConfig{})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		fb:     newTinyGoFramebuffer(&display, DisplayWidth, DisplayHeight),
		clk:    newTinyGoClock(),
		bat:    &adcBattery{adc: sense},
		health: stubHealth{},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{} }
func (h *tinyGoHAL) Clock() Clock     { return h.clk }
func (h *tinyGoHAL) Battery() Battery { return h.bat }
func (h *tinyGoHAL) Health() Health   { return h.health }

type tinyGoDisplay struct {
	fb *tinyGoFramebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct{}

func (tinyGoInput) Keyboard() Keyboard { return nil }

// tinyGoFramebuffer keeps a full RGB565 frame in RAM and pushes it to
// the panel on Present. 144x168x2 is ~47 KiB, which fits RP2040 RAM.
type tinyGoFramebuffer struct {
	panel  *st7789.Device
	width  int
	height int
	buf    []byte
	tx     []byte
}

func newTinyGoFramebuffer(panel *st7789.Device, w, h int) *tinyGoFramebuffer {
	return &tinyGoFramebuffer{
		panel:  panel,
		width:  w,
		height: h,
		buf:    make([]byte, w*h*2),
		tx:     make([]byte, w*h*2),
	}
}

func (f *tinyGoFramebuffer) Width() int          { return f.width }
func (f *tinyGoFramebuffer) Height() int         { return f.height }
func (f *tinyGoFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *tinyGoFramebuffer) StrideBytes() int    { return f.width * 2 }
func (f *tinyGoFramebuffer) Buffer() []byte      { return f.buf }

func (f *tinyGoFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *tinyGoFramebuffer) Present() error {
	if f.panel == nil {
		return ErrNotImplemented
	}
	// The panel wants big-endian RGB565.
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.tx[i] = f.buf[i+1]
		f.tx[i+1] = f.buf[i]
	}
	return f.panel.DrawRGBBitmap8(0, 0, f.tx, int16(f.width), int16(f.height))
}

type adcBattery struct {
	adc machine.ADC
}

func (b *adcBattery) Percent() int {
	// 1:2 divider, 3.3V reference: raw 0xFFFF ~= 6.6V at the cell.
	// Map the usable LiPo range 3.4V..4.2V onto 0..100.
	mv := int(uint32(b.adc.Get()) * 6600 / 0xFFFF)
	pct := (mv - 3400) * 100 / 800
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

type stubHealth struct{}

// Steps returns 0: no step sensor on this board revision.
func (stubHealth) Steps() int { return 0 }
