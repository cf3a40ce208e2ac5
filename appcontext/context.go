// Package appcontext owns the single window + GPU context lifecycle (C5):
// fullscreen/vsync/title/size configuration, resize callback hookup, and the
// poll/close/swap cycle. The window backend is github.com/go-gl/glfw/v3.3/glfw;
// the GPU backend is github.com/cogentcore/webgpu, both named as external
// collaborators in spec §1.
package appcontext

import (
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/omerfuyar/shuildgo/shuilderr"
)

// Logger is the minimal logging surface appcontext needs; engine.Logger
// satisfies it structurally, no import of engine required.
type Logger interface {
	Infof(format string, args ...any)
}

// ResizeCallback is invoked with the new framebuffer size on resize.
type ResizeCallback func(width, height int)

// Context owns one window and its GPU device.
type Context struct {
	window *glfw.Window

	title       string
	size        [2]int
	vsync       bool
	fullscreen  bool
	resizeCb    ResizeCallback
	presentMode wgpu.PresentMode

	Surface       *wgpu.Surface
	Adapter       *wgpu.Adapter
	Device        *wgpu.Device
	Queue         *wgpu.Queue
	SurfaceFormat wgpu.TextureFormat
}

// Initialize creates the single default window (with no client graphics
// API) and requests a GPU adapter and device for its surface, per spec §4.4.
func Initialize(log Logger, width, height int, title string) (*Context, error) {
	runtime.LockOSThread()

	if !glfw.Init() {
		return nil, shuilderr.New(shuilderr.DependencyInit, "appcontext.Initialize glfw", nil)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, shuilderr.New(shuilderr.DependencyInit, "appcontext.Initialize window", err)
	}

	ctx := &Context{window: win, title: title, size: [2]int{width, height}}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(win))

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, shuilderr.New(shuilderr.DependencyInit, "appcontext.Initialize adapter", err)
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "shuildgo device"})
	if err != nil {
		return nil, shuilderr.New(shuilderr.DependencyInit, "appcontext.Initialize device", err)
	}

	caps := surface.GetCapabilities(adapter)
	format := caps.Formats[0]
	ctx.presentMode = wgpu.PresentModeFifo
	cfg := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: ctx.presentMode,
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, cfg)

	ctx.Surface = surface
	ctx.Adapter = adapter
	ctx.Device = device
	ctx.Queue = device.GetQueue()
	ctx.SurfaceFormat = format

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		ctx.size = [2]int{w, h}
		ctx.reconfigureSurface()
		if ctx.resizeCb != nil {
			ctx.resizeCb(w, h)
		}
	})

	log.Infof("context initialized: %dx%d %q", width, height, title)
	return ctx, nil
}

// Configure applies title/size/vsync/fullscreen/resize-callback together,
// matching the reference Context_Configure's call order.
func (c *Context) Configure(title string, width, height int, vsync, fullscreen bool, resizeCb ResizeCallback) {
	c.ConfigureTitle(title)
	c.ConfigureResizeCallback(resizeCb)
	c.ConfigureSize(width, height)
	c.ConfigureFullscreen(fullscreen)
	c.ConfigureVSync(vsync)
}

func (c *Context) ConfigureTitle(title string) {
	c.title = title
	c.window.SetTitle(title)
}

func (c *Context) ConfigureSize(width, height int) {
	c.size = [2]int{width, height}
	c.reconfigureSurface()
	if c.resizeCb != nil {
		c.resizeCb(width, height)
	}
}

func (c *Context) ConfigureVSync(vsync bool) {
	c.vsync = vsync
	c.presentMode = wgpu.PresentModeFifo
	if !vsync {
		c.presentMode = wgpu.PresentModeImmediate
	}
	c.reconfigureSurface()
}

// reconfigureSurface reapplies the surface configuration at the current
// size/present mode, picked up by the next GetCurrentTexture call.
func (c *Context) reconfigureSurface() {
	if c.Surface == nil {
		return
	}
	caps := c.Surface.GetCapabilities(c.Adapter)
	c.Surface.Configure(c.Adapter, c.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      c.SurfaceFormat,
		Width:       uint32(c.size[0]),
		Height:      uint32(c.size[1]),
		PresentMode: c.presentMode,
		AlphaMode:   caps.AlphaModes[0],
	})
}

// ConfigureFullscreen toggles fullscreen. Entering fullscreen re-parents the
// window to the primary monitor at its current video mode; leaving restores
// the previously requested size at position (100,100), per spec §4.4.
func (c *Context) ConfigureFullscreen(fullscreen bool) {
	c.fullscreen = fullscreen
	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()

	if fullscreen {
		c.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	} else {
		c.window.SetMonitor(nil, 100, 100, c.size[0], c.size[1], 0)
	}
}

func (c *Context) ConfigureResizeCallback(cb ResizeCallback) {
	c.resizeCb = cb
}

// Update polls events and reports whether the backend received a close
// request, so the caller can terminate normally.
func (c *Context) Update() (shouldClose bool) {
	glfw.PollEvents()
	return c.window.ShouldClose()
}

// SwapBuffers presents the current frame. wgpu presents via the surface
// texture's Present call made by the renderer after submitting the frame's
// command buffer; this hook remains for symmetry with spec §4.4's naming and
// performs any window-side bookkeeping (none currently needed).
func (c *Context) SwapBuffers() {}

func (c *Context) Size() (int, int) {
	return c.size[0], c.size[1]
}

func (c *Context) Window() *glfw.Window {
	return c.window
}

// Terminate destroys the window and shuts down glfw.
func (c *Context) Terminate() {
	c.window.Destroy()
	glfw.Terminate()
}
