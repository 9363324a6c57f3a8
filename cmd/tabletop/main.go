// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Tabletop opens a window and renders the still life until
// closed or Esc is pressed.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"gviegas/tabletop"
	drivergl "gviegas/tabletop/driver/gl"
	"gviegas/tabletop/scene"
)

func init() {
	// GLFW and GL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tabletop: ")

	configPath := flag.String("config", "", "configuration file (YAML)")
	verbose := flag.Bool("v", false, "log to standard error")
	flag.Parse()

	if *verbose {
		tabletop.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalln(err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalln(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		log.Fatalln(err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	gpu, err := drivergl.New()
	if err != nil {
		log.Fatalln(err)
	}

	still, err := scene.New(gpu)
	if err != nil {
		log.Fatalln(err)
	}
	if err := still.Prepare(os.DirFS(cfg.Assets)); err != nil {
		log.Fatalln(err)
	}

	gl.Enable(gl.DEPTH_TEST)

	eye := mgl32.Vec3{0, 6, 16}
	view := mgl32.LookAtV(eye, mgl32.Vec3{0, 2, -3}, mgl32.Vec3{0, 1, 0})

	for !win.ShouldClose() {
		w, h := win.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.1, 0.1, 0.1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		proj := mgl32.Perspective(mgl32.DegToRad(45), float32(w)/float32(h), 0.1, 100)
		still.SetCamera(view, proj, eye)
		if err := still.Render(); err != nil {
			still.Free()
			log.Fatalln(err)
		}

		win.SwapBuffers()
		glfw.PollEvents()
	}

	still.Free()
}
