// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"gviegas/tabletop/internal/drivertest"
)

func newProg(t *testing.T) *drivertest.Program {
	gpu := drivertest.New(16)
	prog, err := gpu.NewProgram("v", "f")
	if err != nil {
		t.Fatalf("NewProgram failed:\n%#v", err)
	}
	return prog.(*drivertest.Program)
}

func TestDistant(t *testing.T) {
	prog := newProg(t)
	l := Distant{
		Direction: mgl32.Vec3{-1, -0.2, 0},
		Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
	}
	l.Apply(prog)
	for _, x := range [...]struct {
		name string
		want mgl32.Vec3
	}{
		{"directionalLight.direction", l.Direction},
		{"directionalLight.ambient", l.Ambient},
		{"directionalLight.diffuse", l.Diffuse},
		{"directionalLight.specular", l.Specular},
	} {
		if v := prog.Vec3s[x.name]; v != x.want {
			t.Fatalf("%s:\nhave %v\nwant %v", x.name, v, x.want)
		}
	}
	if !prog.Bools["directionalLight.bActive"] {
		t.Fatal("directionalLight.bActive:\nhave false\nwant true")
	}
}

func TestPoint(t *testing.T) {
	prog := newProg(t)
	l := Point{
		Position: mgl32.Vec3{-4, 8, 0},
		Ambient:  mgl32.Vec3{0.1, 0.1, 0.1},
		Diffuse:  mgl32.Vec3{0.6, 0.6, 0.6},
		Specular: mgl32.Vec3{0.3, 0.3, 0.3},
	}
	if err := l.Apply(prog, 1); err != nil {
		t.Fatalf("Point.Apply failed:\n%#v", err)
	}
	for _, x := range [...]struct {
		name string
		want mgl32.Vec3
	}{
		{"pointLights[1].position", l.Position},
		{"pointLights[1].ambient", l.Ambient},
		{"pointLights[1].diffuse", l.Diffuse},
		{"pointLights[1].specular", l.Specular},
	} {
		if v := prog.Vec3s[x.name]; v != x.want {
			t.Fatalf("%s:\nhave %v\nwant %v", x.name, v, x.want)
		}
	}
	if !prog.Bools["pointLights[1].bActive"] {
		t.Fatal("pointLights[1].bActive:\nhave false\nwant true")
	}
	// Block 0 must be untouched.
	if _, ok := prog.Vec3s["pointLights[0].position"]; ok {
		t.Fatal("pointLights[0].position: unexpectedly set")
	}
}

func TestPointIndex(t *testing.T) {
	prog := newProg(t)
	var l Point
	for _, i := range [...]int{-1, MaxPoint, MaxPoint + 1} {
		if err := l.Apply(prog, i); err == nil {
			t.Fatalf("Point.Apply(%d):\nhave nil error\nwant non-nil", i)
		}
	}
	for i := 0; i < MaxPoint; i++ {
		if err := l.Apply(prog, i); err != nil {
			t.Fatalf("Point.Apply(%d) failed:\n%#v", i, err)
		}
	}
}
