package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxmesh/internal/graphics"
	"voxmesh/internal/marching"
	"voxmesh/internal/mesh"
	"voxmesh/internal/volume"
)

const (
	windowWidth  = 900
	windowHeight = 600
)

func init() {
	runtime.LockOSThread()
}

const vertexSrc = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec3 tangent;
layout(location = 3) in vec2 uv;
uniform mat4 projection;
uniform mat4 view;
out vec3 fragNormal;
void main() {
	fragNormal = normal;
	gl_Position = projection * view * vec4(position, 1.0);
}`

const fragmentSrc = `#version 410 core
in vec3 fragNormal;
uniform vec3 streamColor;
out vec4 fragColor;
void main() {
	vec3 lightDir = normalize(vec3(0.4, 0.8, 0.5));
	float diff = abs(dot(normalize(fragNormal), lightDir));
	fragColor = vec4(streamColor * (0.35 + 0.65 * diff), 1.0);
}`

// streamBatch is one uploaded vertex stream plus its draw color.
type streamBatch struct {
	vao, vbo uint32
	count    int32
	color    mgl32.Vec3
}

func uploadStream(s mesh.Stream, color mgl32.Vec3) streamBatch {
	batch := streamBatch{count: int32(len(s)), color: color}
	if len(s) == 0 {
		return batch
	}
	vertices := mesh.Interleaved(s)

	gl.GenVertexArrays(1, &batch.vao)
	gl.BindVertexArray(batch.vao)
	gl.GenBuffers(1, &batch.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, batch.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(mesh.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 2, gl.FLOAT, false, stride, gl.PtrOffset(9*4))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return batch
}

func main() {
	var (
		size         = flag.Int("size", 32, "volume dimensions (cubic)")
		seed         = flag.Int64("seed", 1, "noise seed")
		surfaceLevel = flag.Float64("surface", 0, "surface level threshold")
		algoName     = flag.String("algorithm", "marching-cubes", "extraction algorithm")
	)
	flag.Parse()

	algo, err := marching.ParseAlgorithm(*algoName)
	if err != nil {
		log.Fatalf("bad algorithm selection: %v", err)
	}

	field := volume.DefaultNoiseField(*seed)
	field.BaseHeight = float64(*size) / 2
	field.GradientStrength = float64(*size) / 4
	vol := volume.FromSampler(*size, *size, *size, *surfaceLevel, field.Sampler())

	buffers, err := marching.Extract(vol, algo)
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}
	log.Printf("extracted %d triangles (top %d, side %d, bottom %d)",
		buffers.TriangleCount(),
		buffers.Top.TriangleCount(), buffers.Side.TriangleCount(), buffers.Bottom.TriangleCount())

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "voxview", nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		panic(err)
	}

	shader, err := graphics.NewShader(vertexSrc, fragmentSrc)
	if err != nil {
		panic(err)
	}
	defer gl.DeleteProgram(shader.ID)

	// Distinct color per stream mirrors the distinct-material contract.
	batches := []streamBatch{
		uploadStream(buffers.Top, mgl32.Vec3{0.42, 0.72, 0.33}),
		uploadStream(buffers.Side, mgl32.Vec3{0.55, 0.45, 0.35}),
		uploadStream(buffers.Bottom, mgl32.Vec3{0.45, 0.45, 0.5}),
	}

	half := float32(*size) / 2
	camera := graphics.NewOrbitCamera(mgl32.Vec3{half, half, half}, float32(*size)*1.8, windowWidth, windowHeight)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.12, 0.15, 1.0)

	shader.Use()
	projection := camera.GetProjectionMatrix()
	shader.SetMatrix4("projection", &projection[0])

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		camera.Yaw = float32(glfw.GetTime()) * 0.4
		view := camera.GetViewMatrix()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		shader.Use()
		shader.SetMatrix4("view", &view[0])
		for _, batch := range batches {
			if batch.count == 0 {
				continue
			}
			shader.SetVector3("streamColor", batch.color.X(), batch.color.Y(), batch.color.Z())
			gl.BindVertexArray(batch.vao)
			gl.DrawArrays(gl.TRIANGLES, 0, batch.count)
		}
		gl.BindVertexArray(0)

		window.SwapBuffers()
		glfw.PollEvents()
	}

	for _, batch := range batches {
		if batch.count == 0 {
			continue
		}
		gl.DeleteBuffers(1, &batch.vbo)
		gl.DeleteVertexArrays(1, &batch.vao)
	}
}
