package floor

import (
	"fmt"

	"spotlit/assets"
	"spotlit/internal/config"
	"spotlit/internal/graphics"
	"spotlit/internal/graphics/geometry"
	renderer "spotlit/internal/graphics/renderer"
	"spotlit/internal/lighting"
	"spotlit/internal/profiling"
	"spotlit/internal/scene"
)

const (
	VertShader = "shaders/ads_multi_spot.vert"
	FragShader = "shaders/ads_tex_multi_spot.frag"
)

// Texture units of the diffuse and specular maps
const (
	diffuseUnit  = 0
	specularUnit = 1
)

// Floor is the textured ground plane
type Floor struct {
	shader   *graphics.Shader
	mesh     *graphics.Mesh
	textures *graphics.TextureCache

	diffuse  *graphics.Texture
	specular *graphics.Texture
}

func NewFloor() *Floor {
	return &Floor{textures: graphics.NewTextureCache()}
}

// Init compiles the textured program and loads both maps named in config
func (f *Floor) Init() error {
	var err error
	f.shader, err = graphics.NewShader(assets.Shaders, VertShader, FragShader)
	if err != nil {
		return err
	}

	diffusePath, specularPath := config.GetFloorTextures()
	if f.diffuse, err = f.textures.Get(diffusePath, graphics.DiffuseFallback); err != nil {
		return fmt.Errorf("floor diffuse map: %w", err)
	}
	if f.specular, err = f.textures.Get(specularPath, graphics.SpecularFallback); err != nil {
		return fmt.Errorf("floor specular map: %w", err)
	}

	f.shader.Use()
	f.shader.SetInt("material.diffuse", diffuseUnit)
	f.shader.SetInt("material.specular", specularUnit)

	f.mesh = graphics.NewMesh(geometry.Plane())
	return nil
}

// Render draws the floor under the rig
func (f *Floor) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderable.floor")()

	f.shader.Use()
	f.shader.SetMat4("projection", ctx.Proj)
	f.shader.SetMat4("view", ctx.View)
	f.shader.SetMat4("model", scene.FloorModel())
	ctx.Rig.Apply(f.shader, ctx.ViewPos)
	f.shader.SetFloat("material.shininess", lighting.FloorShininess)

	f.diffuse.Bind(diffuseUnit)
	f.specular.Bind(specularUnit)
	f.mesh.Render()
}

// Dispose releases GL resources
func (f *Floor) Dispose() {
	if f.mesh != nil {
		f.mesh.Dispose()
	}
	f.textures.Dispose()
	if f.shader != nil {
		f.shader.Delete()
	}
}

func (f *Floor) SetViewport(width, height int) {}
