package graphics

// TextureCache loads each texture path once
type TextureCache struct {
	textures map[string]*Texture
}

// NewTextureCache creates an empty cache
func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]*Texture)}
}

// Get returns the cached texture for path, loading it on first use.
// fallback is used only if the file does not exist.
func (c *TextureCache) Get(path string, fallback Fallback) (*Texture, error) {
	if tex, ok := c.textures[path]; ok {
		return tex, nil
	}

	tex, err := LoadTexture(path, fallback)
	if err != nil {
		return nil, err
	}

	c.textures[path] = tex
	return tex, nil
}

// Dispose deletes every cached texture
func (c *TextureCache) Dispose() {
	for path, tex := range c.textures {
		tex.Delete()
		delete(c.textures, path)
	}
}
