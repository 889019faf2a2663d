package render

// Material describes how a surface reflects light.
type Material struct {
	Ambient   MaterialColor
	Diffuse   MaterialColor
	Specular  MaterialColor
	Shininess float64 // Specular exponent
}

// NewMaterial creates a material with gray reflectances and opaque alpha.
func NewMaterial(ambient, diffuse, specular, shininess float64) *Material {
	return &Material{
		Ambient:   Gray(ambient, 1),
		Diffuse:   Gray(diffuse, 1),
		Specular:  Gray(specular, 1),
		Shininess: shininess,
	}
}
