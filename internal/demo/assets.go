package demo

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/curvewalk/internal/assets"
	"github.com/Faultbox/curvewalk/internal/config"
	"github.com/Faultbox/curvewalk/internal/engine/mesh"
	"github.com/Faultbox/curvewalk/internal/engine/texture"
	"github.com/Faultbox/curvewalk/internal/logger"
)

// Asset is an object's decoded data before GPU upload.
type Asset struct {
	Config config.ObjectConfig
	Mesh   *mesh.Mesh
	Image  *image.RGBA // nil selects the fallback texture
}

// NewAssetManager creates a manager searching roots in order, later roots
// first. Roots that are not directories are logged and skipped.
func NewAssetManager(roots []string) *assets.Manager {
	files := assets.NewManager()
	for _, root := range roots {
		if err := files.AddRoot(root); err != nil {
			logger.Warn("skipping asset root", zap.String("root", root), zap.Error(err))
		}
	}
	return files
}

// LoadAssets reads every configured mesh and texture. An object whose mesh
// fails to load is dropped; a texture failure keeps the object with the
// fallback texture. Every failure is collected into the returned error, so
// a non-nil error does not mean the asset list is empty.
func LoadAssets(files *assets.Manager, objects []config.ObjectConfig) ([]Asset, error) {
	var (
		out  []Asset
		errs error
	)

	for _, oc := range objects {
		m, err := loadMesh(files, oc.Mesh)
		if err != nil {
			logger.Error("skipping object, mesh failed to load",
				zap.String("object", oc.Name),
				zap.String("mesh", oc.Mesh),
				zap.Error(err),
			)
			errs = multierr.Append(errs, fmt.Errorf("object %q: %w", oc.Name, err))
			continue
		}

		color := oc.Color
		if color == (mgl32.Vec3{}) {
			color = mesh.DefaultColor
		}
		m.SetColor(color)

		a := Asset{Config: oc, Mesh: m}
		if oc.Texture != "" {
			img, err := loadTexture(files, oc.Texture)
			if err != nil {
				logger.Warn("using fallback texture",
					zap.String("object", oc.Name),
					zap.String("texture", oc.Texture),
					zap.Error(err),
				)
				errs = multierr.Append(errs, fmt.Errorf("object %q: %w", oc.Name, err))
			} else {
				a.Image = img
			}
		}

		c, size := m.Bounds.Center(), m.Bounds.Size()
		logger.Debug("object loaded",
			zap.String("object", oc.Name),
			zap.Int("triangles", m.TriangleCount()),
			zap.Float32s("center", c[:]),
			zap.Float32s("size", size[:]),
			zap.Bool("textured", a.Image != nil),
		)
		out = append(out, a)
	}

	hits, misses := files.Stats()
	logger.Debug("asset files read", zap.Int("cache_hits", hits), zap.Int("cache_misses", misses))

	return out, errs
}

func loadMesh(files *assets.Manager, path string) (*mesh.Mesh, error) {
	data, err := files.Load(path)
	if err != nil {
		return nil, err
	}
	m, err := mesh.ParseOBJ(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

func loadTexture(files *assets.Manager, path string) (*image.RGBA, error) {
	data, err := files.Load(path)
	if err != nil {
		return nil, err
	}
	img, err := texture.Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
