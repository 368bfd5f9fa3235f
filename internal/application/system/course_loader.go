package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// LoadCourse converts a CourseConfig into a Course entity
func LoadCourse(cfg *config.CourseConfig) *entity.Course {
	surfaces := make([]entity.Surface, 0, len(cfg.Surfaces))
	for _, sc := range cfg.Surfaces {
		surfaces = append(surfaces, entity.Surface{
			Name:   sc.Name,
			MinX:   sc.MinX,
			MinZ:   sc.MinZ,
			MaxX:   sc.MaxX,
			MaxZ:   sc.MaxZ,
			Base:   sc.Base,
			GradeX: sc.GradeX,
			GradeZ: sc.GradeZ,
			Layer:  entity.ParseLayer(sc.Layer),
		})
	}

	name := cfg.Name
	if name == "" {
		name = cfg.ID
	}

	return &entity.Course{
		Name:     name,
		Surfaces: surfaces,
		Spawn:    mgl64.Vec3{cfg.Spawn.X, cfg.Spawn.Y, cfg.Spawn.Z},
		KillY:    cfg.KillY,
	}
}
