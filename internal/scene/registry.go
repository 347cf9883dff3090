package scene

import (
	"go.uber.org/zap"

	"github.com/fumi-217/acg-tokyo-tower/internal/logger"
)

// Registry holds every role-tagged object, grouped by variant. Registration
// happens once at scene build time; animators read the typed slices every
// frame without any dynamic lookup.
type Registry struct {
	tower     *Tower
	bridges   []*Bridge
	buildings []*Building
	yachts    []*Yacht
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a role-tagged object. There is a single tower slot; a second
// tower registration replaces the first and logs the collision.
func (r *Registry) Add(role Role) {
	switch v := role.(type) {
	case *Tower:
		if r.tower != nil {
			logger.Log.Warn("tower role registered twice, replacing")
		}
		r.tower = v
	case *Bridge:
		r.bridges = append(r.bridges, v)
	case *Building:
		r.buildings = append(r.buildings, v)
	case *Yacht:
		r.yachts = append(r.yachts, v)
	}
	logger.Log.Debug("role registered", zap.String("role", role.roleName()))
}

// Tower returns the registered tower, or nil.
func (r *Registry) Tower() *Tower { return r.tower }

func (r *Registry) Bridges() []*Bridge { return r.bridges }

func (r *Registry) Buildings() []*Building { return r.buildings }

func (r *Registry) Yachts() []*Yacht { return r.yachts }

// Len reports the number of registered objects.
func (r *Registry) Len() int {
	n := len(r.bridges) + len(r.buildings) + len(r.yachts)
	if r.tower != nil {
		n++
	}
	return n
}
