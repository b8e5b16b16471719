// Package morphia registers the QueryDSL backend for Morphia-mapped MongoDB
// entities.
package morphia

import (
	"github.com/vk/gengridgo/internal/catalog"
	"github.com/vk/gengridgo/internal/config"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Register registers the backend template with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.RegisterTemplate(&catalog.Template{
		Backend:     config.BackendMorphia,
		TaskName:    "compileQuerydslMorphia",
		Processor:   "com.querydsl.apt.morphia.MorphiaAnnotationProcessor",
		Description: "Generates QueryDSL query types from Morphia annotations.",
	})
}
