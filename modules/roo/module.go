// Package roo registers the QueryDSL backend for Spring Roo entities.
package roo

import (
	"github.com/vk/gengridgo/internal/catalog"
	"github.com/vk/gengridgo/internal/config"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Register registers the backend template with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.RegisterTemplate(&catalog.Template{
		Backend:     config.BackendRoo,
		TaskName:    "compileQuerydslRoo",
		Processor:   "com.querydsl.apt.roo.RooAnnotationProcessor",
		Description: "Generates QueryDSL query types from Spring Roo entities.",
	})
}
