// Package jdo registers the QueryDSL backend for JDO-annotated entities.
package jdo

import (
	"github.com/vk/gengridgo/internal/catalog"
	"github.com/vk/gengridgo/internal/config"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Register registers the backend template with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.RegisterTemplate(&catalog.Template{
		Backend:     config.BackendJDO,
		TaskName:    "compileQuerydslJdo",
		Processor:   "com.querydsl.apt.jdo.JDOAnnotationProcessor",
		Description: "Generates QueryDSL query types from JDO annotations.",
	})
}
