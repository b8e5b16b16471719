// Package jpa registers the QueryDSL backend for JPA-annotated entities.
package jpa

import (
	"github.com/vk/gengridgo/internal/catalog"
	"github.com/vk/gengridgo/internal/config"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Register registers the backend template with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.RegisterTemplate(&catalog.Template{
		Backend:     config.BackendJPA,
		TaskName:    "compileQuerydslJpa",
		Processor:   "com.querydsl.apt.jpa.JPAAnnotationProcessor",
		Description: "Generates QueryDSL query types from JPA annotations.",
	})
}
