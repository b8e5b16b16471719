// Package hibernate registers the QueryDSL backend for entities mapped with
// Hibernate-specific annotations.
package hibernate

import (
	"github.com/vk/gengridgo/internal/catalog"
	"github.com/vk/gengridgo/internal/config"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Register registers the backend template with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.RegisterTemplate(&catalog.Template{
		Backend:     config.BackendHibernate,
		TaskName:    "compileQuerydslHibernate",
		Processor:   "com.querydsl.apt.hibernate.HibernateAnnotationProcessor",
		Description: "Generates QueryDSL query types from Hibernate annotations.",
	})
}
