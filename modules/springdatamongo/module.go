// Package springdatamongo registers the QueryDSL backend for Spring Data
// MongoDB documents.
package springdatamongo

import (
	"github.com/vk/gengridgo/internal/catalog"
	"github.com/vk/gengridgo/internal/config"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Register registers the backend template with the catalog.
func (m *Module) Register(c *catalog.Catalog) {
	c.RegisterTemplate(&catalog.Template{
		Backend:     config.BackendSpringDataMongo,
		TaskName:    "compileQuerydslSpringDataMongo",
		Processor:   "org.springframework.data.mongodb.repository.support.MongoAnnotationProcessor",
		Description: "Generates QueryDSL query types from Spring Data MongoDB documents.",
	})
}
