package app

import (
	"github.com/vk/gengridgo/internal/catalog"
	"github.com/vk/gengridgo/modules/hibernate"
	"github.com/vk/gengridgo/modules/jdo"
	"github.com/vk/gengridgo/modules/jpa"
	"github.com/vk/gengridgo/modules/morphia"
	"github.com/vk/gengridgo/modules/roo"
	"github.com/vk/gengridgo/modules/springdatamongo"
)

// coreModules is the definitive list of all backend modules that are
// compiled into the gengridgo binary.
var coreModules = []catalog.Module{
	&jpa.Module{},
	&jdo.Module{},
	&hibernate.Module{},
	&morphia.Module{},
	&roo.Module{},
	&springdatamongo.Module{},
}
