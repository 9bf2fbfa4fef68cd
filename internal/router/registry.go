// Package router assembles the HTTP route table. Feature areas plug in
// as Modules so startup code never has to list individual endpoints.
package router

import "github.com/gin-gonic/gin"

// Module is a cohesive set of routes, such as the account endpoints,
// that mounts itself on the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects modules and group-wide middleware, then mounts
// everything under /api in a single pass.
type Registry struct {
	Engine *gin.Engine
	API    *gin.RouterGroup

	middleware []gin.HandlerFunc
	modules    []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use queues middleware that applies to every /api route. Must be
// called before RegisterAll.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middleware = append(r.middleware, mw...)
}

// Add queues modules; nothing is mounted until RegisterAll runs.
func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

// RegisterAll applies the queued middleware and mounts every module.
func (r *Registry) RegisterAll() {
	if len(r.middleware) > 0 {
		r.API.Use(r.middleware...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
