package handlers

import (
	"janoubco-monitor/internal/inventory"
	"janoubco-monitor/internal/users"
)

// Handlers bundles the two core services behind the HTTP pages.
type Handlers struct {
	Users     *users.Service
	Inventory *inventory.Service
}

func New(usersSvc *users.Service, inv *inventory.Service) *Handlers {
	return &Handlers{Users: usersSvc, Inventory: inv}
}
