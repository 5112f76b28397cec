package panel

import (
	"context"
	"errors"

	adminpkg "github.com/goliatone/go-admin/pkg/admin"
)

// MenuBuilder ensures panel entries exist within a host application's
// navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures panel link metadata.
type MenuItem struct {
	Label    string
	Route    string
	Icon     string
	Position int
}

// Config wires the admin service + feature flags into a host shell.
type Config struct {
	EnablePanel     bool
	MenuCode        string
	MenuBuilder     MenuBuilder
	Service         *adminpkg.Service
	DefaultMenuItem MenuItem
}

// Panel exposes helpers for applications embedding the admin.
type Panel struct {
	cfg Config
}

// New creates a Panel helper that can seed navigation menus.
func New(cfg Config) (*Panel, error) {
	if cfg.EnablePanel && cfg.Service == nil {
		return nil, errors.New("panel: admin service is required when enabled")
	}
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	if cfg.DefaultMenuItem.Label == "" {
		cfg.DefaultMenuItem.Label = "Admin"
	}
	if cfg.DefaultMenuItem.Route == "" {
		cfg.DefaultMenuItem.Route = "admin.panel"
	}
	if cfg.DefaultMenuItem.Icon == "" {
		cfg.DefaultMenuItem.Icon = "layout-grid"
	}
	return &Panel{cfg: cfg}, nil
}

// Service exposes the configured admin service when the panel is enabled.
func (p *Panel) Service() *adminpkg.Service {
	if !p.cfg.EnablePanel {
		return nil
	}
	return p.cfg.Service
}

// Bootstrap seeds menu entries when panel support is enabled.
func (p *Panel) Bootstrap(ctx context.Context) error {
	if !p.cfg.EnablePanel || p.cfg.MenuBuilder == nil {
		return nil
	}
	return p.cfg.MenuBuilder.EnsureMenuItem(ctx, p.cfg.MenuCode, p.cfg.DefaultMenuItem)
}
