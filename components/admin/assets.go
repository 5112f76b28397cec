package admin

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
)

const (
	// DefaultAssetsPath is the local mount point for the embedded shell assets.
	DefaultAssetsPath = "/admin/assets/"
	// envChartCDN overrides the host charts load the ECharts runtime from.
	envChartCDN = "GO_ADMIN_ECHARTS_CDN"
)

//go:embed assets/static/*
var embeddedAssets embed.FS

// AssetsFS exposes the embedded shell stylesheet and static files rooted at
// the static directory.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets/static")
	if err != nil {
		// The directory is embedded at build time.
		panic(fmt.Errorf("admin: failed to prepare embedded assets: %w", err))
	}
	return sub
}

// AssetsHandler returns an http.Handler that serves the embedded assets from
// the given prefix.
func AssetsHandler(prefix string) http.Handler {
	if prefix == "" {
		prefix = DefaultAssetsPath
	}
	prefix = ensureTrailingSlash(prefix)
	return http.StripPrefix(prefix, http.FileServer(http.FS(AssetsFS())))
}

// ChartAssetsHost returns the host chart pages load the ECharts runtime
// from, respecting GO_ADMIN_ECHARTS_CDN. Empty keeps the go-echarts default
// CDN.
func ChartAssetsHost() string {
	if host := strings.TrimSpace(os.Getenv(envChartCDN)); host != "" {
		return ensureTrailingSlash(host)
	}
	return ""
}

func ensureTrailingSlash(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasSuffix(value, "/") {
		return value
	}
	return value + "/"
}
