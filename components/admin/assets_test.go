package admin

import (
	"io/fs"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAssetsFSRootedAtStaticDir(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "admin.css")
	if err != nil {
		t.Fatalf("read embedded stylesheet: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("embedded stylesheet is empty")
	}
}

func TestAssetsHandlerServesStylesheet(t *testing.T) {
	handler := AssetsHandler("")

	req := httptest.NewRequest("GET", DefaultAssetsPath+"admin.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Fatalf("unexpected content type %q", ct)
	}
}
