// JSON file transfer: export of the selected records as a download,
// import of a full replacement list. Import destroys the current list,
// so it is gated on confirm=true and leaves everything untouched when
// the file does not pass the checks.
package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	kExportApi = "/api/export"
	kImportApi = "/api/import"
)

type TransferHandler struct {
	catalog *Catalog
}

func AddTransferHandler(catalog *Catalog) {
	handler := &TransferHandler{catalog: catalog}
	http.Handle(kExportApi, handler)
	http.Handle(kImportApi, handler)
}

func (h *TransferHandler) ServeHTTP(out http.ResponseWriter, req *http.Request) {
	if strings.HasPrefix(req.URL.Path, kImportApi) {
		h.apiImport(out, req)
		return
	}
	h.apiExport(out, req)
}

func (h *TransferHandler) apiExport(out http.ResponseWriter, r *http.Request) {
	defer ElapsedPrint("Export", time.Now())
	defer observeHandler("export", time.Now())
	data, count, err := h.catalog.ExportSelected()
	if err != nil {
		writeError(out, http.StatusBadRequest, err.Error())
		return
	}
	out.Header().Set("Content-Type", "application/json")
	out.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"device-data-selected-%d.json\"", count))
	out.Write(data)
}

func (h *TransferHandler) apiImport(out http.ResponseWriter, r *http.Request) {
	defer ElapsedPrint("Import", time.Now())
	defer observeHandler("import", time.Now())
	if r.Method != "POST" {
		writeError(out, http.StatusMethodNotAllowed, "import is POST only")
		return
	}
	// confirm travels in the query string, the body is the file itself.
	if r.URL.Query().Get("confirm") != "true" {
		writeError(out, http.StatusBadRequest, "import replaces all records, needs confirm=true")
		return
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(out, http.StatusBadRequest, "reading upload failed")
		return
	}
	count, err := h.catalog.ImportDevices(data)
	if err != nil {
		writeError(out, http.StatusBadRequest, err.Error())
		return
	}
	h.catalog.SetPage(1)
	countMutation("import")
	writeJSON(out, http.StatusOK, struct {
		Status   string `json:"status"`
		Imported int    `json:"imported"`
	}{"ok", count})
}
