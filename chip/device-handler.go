// Device record CRUD: detail view, add/edit with inline validation,
// selection delete and the favorite toggle.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	kDeviceApi         = "/api/device"
	kDeviceDeleteApi   = "/api/device/delete"
	kDeviceFavoriteApi = "/api/device/favorite"
)

type DeviceHandler struct {
	catalog *Catalog
}

func AddDeviceHandler(catalog *Catalog) {
	handler := &DeviceHandler{catalog: catalog}
	http.Handle(kDeviceApi, handler)
	http.Handle(kDeviceDeleteApi, handler)
	http.Handle(kDeviceFavoriteApi, handler)
}

func (h *DeviceHandler) ServeHTTP(out http.ResponseWriter, req *http.Request) {
	switch {
	case strings.HasPrefix(req.URL.Path, kDeviceDeleteApi):
		h.apiDelete(out, req)
	case strings.HasPrefix(req.URL.Path, kDeviceFavoriteApi):
		h.apiFavorite(out, req)
	case req.Method == "POST":
		h.apiUpsert(out, req)
	default:
		h.apiDetail(out, req)
	}
}

// deviceDetail is the record plus what the detail dialog derives from
// it. With preview=1 only the fields enabled in the preview settings
// carry data.
type deviceDetail struct {
	Device      Device            `json:"device"`
	TotalVolume int               `json:"totalVolume"`
	ScoreTiers  map[string]string `json:"scoreTiers"`
}

func (h *DeviceHandler) apiDetail(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("device-detail", time.Now())
	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		writeError(out, http.StatusBadRequest, "missing or malformed id")
		return
	}
	device := h.catalog.FindById(id)
	if device == nil {
		writeError(out, http.StatusNotFound, fmt.Sprintf("no device with id %d", id))
		return
	}
	if r.FormValue("preview") == "1" {
		applyPreview(device, h.catalog.PreviewSettings())
	}
	detail := deviceDetail{
		Device:      *device,
		TotalVolume: device.Volume.Total(),
		ScoreTiers:  make(map[string]string),
	}
	settings := h.catalog.ScoreSettings()
	for _, key := range scoreKeys {
		detail.ScoreTiers[key] = ScoreTier(device.Scores[key], key, settings)
	}
	writeJSON(out, http.StatusOK, detail)
}

// applyPreview blanks out the fields the preview settings hide, so the
// hover card only carries what the user chose to see.
func applyPreview(d *Device, preview map[string]bool) {
	if !preview["creator"] {
		d.Creator = ""
	}
	if !preview["score"] {
		d.Scores = map[string]*float64{}
	}
	if !preview["speed"] {
		d.Speeds = Speeds{}
	}
	if !preview["volume"] {
		d.Volume = Volume{}
	}
	if !preview["description"] {
		d.Description = ""
	}
}

type upsertRequest struct {
	EditingId *int `json:"editingId"`
	Device
}

// apiUpsert creates or, when editingId is set, updates a record. Any
// validation problem blocks the whole submission; the response maps
// field names to messages for inline display.
func (h *DeviceHandler) apiUpsert(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("device-upsert", time.Now())
	var request upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(out, http.StatusBadRequest, "malformed device record")
		return
	}
	cleanupDevice(&request.Device)
	if problems := ValidateDevice(&request.Device); len(problems) > 0 {
		writeJSON(out, http.StatusUnprocessableEntity, struct {
			Status string            `json:"status"`
			Errors map[string]string `json:"errors"`
		}{"error", problems})
		return
	}
	if request.EditingId != nil {
		updated, err := h.catalog.UpdateDevice(*request.EditingId, request.Device)
		if err != nil {
			writeError(out, http.StatusNotFound, err.Error())
			return
		}
		request.Device = updated
		countMutation("edit")
	} else {
		request.Device = h.catalog.AddDevice(request.Device)
		countMutation("add")
	}
	writeJSON(out, http.StatusOK, struct {
		Status string `json:"status"`
		Id     int    `json:"id"`
	}{"ok", request.Device.Id})
}

// apiDelete removes all currently selected records. Destructive, so it
// insists on confirm=true.
func (h *DeviceHandler) apiDelete(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("device-delete", time.Now())
	if !confirmGiven(r) {
		writeError(out, http.StatusBadRequest, "deletion needs confirm=true")
		return
	}
	deleted := h.catalog.DeleteSelected()
	if deleted == 0 {
		writeError(out, http.StatusBadRequest, "nothing selected")
		return
	}
	countMutation("delete")
	writeJSON(out, http.StatusOK, struct {
		Status  string `json:"status"`
		Deleted int    `json:"deleted"`
	}{"ok", deleted})
}

func (h *DeviceHandler) apiFavorite(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("device-favorite", time.Now())
	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		writeError(out, http.StatusBadRequest, "missing or malformed id")
		return
	}
	device, err := h.catalog.ToggleFavorite(id)
	if err != nil {
		writeError(out, http.StatusNotFound, err.Error())
		return
	}
	countMutation("favorite")
	writeJSON(out, http.StatusOK, struct {
		Status     string `json:"status"`
		Id         int    `json:"id"`
		IsFavorite bool   `json:"isFavorite"`
	}{"ok", id, device.IsFavorite})
}
