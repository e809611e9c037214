package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if strings.HasPrefix(body, "{") || strings.HasPrefix(body, "[") {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, req)
	return recorder
}

func TestPageEndpoint(t *testing.T) {
	h := &ListHandler{catalog: freshCatalog()}
	response := doRequest(h, "GET", kPageApi, "")
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "application/json", response.Header().Get("Content-Type"))

	var view PageView
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &view))
	assert.Equal(t, 5, view.TotalUnfiltered)
	assert.Len(t, view.Items, 5)
}

func TestSortEndpointNeedsColumn(t *testing.T) {
	h := &ListHandler{catalog: freshCatalog()}
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "POST", kSortApi, "").Code)

	response := doRequest(h, "POST", kSortApi+"?column=volume", "")
	assert.Equal(t, http.StatusOK, response.Code)
	var view PageView
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &view))
	assert.Equal(t, SortState{Column: "volume", Order: "asc"}, view.Sort)
}

func TestDeviceUpsertValidation(t *testing.T) {
	h := &DeviceHandler{catalog: freshCatalog()}

	// Missing almost everything: rejected with per-field messages.
	response := doRequest(h, "POST", kDeviceApi, `{"name": "Incomplete"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, response.Code)
	var failure struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &failure))
	assert.Contains(t, failure.Errors, "creator")
	assert.Contains(t, failure.Errors, "completionDate")
	assert.NotContains(t, failure.Errors, "name")

	valid := `{"creator": "X", "name": "Fresh", "microarchitecture": "M",
		"minecraftEdition": "Java", "completionDate": "2024-06-01",
		"cores": 1, "threads": 1, "bit": 8,
		"volume": {"x": 1, "y": 1, "z": 1}}`
	response = doRequest(h, "POST", kDeviceApi, valid)
	assert.Equal(t, http.StatusOK, response.Code)
	var success struct {
		Id int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &success))
	assert.Equal(t, 6, success.Id)
}

func TestDeviceDeleteIsConfirmGated(t *testing.T) {
	catalog := freshCatalog()
	h := &DeviceHandler{catalog: catalog}
	catalog.SetSelectedIds([]int{1})

	response := doRequest(h, "POST", kDeviceDeleteApi, "")
	assert.Equal(t, http.StatusBadRequest, response.Code)
	assert.Equal(t, 5, catalog.PageView().TotalUnfiltered, "nothing deleted")

	response = doRequest(h, "POST", kDeviceDeleteApi+"?confirm=true", "")
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, 4, catalog.PageView().TotalUnfiltered)
}

func TestDeviceDetailPreview(t *testing.T) {
	catalog := freshCatalog()
	h := &DeviceHandler{catalog: catalog}

	settings := catalog.SettingsSnapshot()
	settings.PreviewSettings["description"] = false
	require.NoError(t, catalog.ApplySettings(settings))

	var detail deviceDetail
	response := doRequest(h, "GET", kDeviceApi+"?id=1&preview=1", "")
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &detail))
	assert.Empty(t, detail.Device.Description, "hidden by preview settings")
	assert.NotEmpty(t, detail.Device.Creator, "still shown")
	assert.Equal(t, 500, detail.TotalVolume)

	// Full detail keeps everything.
	response = doRequest(h, "GET", kDeviceApi+"?id=1", "")
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &detail))
	assert.NotEmpty(t, detail.Device.Description)
	assert.Equal(t, "high", detail.ScoreTiers["rcbsp"])

	assert.Equal(t, http.StatusNotFound, doRequest(h, "GET", kDeviceApi+"?id=99", "").Code)
}

func TestTagEndpointOps(t *testing.T) {
	catalog := freshCatalog()
	h := &TagHandler{catalog: catalog}

	assert.Equal(t, http.StatusOK, doRequest(h, "POST", kTagsApi+"?op=add&name=ALU", "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "POST", kTagsApi+"?op=add&name=alu", "").Code)
	assert.Equal(t, http.StatusOK,
		doRequest(h, "POST", kTagsApi+"?op=rename&old=ALU&new=FPU", "").Code)

	// Delete needs confirmation.
	assert.Equal(t, http.StatusBadRequest,
		doRequest(h, "POST", kTagsApi+"?op=delete&name=FPU", "").Code)
	assert.Equal(t, http.StatusOK,
		doRequest(h, "POST", kTagsApi+"?op=delete&name=FPU&confirm=true", "").Code)
	assert.NotContains(t, catalog.Tags(), "FPU")
}

func TestSettingsEndpointValidation(t *testing.T) {
	catalog := freshCatalog()
	h := &SettingsHandler{catalog: catalog}

	response := doRequest(h, "POST", kSettingsApi, `{"itemsPerPage": 3}`)
	assert.Equal(t, http.StatusUnprocessableEntity, response.Code, "below minimum")
	response = doRequest(h, "POST", kSettingsApi, `{"itemsPerPage": 500}`)
	assert.Equal(t, http.StatusUnprocessableEntity, response.Code, "above maximum")
	response = doRequest(h, "POST", kSettingsApi, `{"theme": "sepia"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, response.Code)

	response = doRequest(h, "POST", kSettingsApi, `{"itemsPerPage": 50, "theme": "dark"}`)
	assert.Equal(t, http.StatusOK, response.Code)
	settings := catalog.SettingsSnapshot()
	assert.Equal(t, 50, settings.ItemsPerPage)
	assert.Equal(t, "dark", settings.Theme)
}

func TestSettingsResetIsConfirmGated(t *testing.T) {
	catalog := freshCatalog()
	h := &SettingsHandler{catalog: catalog}
	settings := catalog.SettingsSnapshot()
	settings.Theme = "dark"
	require.NoError(t, catalog.ApplySettings(settings))

	assert.Equal(t, http.StatusBadRequest, doRequest(h, "POST", kSettingsResetApi, "").Code)
	assert.Equal(t, "dark", catalog.SettingsSnapshot().Theme)

	assert.Equal(t, http.StatusOK,
		doRequest(h, "POST", kSettingsResetApi+"?confirm=true", "").Code)
	assert.Equal(t, "light", catalog.SettingsSnapshot().Theme)
}

func TestImportEndpointIsConfirmGated(t *testing.T) {
	catalog := freshCatalog()
	h := &TransferHandler{catalog: catalog}
	payload := `[{"id": 1, "name": "Only", "creator": "X"}]`

	assert.Equal(t, http.StatusBadRequest, doRequest(h, "POST", kImportApi, payload).Code)
	assert.Equal(t, 5, catalog.PageView().TotalUnfiltered)

	response := doRequest(h, "POST", kImportApi+"?confirm=true", payload)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, 1, catalog.PageView().TotalUnfiltered)

	// A rejected file changes nothing even when confirmed.
	response = doRequest(h, "POST", kImportApi+"?confirm=true", `{"oops": 1}`)
	assert.Equal(t, http.StatusBadRequest, response.Code)
	assert.Equal(t, 1, catalog.PageView().TotalUnfiltered)
}

func TestExportEndpoint(t *testing.T) {
	catalog := freshCatalog()
	h := &TransferHandler{catalog: catalog}

	assert.Equal(t, http.StatusBadRequest, doRequest(h, "GET", kExportApi, "").Code)

	catalog.SetSelectedIds([]int{2, 5})
	response := doRequest(h, "GET", kExportApi, "")
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Header().Get("Content-Disposition"),
		"device-data-selected-2.json")
	var exported []Device
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &exported))
	assert.Len(t, exported, 2)
}

func TestCompareEndpoint(t *testing.T) {
	catalog := freshCatalog()
	h := &CompareHandler{catalog: catalog}

	assert.Equal(t, http.StatusBadRequest, doRequest(h, "GET", kCompareApi, "").Code)

	response := doRequest(h, "GET", kCompareApi+"?a=1&b=2", "")
	assert.Equal(t, http.StatusOK, response.Code)
	var result struct {
		A    string          `json:"a"`
		Rows []ComparisonRow `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &result))
	assert.Equal(t, "NX RED V1 CPU", result.A)
	assert.NotEmpty(t, result.Rows)

	// Falls back to a two-device selection.
	catalog.SetSelectedIds([]int{3, 4})
	assert.Equal(t, http.StatusOK, doRequest(h, "GET", kCompareApi, "").Code)

	assert.Equal(t, http.StatusNotFound,
		doRequest(h, "GET", kCompareApi+"?a=1&b=99", "").Code)
}
