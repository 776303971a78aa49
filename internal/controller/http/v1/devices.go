package v1

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
	"github.com/kurochkinivan/device_warehouse/internal/grid"
	"github.com/kurochkinivan/device_warehouse/internal/search"
)

type DevicesHandler struct {
	log     *slog.Logger
	devices DeviceReader
	shelves ShelfReader
	writer  PlacementWriter
}

func NewDevicesHandler(log *slog.Logger, devices DeviceReader, shelves ShelfReader, writer PlacementWriter) *DevicesHandler {
	return &DevicesHandler{
		log:     log,
		devices: devices,
		shelves: shelves,
		writer:  writer,
	}
}

type DevicesResponse struct {
	Devices    []domain.Device `json:"devices"`
	Pagination Pagination      `json:"pagination"`
}

// ListDevices searches every device; an empty q lists them all.
func (h *DevicesHandler) ListDevices(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.devices.Search(r.URL.Query().Get("q")))
}

// ListUnassigned searches the pool only.
func (h *DevicesHandler) ListUnassigned(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, search.Filter(r.URL.Query().Get("q"), h.devices.UnassignedDevices()))
}

func (h *DevicesHandler) list(w http.ResponseWriter, r *http.Request, devices []domain.Device) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	devices, pagination := paginate(devices, page, limit)

	writeJSON(w, http.StatusOK, DevicesResponse{Devices: devices, Pagination: pagination})
}

func (h *DevicesHandler) GetDevice(w http.ResponseWriter, r *http.Request) {
	device, err := h.devices.Device(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, device)
}

type PlaceDeviceRequest struct {
	ShelfID   string `json:"shelf_id"`
	SlotIndex int    `json:"slot_index"`
}

func (h *DevicesHandler) PlaceDevice(w http.ResponseWriter, r *http.Request) {
	var req PlaceDeviceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if req.ShelfID == "" {
		writeError(w, r, h.log, fmt.Errorf("%w: shelf_id is required", errBadRequest))
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.writer.PlaceDevice(r.Context(), id, req.ShelfID, req.SlotIndex); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	h.respondDevice(w, r, id)
}

func (h *DevicesHandler) UnplaceDevice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.writer.UnplaceDevice(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	h.respondDevice(w, r, id)
}

type SwapDevicesRequest struct {
	DeviceIDA string `json:"device_id_a"`
	DeviceIDB string `json:"device_id_b"`
}

func (h *DevicesHandler) SwapDevices(w http.ResponseWriter, r *http.Request) {
	var req SwapDevicesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.writer.SwapDevices(r.Context(), req.DeviceIDA, req.DeviceIDB); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DevicesHandler) respondDevice(w http.ResponseWriter, r *http.Request, id string) {
	device, err := h.devices.Device(id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, device)
}

type placementRecord struct {
	DeviceID       string `csv:"device_id"`
	DeviceName     string `csv:"device_name"`
	Type           string `csv:"type"`
	AssetNumber    string `csv:"asset_number"`
	SerialNumber   string `csv:"serial_number"`
	ShelfID        string `csv:"shelf_id"`
	ShelfName      string `csv:"shelf_name"`
	SlotIndex      *int   `csv:"slot_index"`
	SlotIdentifier string `csv:"slot_identifier"`
}

// ExportPlacements writes every device with its location as CSV. Pooled
// devices have empty location columns.
func (h *DevicesHandler) ExportPlacements(w http.ResponseWriter, r *http.Request) {
	shelves := make(map[string]domain.Shelf)
	for _, s := range h.shelves.Shelves() {
		shelves[s.ID] = s
	}

	devices := h.devices.Devices()
	records := make([]placementRecord, 0, len(devices))

	for _, d := range devices {
		record := placementRecord{
			DeviceID:     d.ID,
			DeviceName:   d.Name,
			Type:         d.Type,
			AssetNumber:  d.AssetNumber,
			SerialNumber: d.SerialNumber,
		}

		if d.Placed() {
			record.ShelfID = *d.ShelfID
			record.SlotIndex = d.SlotIndex

			if shelf, ok := shelves[*d.ShelfID]; ok {
				record.ShelfName = shelf.Name
				record.SlotIdentifier = grid.SlotIdentifier(shelf, *d.SlotIndex)
			}
		}

		records = append(records, record)
	}

	data, err := csvutil.Marshal(records)
	if err != nil {
		writeError(w, r, h.log, fmt.Errorf("failed to encode placements: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="placements.csv"`)
	w.Write(data)
}
