package v1

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
	"github.com/kurochkinivan/device_warehouse/internal/grid"
)

type ShelvesHandler struct {
	log      *slog.Logger
	shelves  ShelfReader
	writer   ShelfWriter
	renderer ShelfMapRenderer
}

func NewShelvesHandler(log *slog.Logger, shelves ShelfReader, writer ShelfWriter, renderer ShelfMapRenderer) *ShelvesHandler {
	return &ShelvesHandler{
		log:      log,
		shelves:  shelves,
		writer:   writer,
		renderer: renderer,
	}
}

func (h *ShelvesHandler) ListShelves(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.shelves.Shelves())
}

func (h *ShelvesHandler) GetShelf(w http.ResponseWriter, r *http.Request) {
	shelf, err := h.shelves.Shelf(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, shelf)
}

type CreateShelfRequest struct {
	Name    string `json:"name"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

func (h *ShelvesHandler) CreateShelf(w http.ResponseWriter, r *http.Request) {
	var req CreateShelfRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	shelf, err := h.writer.CreateShelf(r.Context(), strings.TrimSpace(req.Name), req.Rows, req.Columns)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, shelf)
}

func (h *ShelvesHandler) UpdateShelf(w http.ResponseWriter, r *http.Request) {
	var patch domain.ShelfPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	shelf, err := h.writer.UpdateShelf(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, shelf)
}

func (h *ShelvesHandler) DeleteShelf(w http.ResponseWriter, r *http.Request) {
	if err := h.writer.DeleteShelf(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type SlotResponse struct {
	Index      int            `json:"index"`
	Identifier string         `json:"identifier"`
	Section    int            `json:"section"`
	Device     *domain.Device `json:"device"`
}

// ListSlots returns one entry per slot in index order, device null when empty.
func (h *ShelvesHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	shelf, slots, err := h.shelfWithSlots(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	response := make([]SlotResponse, len(slots))
	for i, d := range slots {
		response[i] = SlotResponse{
			Index:      i,
			Identifier: grid.SlotIdentifier(shelf, i),
			Section:    grid.SectionOf(shelf, i),
			Device:     d,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

type SectionResponse struct {
	grid.Section
	Label   string `json:"label"`
	Barcode string `json:"barcode"`
}

func (h *ShelvesHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	shelf, err := h.shelves.Shelf(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	sections := grid.Sections(shelf)
	response := make([]SectionResponse, len(sections))
	for i, s := range sections {
		response[i] = SectionResponse{
			Section: s,
			Label:   grid.SectionLabel(shelf, s.Index),
			Barcode: grid.SectionBarcode(shelf, s.Index),
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *ShelvesHandler) ShelfMap(w http.ResponseWriter, r *http.Request) {
	shelf, slots, err := h.shelfWithSlots(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	pdf, err := h.renderer.ShelfMap(shelf, slots)
	if err != nil {
		writeError(w, r, h.log, fmt.Errorf("failed to render shelf map: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="shelf-%s.pdf"`, shelf.ID))
	w.Write(pdf)
}

func (h *ShelvesHandler) shelfWithSlots(r *http.Request) (domain.Shelf, []*domain.Device, error) {
	id := chi.URLParam(r, "id")

	shelf, err := h.shelves.Shelf(id)
	if err != nil {
		return domain.Shelf{}, nil, err
	}

	slots, err := h.shelves.DevicesOnShelf(id)
	if err != nil {
		return domain.Shelf{}, nil, err
	}

	return shelf, slots, nil
}
