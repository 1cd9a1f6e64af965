package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nabilahcare/klinik_backend/internal/service/catalog"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, catalog.ErrUnknownKind), errors.Is(err, catalog.ErrMissingName):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err.Error())
	}
}

// action: getItems
func (h *CatalogHandler) List(c fiber.Ctx) error {
	items, err := h.svc.Items(c.Context())
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, items)
}

// action: addOrUpdateItem
func (h *CatalogHandler) Upsert(c fiber.Ctx, payload json.RawMessage) error {
	var body struct {
		Kind        string `json:"kind"`
		ID          string `json:"ID"`
		Category    string `json:"Kategori"`
		Name        string `json:"Nama"`
		Description string `json:"Deskripsi"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return badRequest(c, "invalid request body")
	}

	err := h.svc.Upsert(c.Context(), catalog.UpsertRequest{
		Kind:        body.Kind,
		ID:          body.ID,
		Category:    body.Category,
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return okMessage(c, "Item berhasil disimpan.")
}
