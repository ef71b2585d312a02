package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodmenu/menu-system/internal/api/metrics"
	"github.com/foodmenu/menu-system/internal/core/domain"
	"github.com/foodmenu/menu-system/internal/core/ports"
)

// MenuHandler handles HTTP requests for menu items and image uploads.
type MenuHandler struct {
	service ports.MenuService
	files   ports.FileStore
}

func NewMenuHandler(service ports.MenuService, files ports.FileStore) *MenuHandler {
	return &MenuHandler{service: service, files: files}
}

type menuItemRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// List handles GET /api/menu. A non-empty search parameter narrows by
// name substring; otherwise a category parameter filters exactly.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Param        search    query  string  false  "Substring to match against item names (case-insensitive)"
// @Param        category  query  string  false  "Exact category filter"
// @Success      200  {array}  domain.MenuItem
// @Router       /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context(), ports.ListMenuInput{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}

	if items == nil {
		items = []*domain.MenuItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/menu. The payload is stored verbatim; there
// is no server-side field validation.
//
// @Summary      Create a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        body  body      menuItemRequest  true  "Menu item"
// @Success      200   {object}  domain.MenuItem
// @Failure      400   {object}  map[string]string
// @Router       /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	item, err := h.service.CreateItem(c.Request().Context(), ports.CreateMenuItemInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	metrics.MenuItemsCreatedTotal.WithLabelValues(item.Category).Inc()
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/menu/:id. Responds 200 with no body when
// the item was removed, 404 with no body when it did not exist.
//
// @Summary      Delete a menu item
// @Tags         menu
// @Param        id  path  string  true  "Menu item id"
// @Success      200
// @Failure      404
// @Router       /menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	deleted, err := h.service.DeleteItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return c.NoContent(http.StatusNotFound)
	}

	metrics.MenuItemsDeletedTotal.Inc()
	return c.NoContent(http.StatusOK)
}

// Upload handles POST /api/menu/upload. The stored file's download URL
// comes back as plain text, matching what the menu form expects to put
// into the item's imageUrl field.
//
// @Summary      Upload a menu item image
// @Tags         menu
// @Accept       multipart/form-data
// @Produce      plain
// @Param        file  formData  file  true  "Image file"
// @Success      200  {string}  string  "Download URL"
// @Failure      400  {string}  string
// @Failure      500  {string}  string
// @Router       /menu/upload [post]
func (h *MenuHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.String(http.StatusBadRequest, "Error: file field is required")
	}

	src, err := fh.Open()
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("storage_error").Inc()
		return c.String(http.StatusInternalServerError, "Could not store file "+fh.Filename+". Please try again!")
	}
	defer src.Close()

	url, err := h.files.Store(c.Request().Context(), fh.Filename, src)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFilename):
			metrics.UploadsTotal.WithLabelValues("invalid_filename").Inc()
			return c.String(http.StatusBadRequest, "Sorry! Filename contains invalid path sequence "+fh.Filename)
		case errors.Is(err, domain.ErrStorageWrite):
			metrics.UploadsTotal.WithLabelValues("storage_error").Inc()
			return c.String(http.StatusInternalServerError, "Could not store file "+fh.Filename+". Please try again!")
		}
		return err
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	metrics.UploadSizeBytes.Observe(float64(fh.Size))
	return c.String(http.StatusOK, url)
}
