package handlers

import (
	"path/filepath"

	"github.com/braianorozco10/portfolio-server/internal/catalog"
	"github.com/gofiber/fiber/v2"
)

// PagesHandler serves the site's pages from a directory of prebuilt HTML.
// Pages are chrome only; everything dynamic goes through /api/v1.
type PagesHandler struct {
	dir string
}

func NewPagesHandler(dir string) *PagesHandler {
	return &PagesHandler{dir: dir}
}

func (h *PagesHandler) page(name string) fiber.Handler {
	path := filepath.Join(h.dir, name+".html")
	return func(c *fiber.Ctx) error {
		return c.SendFile(path)
	}
}

// Register mounts the public pages and, behind guard, the work-tools
// pages. The guard redirects before any protected markup is sent.
func (h *PagesHandler) Register(app *fiber.App, guard fiber.Handler) {
	app.Get("/", h.page("index"))
	app.Get("/about", h.page("about"))
	app.Get("/projects", h.page("projects"))
	app.Get("/contact", h.page("contact"))
	app.Get("/login", h.page("login"))
	app.Get("/translator", h.page("translator"))

	tools := app.Group("/work-tools", guard)
	tools.Get("/", h.page("work-tools"))
	tools.Get("/time-converter", h.page("time-converter"))
}

// Languages lists the selectable languages in display order so the UI
// and the server share one catalog.
func Languages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"auto":      catalog.Auto,
		"languages": catalog.Languages(),
	})
}
