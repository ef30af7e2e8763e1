package books

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"bookshelf/internal/feed"
)

type Handler struct {
	Store Store
	Hub   *feed.Hub
}

func NewHandler(store Store, hub *feed.Hub) *Handler {
	return &Handler{Store: store, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)         // GET /books
	rg.GET("/:isbn", h.getOne) // GET /books/:isbn
	rg.POST("", h.create)      // POST /books
	rg.PUT("/:isbn", h.update) // PUT /books/:isbn
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Store.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": items})
}

func (h *Handler) getOne(c *gin.Context) {
	isbn := c.Param("isbn")

	b, err := h.Store.GetByISBN(c.Request.Context(), isbn)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			apiError(c, http.StatusNotFound, noBookMessage(isbn))
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"book": b})
}

func (h *Handler) create(c *gin.Context) {
	var req payload
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid json")
		return
	}

	if msgs := checkRequired(req); len(msgs) > 0 {
		apiError(c, http.StatusBadRequest, msgs)
		return
	}

	b := req.book()
	if err := h.Store.Create(c.Request.Context(), b); err != nil {
		h.fail(c, err)
		return
	}

	h.broadcast("book.created", b.ISBN, b)
	c.JSON(http.StatusCreated, gin.H{"book": b})
}

func (h *Handler) update(c *gin.Context) {
	isbn := c.Param("isbn")

	var req payload
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid json")
		return
	}

	if msgs := checkRequired(req); len(msgs) > 0 {
		apiError(c, http.StatusBadRequest, msgs)
		return
	}

	b := req.book()
	if err := h.Store.Update(c.Request.Context(), isbn, b); err != nil {
		if errors.Is(err, ErrBookNotFound) {
			apiError(c, http.StatusNotFound, noBookMessage(isbn))
			return
		}
		h.fail(c, err)
		return
	}

	h.broadcast("book.updated", b.ISBN, b)
	c.JSON(http.StatusOK, gin.H{"book": b})
}

// fail forwards unexpected storage errors without translation: driver
// errors keep their native fields, anything else becomes a bare 500.
func (h *Handler) fail(c *gin.Context, err error) {
	var pgErr *pgconn.PgError
	errors.As(err, &pgErr)
	storageError(c, err, pgErr)
}

func (h *Handler) broadcast(eventType, isbn string, b any) {
	if h.Hub == nil {
		return
	}
	ev := feed.BookEvent{
		Type: eventType,
		ISBN: isbn,
		Book: b,
		At:   time.Now().UTC(),
	}
	go h.Hub.BroadcastJSON(ev)
}

func noBookMessage(isbn string) string {
	return fmt.Sprintf("There is no book with an isbn '%s'", isbn)
}
