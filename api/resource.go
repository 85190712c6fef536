package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// resourceSpec describes one content type for the shared CRUD handlers:
// ordering, authorization-agnostic response shapes, and the two binders
// that are genuinely per-resource (field lists and file fields).
type resourceSpec[T any] struct {
	orderBy    string
	notFound   string
	deletedMsg string
	// deletedKey names the row in delete responses ({"message":…, key: row}).
	deletedKey string
	// successKey, when set, wraps every mutating response as
	// {"success": true, key: row} instead of echoing the bare row.
	successKey string

	// publicScope narrows the unauthenticated listing (e.g. published only).
	publicScope func(tx *gorm.DB) *gorm.DB

	// bindCreate validates required fields, saves any uploaded files and
	// returns the row to insert. The int is the HTTP status on failure.
	bindCreate func(c *gin.Context, a *API) (*T, int, error)
	// bindUpdate returns only the columns present in the request; absent
	// fields stay untouched.
	bindUpdate func(c *gin.Context, a *API) (map[string]any, int, error)
}

type resource[T any] struct {
	a    *API
	spec resourceSpec[T]
}

func newResource[T any](a *API, spec resourceSpec[T]) *resource[T] {
	return &resource[T]{a: a, spec: spec}
}

func (r *resource[T]) listAll(c *gin.Context) {
	r.list(c, false)
}

func (r *resource[T]) listPublic(c *gin.Context) {
	r.list(c, true)
}

func (r *resource[T]) list(c *gin.Context, scoped bool) {
	tx := r.a.DB.Model(new(T)).Order(r.spec.orderBy)
	if scoped && r.spec.publicScope != nil {
		tx = r.spec.publicScope(tx)
	}

	items := make([]T, 0)
	if err := tx.Find(&items).Error; err != nil {
		r.a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (r *resource[T]) create(c *gin.Context) {
	item, status, err := r.spec.bindCreate(c, r.a)
	if err != nil {
		abortJSON(c, status, err.Error())
		return
	}

	if err := r.a.DB.Create(item).Error; err != nil {
		r.a.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r.wrap(item))
}

func (r *resource[T]) update(c *gin.Context) {
	updates, status, err := r.spec.bindUpdate(c, r.a)
	if err != nil {
		abortJSON(c, status, err.Error())
		return
	}

	item, ok := r.fetch(c)
	if !ok {
		return
	}

	if len(updates) > 0 {
		if err := r.a.DB.Model(item).Updates(updates).Error; err != nil {
			r.a.storeError(c, err)
			return
		}
		if item, ok = r.fetch(c); !ok {
			return
		}
	}
	c.JSON(http.StatusOK, r.wrap(item))
}

func (r *resource[T]) delete(c *gin.Context) {
	item, ok := r.fetch(c)
	if !ok {
		return
	}

	// Referenced uploads are left behind on purpose; orphaned files are an
	// accepted cost of deletion.
	if err := r.a.DB.Delete(item).Error; err != nil {
		r.a.storeError(c, err)
		return
	}

	if r.spec.successKey != "" {
		c.JSON(http.StatusOK, gin.H{"success": true, r.spec.successKey: item})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": r.spec.deletedMsg, r.spec.deletedKey: item})
}

func (r *resource[T]) fetch(c *gin.Context) (*T, bool) {
	var item T
	err := r.a.DB.First(&item, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortJSON(c, http.StatusNotFound, r.spec.notFound)
		return nil, false
	}
	if err != nil {
		r.a.storeError(c, err)
		return nil, false
	}
	return &item, true
}

func (r *resource[T]) wrap(item *T) any {
	if r.spec.successKey != "" {
		return gin.H{"success": true, r.spec.successKey: item}
	}
	return item
}
