package controllers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"lagnasohalaa/internal/query"
	"lagnasohalaa/internal/repository"

	"github.com/gin-gonic/gin"
)

// Resource is the one CRUD handler behind every catalog entity. The entity
// controllers instantiate it with their repository, filter spec, lookup key
// and patch codec, then add whatever endpoints are theirs alone.
type Resource[T any] struct {
	repo repository.ResourceRepository[T]
	spec query.Spec

	name     string // "Profile", used in messages
	keyParam string // route parameter, "id" unless overridden
	keyCol   string // non-empty: look up by this column instead of the id
	unique   string // field named in duplicate-key errors, "" if none

	validate func(*T) error
	patch    func(data []byte, m *T) error
}

type ResourceConfig[T any] struct {
	Repo        repository.ResourceRepository[T]
	Spec        query.Spec
	Name        string
	KeyParam    string
	KeyColumn   string
	UniqueField string
	Validate    func(*T) error
	Patch       func(data []byte, m *T) error
}

func NewResource[T any](cfg ResourceConfig[T]) *Resource[T] {
	if cfg.KeyParam == "" {
		cfg.KeyParam = "id"
	}
	return &Resource[T]{
		repo:     cfg.Repo,
		spec:     cfg.Spec,
		name:     cfg.Name,
		keyParam: cfg.KeyParam,
		keyCol:   cfg.KeyColumn,
		unique:   cfg.UniqueField,
		validate: cfg.Validate,
		patch:    cfg.Patch,
	}
}

// List runs the filtered-list contract: AND of supplied filters, optional
// OR-search, single-field sort, page window, uniform envelope.
func (r *Resource[T]) List(c *gin.Context) {
	q := query.Parse(c.Request.URL.Query(), r.spec)

	items, total, err := r.repo.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching " + strings.ToLower(r.name) + " list",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"total":   total,
		"page":    q.Page,
		"pages":   query.Pages(total, q.Limit),
		"data":    items,
	})
}

func (r *Resource[T]) Get(c *gin.Context) {
	m, ok := r.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": m})
}

func (r *Resource[T]) Create(c *gin.Context) {
	var m T
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := r.validate(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := r.repo.Create(c.Request.Context(), &m); err != nil {
		r.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": m})
}

func (r *Resource[T]) Update(c *gin.Context) {
	m, ok := r.fetch(c)
	if !ok {
		return
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	if err := r.patch(data, m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := r.repo.Save(c.Request.Context(), m); err != nil {
		r.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": m})
}

func (r *Resource[T]) Delete(c *gin.Context) {
	if _, ok := r.fetch(c); !ok {
		return
	}

	var err error
	if r.keyCol != "" {
		err = r.repo.DeleteBy(c.Request.Context(), r.keyCol, strings.ToLower(c.Param(r.keyParam)))
	} else {
		id, _ := strconv.ParseUint(c.Param(r.keyParam), 10, 32)
		err = r.repo.Delete(c.Request.Context(), uint(id))
	}
	if err != nil {
		if repository.IsNotFound(err) {
			r.writeNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting " + strings.ToLower(r.name),
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": r.name + " deleted successfully"})
}

// fetch resolves the route key to a record, writing the 400/404 response
// itself when it cannot.
func (r *Resource[T]) fetch(c *gin.Context) (*T, bool) {
	var (
		m   *T
		err error
	)
	if r.keyCol != "" {
		m, err = r.repo.FindBy(c.Request.Context(), r.keyCol, strings.ToLower(c.Param(r.keyParam)))
	} else {
		id, perr := strconv.ParseUint(c.Param(r.keyParam), 10, 32)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid " + strings.ToLower(r.name) + " ID",
				"error":   "ID must be a valid positive integer",
			})
			return nil, false
		}
		m, err = r.repo.FindByID(c.Request.Context(), uint(id))
	}
	if err != nil {
		if repository.IsNotFound(err) {
			r.writeNotFound(c)
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error fetching " + strings.ToLower(r.name),
				"error":   err.Error(),
			})
		}
		return nil, false
	}
	return m, true
}

func (r *Resource[T]) writeNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": r.name + " not found"})
}

func (r *Resource[T]) writeError(c *gin.Context, err error) {
	if repository.IsDuplicate(err) {
		field := r.unique
		if field == "" {
			field = strings.ToLower(r.name)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": capitalize(field) + " already exists",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Error saving " + strings.ToLower(r.name),
		"error":   err.Error(),
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
